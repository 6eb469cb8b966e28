package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/demetriusmayo/PathOfSearching/internal/model"
)

func TestPool_ResolveAll(t *testing.T) {
	var calls int32
	pool := NewPool(4, func(ctx context.Context, path string) (*model.Report, error) {
		atomic.AddInt32(&calls, 1)
		return &model.Report{Source: path}, nil
	})

	paths := make([]string, 10)
	for i := range paths {
		paths[i] = fmt.Sprintf("item-%02d.txt", i)
	}

	outcomes := pool.Resolve(context.Background(), paths)
	if len(outcomes) != len(paths) {
		t.Fatalf("Expected %d outcomes, got %d", len(paths), len(outcomes))
	}
	if int(calls) != len(paths) {
		t.Errorf("Expected %d resolutions, got %d", len(paths), calls)
	}

	// Outcomes come back sorted by path
	for i, o := range outcomes {
		if o.Path != paths[i] {
			t.Errorf("Outcome %d: expected %s, got %s", i, paths[i], o.Path)
		}
		if o.Err != nil {
			t.Errorf("Outcome %d: expected no error, got %v", i, o.Err)
		}
		if o.Report == nil || o.Report.Source != o.Path {
			t.Errorf("Outcome %d: expected report for %s", i, o.Path)
		}
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	failure := errors.New("bad file")
	pool := NewPool(2, func(ctx context.Context, path string) (*model.Report, error) {
		if path == "broken.txt" {
			return nil, failure
		}
		return &model.Report{Source: path}, nil
	})

	outcomes := pool.Resolve(context.Background(), []string{"broken.txt", "fine.txt"})
	if len(outcomes) != 2 {
		t.Fatalf("Expected 2 outcomes, got %d", len(outcomes))
	}

	if !errors.Is(outcomes[0].Err, failure) {
		t.Errorf("Expected failure for broken.txt, got %v", outcomes[0].Err)
	}
	if outcomes[1].Err != nil {
		t.Errorf("Expected fine.txt to succeed, got %v", outcomes[1].Err)
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	pool := NewPool(0, func(ctx context.Context, path string) (*model.Report, error) {
		return &model.Report{Source: path}, nil
	})

	outcomes := pool.Resolve(context.Background(), []string{"a.txt"})
	if len(outcomes) != 1 || outcomes[0].Err != nil {
		t.Fatalf("Expected single successful outcome, got %+v", outcomes)
	}
}
