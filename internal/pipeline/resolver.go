// Package pipeline orchestrates line resolution: normalize, scan, report.
package pipeline

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/demetriusmayo/PathOfSearching/internal/match"
	"github.com/demetriusmayo/PathOfSearching/internal/model"
	"github.com/demetriusmayo/PathOfSearching/internal/table"
)

// Resolver turns raw item lines into resolution reports against the table
// currently held by a Store.
type Resolver struct {
	store *table.Store
}

// NewResolver creates a resolver backed by the given table store
func NewResolver(store *table.Store) *Resolver {
	return &Resolver{store: store}
}

// ResolveLines resolves a batch of lines. Blank lines are skipped. The whole
// batch is matched against a single table snapshot, so a concurrent reload
// never mixes tables within one report.
func (r *Resolver) ResolveLines(source string, lines []string) *model.Report {
	t := r.store.Current()

	report := &model.Report{
		Source:     source,
		ResolvedAt: time.Now().UTC(),
		TableSize:  t.Len(),
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lr := resolveLine(line, t)
		if lr.Matched {
			report.Matched++
		} else {
			report.Unmatched++
		}
		report.Lines = append(report.Lines, lr)
	}
	return report
}

// ResolveFile reads one line per item modifier from path and resolves them
func (r *Resolver) ResolveFile(path string) (*model.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return r.ResolveLines(path, lines), nil
}

// resolveLine scans the normalized form first, so placeholder phrases like
// "+# to maximum life" win when numbers are present, and falls back to the
// raw line for bare phrases.
func resolveLine(line string, t *table.Table) model.LineResult {
	normalized, values := match.Normalize(line)

	res := match.Scan(normalized, t)
	if !res.Matched {
		res = match.Scan(line, t)
	}

	lr := model.LineResult{
		Raw:        line,
		Normalized: normalized,
		Matched:    res.Matched,
		Values:     values,
	}
	if res.Matched {
		lr.Phrase = res.Entry.Phrase
		lr.Start = res.Start
		lr.End = res.End
		lr.Targets = res.Entry.Targets
		lr.Remainder = res.Remainder
	}
	return lr
}
