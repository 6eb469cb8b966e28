package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/demetriusmayo/PathOfSearching/internal/model"
	"github.com/demetriusmayo/PathOfSearching/internal/table"
)

func testStore(t *testing.T) *table.Store {
	t.Helper()
	tbl, err := table.New().Build()
	if err != nil {
		t.Fatalf("Expected built-in table to build, got %v", err)
	}
	return table.NewStore(tbl)
}

func TestResolver_ResolveLines(t *testing.T) {
	resolver := NewResolver(testStore(t))

	report := resolver.ResolveLines("args", []string{
		"+42 to maximum life",
		"xyz completely unrelated",
	})

	if len(report.Lines) != 2 {
		t.Fatalf("Expected 2 line results, got %d", len(report.Lines))
	}
	if report.Matched != 1 || report.Unmatched != 1 {
		t.Errorf("Expected 1 matched / 1 unmatched, got %d / %d", report.Matched, report.Unmatched)
	}

	life := report.Lines[0]
	if !life.Matched {
		t.Fatal("Expected life line to match")
	}
	if life.Phrase != "+# to maximum life" {
		t.Errorf("Expected placeholder phrase to win, got %q", life.Phrase)
	}
	if !reflect.DeepEqual(life.Values, []float64{42}) {
		t.Errorf("Expected captured value [42], got %v", life.Values)
	}
	if len(life.Targets) == 0 {
		t.Error("Expected resolved targets")
	}

	if report.Lines[1].Matched {
		t.Error("Expected unrelated line to stay unresolved")
	}
}

func TestResolver_BareFallback(t *testing.T) {
	// A line without numbers still resolves through the bare phrase form
	resolver := NewResolver(testStore(t))

	report := resolver.ResolveLines("args", []string{"to maximum life"})
	if report.Matched != 1 {
		t.Fatalf("Expected a match, got report %+v", report)
	}
}

func TestResolver_SkipsBlankLines(t *testing.T) {
	resolver := NewResolver(testStore(t))

	report := resolver.ResolveLines("args", []string{"", "   ", "+10 to strength", "\t"})
	if len(report.Lines) != 1 {
		t.Errorf("Expected blank lines skipped, got %d results", len(report.Lines))
	}
}

func TestResolver_ResolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "item.txt")
	content := "+42 to maximum life\n+35% to fire resistance\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	resolver := NewResolver(testStore(t))
	report, err := resolver.ResolveFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.Source != path {
		t.Errorf("Expected source %q, got %q", path, report.Source)
	}
	if report.Matched != 2 {
		t.Errorf("Expected both lines resolved, got %d", report.Matched)
	}
}

func TestRenderer_RenderJSON(t *testing.T) {
	resolver := NewResolver(testStore(t))
	report := resolver.ResolveLines("args", []string{"+42 to maximum life"})

	path := filepath.Join(t.TempDir(), "report.json")
	if err := NewRenderer().RenderJSON(report, path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}

	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if decoded.Matched != report.Matched || len(decoded.Lines) != len(report.Lines) {
		t.Errorf("Expected round-tripped report to match, got %+v", decoded)
	}
}

func TestRenderer_RenderXLSX(t *testing.T) {
	resolver := NewResolver(testStore(t))
	report := resolver.ResolveLines("args", []string{"+42 to maximum life"})

	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := NewRenderer().RenderXLSX(report, path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected worksheet file, got %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty worksheet")
	}
}
