package table

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuilder_EmptyIsFatal(t *testing.T) {
	_, err := NewEmpty().Build()
	if err == nil {
		t.Fatal("Expected error building an empty table")
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Expected *ConfigurationError, got %T", err)
	}
}

func TestBuilder_LastWriteWins(t *testing.T) {
	b := NewEmpty()
	b.Set("to maximum life", "stat_old")
	b.Set("to maximum life", "stat_new")

	tbl, err := b.Build()
	if err != nil {
		t.Fatalf("Expected table to build, got %v", err)
	}

	e, ok := tbl.Lookup("to maximum life")
	if !ok {
		t.Fatal("Expected phrase to be present")
	}
	if !reflect.DeepEqual(e.Targets, []string{"stat_new"}) {
		t.Errorf("Expected last write to win, got %v", e.Targets)
	}
}

func TestBuilder_LowercasesPhrases(t *testing.T) {
	b := NewEmpty()
	b.Set("To Maximum Life", "stat_1")

	tbl, err := b.Build()
	if err != nil {
		t.Fatalf("Expected table to build, got %v", err)
	}

	if _, ok := tbl.Lookup("to maximum life"); !ok {
		t.Error("Expected phrase to be stored lowercase")
	}
}

func TestBuilder_IgnoresEmptyEntries(t *testing.T) {
	b := NewEmpty()
	b.Set("", "stat_1")
	b.Set("   ", "stat_2")
	b.Set("valid phrase")

	if b.Len() != 0 {
		t.Errorf("Expected empty phrases and target-less entries to be ignored, got %d entries", b.Len())
	}
}

func TestNew_StaticList(t *testing.T) {
	tbl, err := New().Build()
	if err != nil {
		t.Fatalf("Expected built-in table to build, got %v", err)
	}
	if tbl.Len() == 0 {
		t.Fatal("Expected built-in entries")
	}

	e, ok := tbl.Lookup("to maximum life")
	if !ok {
		t.Fatal("Expected 'to maximum life' in the built-in list")
	}
	if len(e.Targets) != 1 {
		t.Errorf("Expected one target, got %v", e.Targets)
	}

	attrs, ok := tbl.Lookup("to all attributes")
	if !ok {
		t.Fatal("Expected 'to all attributes' in the built-in list")
	}
	if len(attrs.Targets) != 3 {
		t.Errorf("Expected three targets for 'to all attributes', got %v", attrs.Targets)
	}
}

func TestStore_Swap(t *testing.T) {
	first, err := New().Build()
	if err != nil {
		t.Fatalf("Expected table to build, got %v", err)
	}

	b := NewEmpty()
	b.Set("replacement phrase", "stat_1")
	second, err := b.Build()
	if err != nil {
		t.Fatalf("Expected table to build, got %v", err)
	}

	store := NewStore(first)
	held := store.Current()

	store.Swap(second)
	if store.Current() != second {
		t.Error("Expected store to hold the new table after swap")
	}

	// The table grabbed before the swap stays consistent for in-flight work
	if held != first || held.Len() != first.Len() {
		t.Error("Expected the previously held table to remain usable")
	}
}
