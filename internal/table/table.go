package table

import (
	"fmt"
	"strings"

	"github.com/demetriusmayo/PathOfSearching/internal/model"
)

// ConfigurationError indicates the modifier table could not be built or
// augmented from its configured sources. Augmentation failures (missing seed
// file) are recoverable; an empty table is fatal.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("table configuration: %s: %v", e.Reason, e.Err)
	}
	return "table configuration: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Table is an immutable phrase -> ModifierEntry mapping. Build one through a
// Builder; never mutate it afterwards. Reloads replace the whole table (see
// Store).
type Table struct {
	entries map[string]model.ModifierEntry
}

// Len returns the number of phrases in the table
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the entry for a canonical lowercase phrase
func (t *Table) Lookup(phrase string) (model.ModifierEntry, bool) {
	e, ok := t.entries[phrase]
	return e, ok
}

// Range calls fn for every entry until fn returns false. Iteration order is
// unspecified; callers must not depend on it.
func (t *Table) Range(fn func(e model.ModifierEntry) bool) {
	for _, e := range t.entries {
		if !fn(e) {
			return
		}
	}
}

// Builder accumulates entries and produces an immutable Table
type Builder struct {
	entries map[string]model.ModifierEntry
}

// New returns a Builder pre-seeded with the compiled-in modifier list
func New() *Builder {
	b := NewEmpty()
	for phrase, targets := range staticMods {
		b.Set(phrase, targets...)
	}
	return b
}

// NewEmpty returns a Builder with no entries
func NewEmpty() *Builder {
	return &Builder{entries: make(map[string]model.ModifierEntry)}
}

// Set records an entry. The phrase is lowercased; setting a phrase that is
// already present replaces it (last write wins). Empty phrases and entries
// with no targets are ignored.
func (b *Builder) Set(phrase string, targets ...string) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" || len(targets) == 0 {
		return
	}
	ts := make([]string, len(targets))
	copy(ts, targets)
	b.entries[phrase] = model.ModifierEntry{Phrase: phrase, Targets: ts}
}

// Len returns the number of entries accumulated so far
func (b *Builder) Len() int {
	return len(b.entries)
}

// Build produces the immutable table. A builder with zero entries is a fatal
// misconfiguration: a matcher with no phrases can never resolve anything.
func (b *Builder) Build() (*Table, error) {
	if len(b.entries) == 0 {
		return nil, &ConfigurationError{Reason: "no modifier entries"}
	}
	entries := make(map[string]model.ModifierEntry, len(b.entries))
	for k, v := range b.entries {
		entries[k] = v
	}
	return &Table{entries: entries}, nil
}
