// Package match implements the best-match line scanner over a modifier table.
package match

import (
	"strings"

	"github.com/demetriusmayo/PathOfSearching/internal/model"
	"github.com/demetriusmayo/PathOfSearching/internal/table"
)

// Result is the outcome of scanning one line. When Matched is false the
// Remainder carries the input line unchanged and Entry is the zero value; a
// no-match is never conflated with a matched entry that has no targets.
type Result struct {
	Matched   bool
	Entry     model.ModifierEntry
	Start     int    // span start in the lowercased line (byte offset)
	End       int    // span end, exclusive
	Remainder string // lowercased line with the matched span removed
}

// Scan finds the single best-matching table phrase occurring anywhere within
// line. Comparison is case-insensitive literal containment; phrases with
// characters such as ' , % # ( ) carry no pattern meaning.
//
// Candidate order, most significant first: earliest start offset, then
// greatest end offset, then longest phrase. Table iteration order is
// unspecified, so these tie-breaks are what make the result deterministic.
func Scan(line string, t *table.Table) Result {
	lower := strings.ToLower(line)

	best := Result{Remainder: line}
	t.Range(func(e model.ModifierEntry) bool {
		idx := strings.Index(lower, e.Phrase)
		if idx < 0 {
			return true
		}
		end := idx + len(e.Phrase)
		if !best.Matched ||
			idx < best.Start ||
			(idx == best.Start && end > best.End) ||
			(idx == best.Start && end == best.End && len(e.Phrase) > len(best.Entry.Phrase)) {
			best = Result{Matched: true, Entry: e, Start: idx, End: end}
		}
		return true
	})

	if best.Matched {
		best.Remainder = strings.TrimSpace(lower[:best.Start] + lower[best.End:])
	}
	return best
}
