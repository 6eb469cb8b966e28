package model

import "time"

// Report is the result of resolving a batch of item-modifier lines
type Report struct {
	Source     string       `json:"source"`      // where the lines came from (file path or "args")
	ResolvedAt time.Time    `json:"resolved_at"` // when the resolution ran
	TableSize  int          `json:"table_size"`  // phrases in the modifier table used
	Lines      []LineResult `json:"lines"`       // one result per input line
	Matched    int          `json:"matched"`     // lines with a best match
	Unmatched  int          `json:"unmatched"`   // lines left unresolved
}

// LineResult is the resolution outcome for a single input line
type LineResult struct {
	Raw        string    `json:"raw"`                  // line as the caller supplied it
	Normalized string    `json:"normalized,omitempty"` // lowercased, digits replaced by #
	Matched    bool      `json:"matched"`              // whether any table phrase occurred in the line
	Phrase     string    `json:"phrase,omitempty"`     // winning phrase
	Start      int       `json:"start,omitempty"`      // match span start (byte offset)
	End        int       `json:"end,omitempty"`        // match span end (exclusive)
	Targets    []string  `json:"targets,omitempty"`    // resolved stat identifiers
	Values     []float64 `json:"values,omitempty"`     // numeric values captured during normalization
	Remainder  string    `json:"remainder,omitempty"`  // line with the matched span removed
}
