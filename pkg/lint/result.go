// Package lint defines the results a style linter emits for each linted file.
// The types mirror the linter's JSON output so that they can be decoded
// directly from a results file or standard input.
package lint

import (
	"encoding/json"
	"fmt"
	"io"
)

// FileResult holds all findings for one linted source file.
type FileResult struct {
	Source                string    `json:"source"`
	Warnings              []Message `json:"warnings"`
	Deprecations          []Message `json:"deprecations"`
	InvalidOptionWarnings []Message `json:"invalidOptionWarnings"`
	Errored               bool      `json:"errored,omitempty"`
}

// Message is one reportable finding.
// Deprecations and invalid option warnings only carry Text (and Reference),
// so their other fields are left zero.
type Message struct {
	Severity  string `json:"severity,omitempty"`
	Line      int    `json:"line,omitempty"`
	Column    int    `json:"column,omitempty"`
	Text      string `json:"text"`
	Rule      string `json:"rule,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// Len returns the number of messages across the three groups.
func (r *FileResult) Len() int {
	return len(r.Warnings) + len(r.Deprecations) + len(r.InvalidOptionWarnings)
}

// Decode reads a JSON array of results.
func Decode(r io.Reader) ([]FileResult, error) {
	results := []FileResult{}
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode lint results as JSON: %w", err)
	}
	return results, nil
}
