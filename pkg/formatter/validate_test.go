package formatter_test

import (
	"errors"
	"testing"

	"github.com/suzuki-shunsuke/stylefmt/pkg/formatter"
	"github.com/suzuki-shunsuke/stylefmt/pkg/lint"
)

func TestValidate(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name    string
		results []lint.FileResult
		isErr   bool
	}{
		{
			name: "nil",
		},
		{
			name: "valid",
			results: []lint.FileResult{
				{
					Source:                "a.css",
					Warnings:              []lint.Message{{Severity: "warning", Line: 1, Column: 1, Text: "a"}},
					InvalidOptionWarnings: []lint.Message{{Severity: "error", Text: "b"}},
				},
				{Source: "b.css"},
			},
		},
		{
			name:    "empty source",
			results: []lint.FileResult{{Source: ""}},
			isErr:   true,
		},
		{
			name:    "source with a line break",
			results: []lint.FileResult{{Source: "a\n.css"}},
			isErr:   true,
		},
		{
			name: "warning without severity",
			results: []lint.FileResult{
				{Source: "a.css", Warnings: []lint.Message{{Line: 1, Column: 1, Text: "a"}}},
			},
			isErr: true,
		},
		{
			name: "deprecations and invalid options carry only text",
			results: []lint.FileResult{
				{
					Source:                "a.css",
					Warnings:              []lint.Message{{Severity: "error", Line: 3, Column: 1, Text: "a"}},
					Deprecations:          []lint.Message{{Text: "The \"foo\" rule is deprecated.", Reference: "https://example.com/foo"}},
					InvalidOptionWarnings: []lint.Message{{Text: "Invalid option value \"bar\" for rule \"baz\""}},
				},
			},
		},
		{
			name: "negative line",
			results: []lint.FileResult{
				{Source: "a.css", Warnings: []lint.Message{{Severity: "error", Line: -1, Column: 1, Text: "a"}}},
			},
			isErr: true,
		},
		{
			name: "negative column",
			results: []lint.FileResult{
				{Source: "a.css", Warnings: []lint.Message{{Severity: "error", Line: 1, Column: -3, Text: "a"}}},
			},
			isErr: true,
		},
		{
			name: "text with a line break",
			results: []lint.FileResult{
				{Source: "a.css", InvalidOptionWarnings: []lint.Message{{Severity: "error", Text: "a\r\nb"}}},
			},
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			err := formatter.Validate(d.results)
			if !d.isErr {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			if err == nil {
				t.Fatal("error must be returned")
			}
			if !errors.Is(err, formatter.ErrInvalidResult) {
				t.Fatalf("error must wrap ErrInvalidResult: %v", err)
			}
		})
	}
}
