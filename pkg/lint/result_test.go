package lint_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/stylefmt/pkg/lint"
)

func TestDecode(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name  string
		input string
		exp   []lint.FileResult
		isErr bool
	}{
		{
			name:  "empty array",
			input: `[]`,
			exp:   []lint.FileResult{},
		},
		{
			name: "warnings and deprecations",
			input: `[
  {
    "source": "a.css",
    "errored": true,
    "warnings": [
      {"line": 2, "column": 5, "rule": "color-no-invalid-hex", "severity": "error", "text": "Unexpected invalid hex color"}
    ],
    "deprecations": [
      {"text": "rule is deprecated", "reference": "https://example.com/rule"}
    ],
    "invalidOptionWarnings": [
      {"text": "Invalid option value"}
    ]
  }
]`,
			exp: []lint.FileResult{
				{
					Source:  "a.css",
					Errored: true,
					Warnings: []lint.Message{
						{Severity: "error", Line: 2, Column: 5, Text: "Unexpected invalid hex color", Rule: "color-no-invalid-hex"},
					},
					Deprecations: []lint.Message{
						{Text: "rule is deprecated", Reference: "https://example.com/rule"},
					},
					InvalidOptionWarnings: []lint.Message{
						{Text: "Invalid option value"},
					},
				},
			},
		},
		{
			name:  "not an array",
			input: `{"source": "a.css"}`,
			isErr: true,
		},
		{
			name:  "broken json",
			input: `[`,
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got, err := lint.Decode(strings.NewReader(d.input))
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			if diff := cmp.Diff(d.exp, got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestFileResult_Len(t *testing.T) {
	t.Parallel()
	r := &lint.FileResult{
		Warnings:              []lint.Message{{}, {}},
		Deprecations:          []lint.Message{{}},
		InvalidOptionWarnings: nil,
	}
	if got := r.Len(); got != 3 {
		t.Fatalf("wanted 3, got %d", got)
	}
}
