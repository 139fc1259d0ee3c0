package sarif_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/stylefmt/pkg/sarif"
)

func TestNewRegion(t *testing.T) {
	t.Parallel()
	data := []struct {
		name   string
		line   int
		column int
		exp    *sarif.Region
	}{
		{
			name: "unknown location",
		},
		{
			name:   "column without a line",
			column: 5,
		},
		{
			name:   "negative line",
			line:   -1,
			column: 5,
		},
		{
			name: "line only",
			line: 3,
			exp:  &sarif.Region{StartLine: 3},
		},
		{
			name:   "line and column",
			line:   3,
			column: 7,
			exp:    &sarif.Region{StartLine: 3, StartColumn: 7},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(d.exp, sarif.NewRegion(d.line, d.column)); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
