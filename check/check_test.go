package check_test

import (
	"cmp"
	"context"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/WinPooh32/unwraplog/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, names []string, dir string, patterns ...string) *check.Checker {
	t.Helper()

	chk := check.New(names...)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := chk.Load(ctx, dir, patterns...)
	require.NoError(t, err)

	return chk
}

type finding struct {
	File string
	Line int
	Name string
	Call string
}

func sortFindings(ff []finding) {
	slices.SortFunc(ff, func(a, b finding) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Name, b.Name),
		)
	})
}

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		chk  *check.Checker
		jobs int
		want []finding
	}{
		{
			name: "default names",
			chk:  mustLoad(t, nil, "../internal/_testdata/panicky", "./..."),
			jobs: 1,
			// The fixture's UnwrapOrLog call sites at panicky.go:55 and
			// panicky_test.go:12 must not be reported.
			want: []finding{
				{"panicky.go", 21, "Unwrap", "b.Unwrap"},
				{"panicky.go", 53, "Unwrap", "b.Unwrap"},
				{"panicky.go", 54, "MustGet", "b.MustGet"},
				{"panicky.go", 56, "Must", "Must"},
				{"panicky_test.go", 8, "Unwrap", "b.Unwrap"},
			},
		},
		{
			name: "single name with parallel workers",
			chk:  mustLoad(t, []string{"MustGet"}, "../internal/_testdata/panicky", "./..."),
			jobs: 4,
			want: []finding{
				{"panicky.go", 54, "MustGet", "b.MustGet"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []finding

			for res := range tt.chk.Check(context.Background(), tt.jobs) {
				fnd, err := res.Get()
				require.NoError(t, err)

				got = append(got, finding{
					File: filepath.Base(fnd.Pos.Filename),
					Line: fnd.Pos.Line,
					Name: fnd.Name,
					Call: fnd.Call,
				})
			}

			sortFindings(got)
			sortFindings(tt.want)

			assert.Equal(t, tt.want, got)
		})
	}
}
