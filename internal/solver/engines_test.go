package solver

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/ports"
)

// signatures flattens solutions into sorted canonical strings so engines
// with different visit orders can be compared as sets.
func signatures(sols []domain.Solution) []string {
	out := make([]string, 0, len(sols))
	for _, s := range sols {
		var b strings.Builder
		for _, pp := range s.Placements {
			fmt.Fprintf(&b, "%s:%v;", pp.Piece, pp.Cells)
		}
		out = append(out, b.String())
	}
	sort.Strings(out)
	return out
}

func TestForKind(t *testing.T) {
	assert.IsType(t, &Backtracking{}, ForKind(domain.EngineBacktrack))
	assert.IsType(t, &ExactCover{}, ForKind(domain.EngineDLX))
	assert.IsType(t, &SAT{}, ForKind(domain.EngineSAT))
	assert.IsType(t, &Backtracking{}, ForKind(domain.EngineKind("unknown")))
}

func TestExactCoverMatchesBacktracking(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		day   int
	}{
		{name: "new year", month: time.January, day: 1},
		{name: "leap day", month: time.February, day: 29},
	}
	bt := NewBacktracking()
	dlx := NewExactCover()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			d := domain.Date{Month: tc.month, Day: tc.day}
			a, b := d.Cells()
			want, _, err := bt.Enumerate(ctx, a, b)
			require.NoError(t, err)
			got, stats, err := dlx.Enumerate(ctx, a, b)
			require.NoError(t, err)

			assert.Equal(t, signatures(want), signatures(got))
			t.Logf("%s: %d tilings, dlx %d nodes in %s", d, len(got), stats.Nodes, stats.Duration)

			for _, sol := range got {
				checkTiling(t, sol, a, b)
			}
		})
	}
}

func TestExactCoverUnsatisfiablePair(t *testing.T) {
	dlx := NewExactCover()
	sols, _, err := dlx.Enumerate(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Empty(t, sols)

	n, _, err := dlx.Count(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestExactCoverCountMatchesEnumerate(t *testing.T) {
	dlx := NewExactCover()
	d := domain.Date{Month: time.July, Day: 4}
	a, b := d.Cells()

	sols, _, err := dlx.Enumerate(context.Background(), a, b)
	require.NoError(t, err)
	n, _, err := dlx.Count(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, len(sols), n)
}

func TestExactCoverRejectsInvalidCells(t *testing.T) {
	dlx := NewExactCover()
	_, _, err := dlx.Enumerate(context.Background(), 5, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidCell)
}

func TestSATUnsatisfiablePair(t *testing.T) {
	sat := NewSAT()
	sols, _, err := sat.Enumerate(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Empty(t, sols)
}

func TestSATRejectsInvalidCells(t *testing.T) {
	sat := NewSAT()
	_, _, err := sat.Enumerate(context.Background(), -3, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidCell)
}

func TestSATMatchesBacktracking(t *testing.T) {
	if testing.Short() {
		t.Skip("model enumeration is slow in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	d := domain.Date{Month: time.January, Day: 1}
	a, b := d.Cells()
	want, _, err := NewBacktracking().Enumerate(ctx, a, b)
	require.NoError(t, err)

	sat := NewSAT()
	got, stats, err := sat.Enumerate(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, signatures(want), signatures(got))
	// one extra invocation proves the blocking clauses exhausted the space
	assert.Equal(t, len(got)+1, stats.Nodes)

	for _, sol := range got {
		checkTiling(t, sol, a, b)
	}
}

var (
	_ ports.Tiler = (*ExactCover)(nil)
	_ ports.Tiler = (*SAT)(nil)
)
