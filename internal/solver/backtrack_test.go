package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/ports"
)

// checkTiling asserts a solution covers exactly the board minus blocked
// cells minus the exclusion pair, with disjoint placements ordered by
// piece.
func checkTiling(t *testing.T, sol domain.Solution, a, b domain.Cell) {
	t.Helper()
	require.Len(t, sol.Placements, domain.NumPieces)
	var occ domain.Mask
	for i, pp := range sol.Placements {
		assert.Equal(t, domain.PieceID(i), pp.Piece)
		m := pp.Mask()
		assert.Equal(t, len(pp.Cells), m.Count(), "duplicate cells in %v", pp)
		assert.False(t, occ.Overlaps(m), "placements overlap: %v", sol)
		occ |= m
	}
	want := domain.Full &^ (domain.Blocked | a.Mask() | b.Mask())
	assert.Equal(t, want, occ)
}

func TestEnumerateRejectsInvalidCells(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Cell
	}{
		{name: "negative", a: -1, b: 14},
		{name: "too large", a: 0, b: 49},
		{name: "same cell", a: 20, b: 20},
	}
	s := NewBacktracking()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := s.Enumerate(context.Background(), tc.a, tc.b)
			assert.ErrorIs(t, err, domain.ErrInvalidCell)
			_, _, err = s.Count(context.Background(), tc.a, tc.b)
			assert.ErrorIs(t, err, domain.ErrInvalidCell)
		})
	}
}

func TestEnumerateKnownDates(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		day   int
	}{
		{name: "new year", month: time.January, day: 1},
		{name: "midsummer", month: time.August, day: 21},
		{name: "christmas", month: time.December, day: 25},
	}
	s := NewBacktracking()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			d := domain.Date{Month: tc.month, Day: tc.day}
			a, b := d.Cells()
			sols, stats, err := s.Enumerate(ctx, a, b)
			require.NoError(t, err)
			require.NotEmpty(t, sols, "date %s should be tileable", d)
			assert.Greater(t, stats.Nodes, 0)
			t.Logf("%s: %d tilings, %d nodes in %s", d, len(sols), stats.Nodes, stats.Duration)

			for _, sol := range sols {
				checkTiling(t, sol, a, b)
			}
		})
	}
}

func TestEnumerateUnsatisfiablePair(t *testing.T) {
	// Excluding (0,1) and (1,0) strands the corner cell: every piece is
	// connected, so covering cell 0 requires one of its two neighbors.
	s := NewBacktracking()
	sols, stats, err := s.Enumerate(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.NotNil(t, sols)
	assert.Empty(t, sols)
	assert.Equal(t, 0, stats.Nodes)
}

func TestEnumerateExcludedBlockedCells(t *testing.T) {
	// Excluding already-blocked cells leaves 43 coverable cells, two more
	// than the pieces hold, so no complete tiling exists.
	s := NewBacktracking()
	sols, _, err := s.Enumerate(context.Background(), 6, 13)
	require.NoError(t, err)
	assert.Empty(t, sols)
}

func TestEnumerateDeterministic(t *testing.T) {
	s := NewBacktracking()
	d := domain.Date{Month: time.January, Day: 1}
	a, b := d.Cells()

	first, _, err := s.Enumerate(context.Background(), a, b)
	require.NoError(t, err)
	second, _, err := s.Enumerate(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEnumerateArgumentOrderIrrelevant(t *testing.T) {
	s := NewBacktracking()
	d := domain.Date{Month: time.March, Day: 17}
	a, b := d.Cells()

	ab, _, err := s.Enumerate(context.Background(), a, b)
	require.NoError(t, err)
	ba, _, err := s.Enumerate(context.Background(), b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestCountMatchesEnumerate(t *testing.T) {
	s := NewBacktracking()
	d := domain.Date{Month: time.October, Day: 6}
	a, b := d.Cells()

	sols, _, err := s.Enumerate(context.Background(), a, b)
	require.NoError(t, err)
	n, stats, err := s.Count(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, len(sols), n)
	assert.Greater(t, stats.Nodes, 0)
}

func TestEnumerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewBacktracking()
	_, _, err := s.Enumerate(ctx, 0, 14)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnumerateConcurrent(t *testing.T) {
	s := NewBacktracking()
	d := domain.Date{Month: time.May, Day: 5}
	a, b := d.Cells()

	serial, _, err := s.Enumerate(context.Background(), a, b)
	require.NoError(t, err)

	type result struct {
		sols []domain.Solution
		err  error
	}
	results := make(chan result, 4)
	for i := 0; i < 4; i++ {
		go func() {
			sols, _, err := s.Enumerate(context.Background(), a, b)
			results <- result{sols: sols, err: err}
		}()
	}
	for i := 0; i < 4; i++ {
		r := <-results
		require.NoError(t, r.err)
		assert.Equal(t, serial, r.sols)
	}
}

var _ ports.Tiler = (*Backtracking)(nil)
