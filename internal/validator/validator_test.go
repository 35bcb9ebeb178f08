package validator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/solver"
)

func solveOne(t *testing.T, d domain.Date) (domain.Solution, domain.Cell, domain.Cell) {
	t.Helper()
	a, b := d.Cells()
	sols, _, err := solver.NewBacktracking().Enumerate(context.Background(), a, b)
	require.NoError(t, err)
	require.NotEmpty(t, sols)
	return sols[0], a, b
}

func TestValidateAcceptsRealTiling(t *testing.T) {
	sol, a, b := solveOne(t, domain.Date{Month: time.April, Day: 12})

	ok, conf, err := New().Validate(context.Background(), sol, a, b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateRejectsMissingPiece(t *testing.T) {
	sol, a, b := solveOne(t, domain.Date{Month: time.April, Day: 12})
	sol.Placements = sol.Placements[:len(sol.Placements)-1]

	ok, conf, err := New().Validate(context.Background(), sol, a, b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conf, "uncovered cells should be reported")
}

func TestValidateRejectsDuplicatePiece(t *testing.T) {
	sol, a, b := solveOne(t, domain.Date{Month: time.April, Day: 12})
	dup := sol.Placements[0]
	sol.Placements[1] = dup

	ok, conf, err := New().Validate(context.Background(), sol, a, b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conf)
}

func TestValidateRejectsIllegalShape(t *testing.T) {
	sol, a, b := solveOne(t, domain.Date{Month: time.April, Day: 12})
	// scatter one placement into a shape no piece has
	sol.Placements[2] = domain.PlacedPiece{
		Piece: sol.Placements[2].Piece,
		Cells: []domain.Cell{0, 2, 4, 20, 40},
	}

	ok, conf, err := New().Validate(context.Background(), sol, a, b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conf)
}

func TestValidateRejectsCoveredExclusion(t *testing.T) {
	sol, a, b := solveOne(t, domain.Date{Month: time.April, Day: 12})

	// validate against a different pair: the real pair's cells are now
	// covered by nothing, and the new pair's cells are covered
	other := domain.Date{Month: time.November, Day: 2}
	oa, ob := other.Cells()
	ok, conf, err := New().Validate(context.Background(), sol, oa, ob)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, a)
	assert.Contains(t, conf, b)
}

func TestValidateInvalidExclusion(t *testing.T) {
	_, _, err := New().Validate(context.Background(), domain.Solution{}, 3, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidCell)
}
