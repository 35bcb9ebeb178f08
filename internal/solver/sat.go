package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/pieces"
	"svw.info/daygrid/internal/ports"
)

// SAT encodes the tiling problem as CNF and enumerates models. One
// variable per viable placement; each piece contributes an exactly-one
// group, each coverable cell an at-least-one clause, and every pair of
// overlapping placements a conflict clause. Found models are excluded
// with blocking clauses and the solver re-run until unsatisfiable, so
// the engine reports the same solution set as the walk-based ones. For
// this engine Stats.Nodes counts solver invocations.
type SAT struct{}

func NewSAT() *SAT { return &SAT{} }

func placementLit(i int, pos bool) z.Lit {
	v := z.Var(i + 1)
	if pos {
		return v.Pos()
	}
	return v.Neg()
}

// solveSAT builds the formula for one exclusion pair and feeds every model
// to emit as a placement list. A piece with no viable placement or a cell
// no placement covers makes the instance trivially unsatisfiable and
// returns early.
func solveSAT(ctx context.Context, a, b domain.Cell, emit func([]pieces.Placement)) (int, error) {
	banned := domain.Blocked | a.Mask() | b.Mask()
	table := viablePlacements(banned)
	g := gini.New()

	// exactly one placement per piece
	for p := domain.PieceID(0); p < domain.NumPieces; p++ {
		var group []int
		for i, pl := range table {
			if pl.Piece == p {
				group = append(group, i)
			}
		}
		if len(group) == 0 {
			return 0, nil
		}
		for _, i := range group {
			g.Add(placementLit(i, true))
		}
		g.Add(z.LitNull)
		for x := 0; x < len(group); x++ {
			for y := x + 1; y < len(group); y++ {
				g.Add(placementLit(group[x], false))
				g.Add(placementLit(group[y], false))
				g.Add(z.LitNull)
			}
		}
	}

	// overlapping placements of different pieces conflict
	for i := 0; i < len(table); i++ {
		for j := i + 1; j < len(table); j++ {
			if table[i].Piece == table[j].Piece {
				continue
			}
			if table[i].Mask.Overlaps(table[j].Mask) {
				g.Add(placementLit(i, false))
				g.Add(placementLit(j, false))
				g.Add(z.LitNull)
			}
		}
	}

	// every coverable cell is covered by some placement
	for c := domain.Cell(0); c < domain.CellCount; c++ {
		if banned.Has(c) {
			continue
		}
		any := false
		for i, pl := range table {
			if pl.Mask.Has(c) {
				g.Add(placementLit(i, true))
				any = true
			}
		}
		if !any {
			return 0, nil
		}
		g.Add(z.LitNull)
	}

	calls := 0
	for {
		if err := ctx.Err(); err != nil {
			return calls, err
		}
		calls++
		if g.Solve() != 1 {
			return calls, nil
		}
		chosenIdx := make([]int, 0, domain.NumPieces)
		chosen := make([]pieces.Placement, 0, domain.NumPieces)
		for i := range table {
			if g.Value(placementLit(i, true)) {
				chosenIdx = append(chosenIdx, i)
				chosen = append(chosen, table[i])
			}
		}
		emit(chosen)
		// block this model before the next round
		for _, i := range chosenIdx {
			g.Add(placementLit(i, false))
		}
		g.Add(z.LitNull)
	}
}

// Enumerate returns every tiling for the exclusion pair in model
// discovery order.
func (s *SAT) Enumerate(ctx context.Context, a, b domain.Cell) ([]domain.Solution, ports.Stats, error) {
	start := time.Now()
	if err := domain.ValidateExclusion(a, b); err != nil {
		return nil, ports.Stats{}, err
	}
	sols := []domain.Solution{}
	calls, err := solveSAT(ctx, a, b, func(chosen []pieces.Placement) {
		sols = append(sols, toSolution(chosen))
	})
	return sols, ports.Stats{Nodes: calls, Duration: time.Since(start)}, err
}

// Count enumerates models without materializing solutions.
func (s *SAT) Count(ctx context.Context, a, b domain.Cell) (int, ports.Stats, error) {
	start := time.Now()
	if err := domain.ValidateExclusion(a, b); err != nil {
		return 0, ports.Stats{}, err
	}
	n := 0
	calls, err := solveSAT(ctx, a, b, func([]pieces.Placement) { n++ })
	return n, ports.Stats{Nodes: calls, Duration: time.Since(start)}, err
}
