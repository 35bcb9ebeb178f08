package solver

import (
	"context"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/pieces"
)

// Backtracking is the reference engine: a depth-first search over piece
// placements, always anchored at the lowest-indexed empty cell. Covering
// the lowest empty cell first keeps the walk canonical, so every complete
// tiling is reached exactly once and in a stable order.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// enumerate runs the full search for one exclusion pair and passes every
// complete tiling to emit as the depth-ordered placement list. It reports
// the number of placements tried and a non-nil error only when the walk
// was cut short by ctx.
func enumerate(ctx context.Context, a, b domain.Cell, emit func([]pieces.Placement)) (int, error) {
	occ := domain.Blocked | a.Mask() | b.Mask()
	var used [domain.NumPieces]bool
	chosen := make([]pieces.Placement, 0, domain.NumPieces)
	nodes := 0

	var dfs func() bool // true aborts the walk
	dfs = func() bool {
		if ctx.Err() != nil {
			return true
		}
		if occ == domain.Full {
			emit(chosen)
			return false
		}
		if len(chosen) == domain.NumPieces {
			return false
		}
		pivot := occ.FirstClear()
		for p := domain.PieceID(0); p < domain.NumPieces; p++ {
			if used[p] {
				continue
			}
			for _, pl := range byCell[pivot][p] {
				if pl.Mask.Overlaps(occ) {
					continue
				}
				nodes++
				occ |= pl.Mask
				used[p] = true
				chosen = append(chosen, pl)
				stop := dfs()
				chosen = chosen[:len(chosen)-1]
				used[p] = false
				occ &^= pl.Mask
				if stop {
					return true
				}
			}
		}
		return false
	}
	if dfs() {
		return nodes, ctx.Err()
	}
	return nodes, nil
}
