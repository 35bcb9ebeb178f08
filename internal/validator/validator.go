package validator

import (
	"context"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/pieces"
)

// FastValidator checks a finished tiling with bitmask scans: every piece
// used exactly once, every placement drawn from the piece's legal
// placement set, no overlap, and full coverage outside the blocked and
// excluded cells. Conflicting cells are reported for display.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// legal placement masks per piece.
var legal [domain.NumPieces]map[domain.Mask]bool

func init() {
	for p := domain.PieceID(0); p < domain.NumPieces; p++ {
		m := make(map[domain.Mask]bool, len(pieces.Placements(p)))
		for _, pl := range pieces.Placements(p) {
			m[pl.Mask] = true
		}
		legal[p] = m
	}
}

func (v *FastValidator) Validate(ctx context.Context, sol domain.Solution, a, b domain.Cell) (bool, []domain.Cell, error) {
	if err := domain.ValidateExclusion(a, b); err != nil {
		return false, nil, err
	}
	conf := make([]domain.Cell, 0, 8)
	var seen domain.Mask
	var used [domain.NumPieces]bool
	for _, pp := range sol.Placements {
		m := pp.Mask()
		if !pp.Piece.Valid() || used[pp.Piece] || !legal[pp.Piece][m] {
			conf = append(conf, pp.Cells...)
			continue
		}
		used[pp.Piece] = true
		if overlap := seen & m; overlap != 0 {
			conf = append(conf, overlap.Cells()...)
		}
		seen |= m
	}
	// cells that must be covered but are not
	want := domain.Full &^ (domain.Blocked | a.Mask() | b.Mask())
	if missing := want &^ seen; missing != 0 {
		conf = append(conf, missing.Cells()...)
	}
	// blocked or excluded cells that got covered
	if extra := seen &^ want; extra != 0 {
		conf = append(conf, extra.Cells()...)
	}
	return len(conf) == 0, conf, nil
}
