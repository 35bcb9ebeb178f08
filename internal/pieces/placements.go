package pieces

import "svw.info/daygrid/internal/domain"

// Placement is one piece orientation anchored on the board, as both a cell
// mask and the ascending cell list.
type Placement struct {
	Piece domain.PieceID
	Mask  domain.Mask
	Cells []domain.Cell
}

var (
	orientations [domain.NumPieces][]Shape
	placements   [domain.NumPieces][]Placement
)

func init() {
	for p := 0; p < domain.NumPieces; p++ {
		for _, o := range orientationsOf(canonical[p]) {
			h, w := 0, 0
			for _, cc := range o {
				if cc.r+1 > h {
					h = cc.r + 1
				}
				if cc.c+1 > w {
					w = cc.c + 1
				}
			}
			orientations[p] = append(orientations[p], toShape(o))
			for r := 0; r+h <= domain.Rows; r++ {
				for c := 0; c+w <= domain.Cols; c++ {
					cells := make([]domain.Cell, len(o))
					var m domain.Mask
					for i, cc := range o {
						cell := domain.CellAt(r+cc.r, c+cc.c)
						cells[i] = cell
						m |= cell.Mask()
					}
					placements[p] = append(placements[p], Placement{
						Piece: domain.PieceID(p),
						Mask:  m,
						Cells: cells,
					})
				}
			}
		}
	}
}

// Orientations returns the distinct normalized orientations of a piece in
// derivation order. The returned slice is shared; callers must not modify it.
func Orientations(p domain.PieceID) []Shape { return orientations[p] }

// Placements returns every in-grid placement of a piece, grouped in
// orientation-major, then row-major anchor order. The returned slice is
// shared; callers must not modify it.
func Placements(p domain.PieceID) []Placement { return placements[p] }
