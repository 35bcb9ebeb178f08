// Package pieces holds the fixed piece set of the calendar board and the
// geometry derived from it: every distinct orientation of every piece and
// every board placement of every orientation, encoded as cell masks. All
// tables are built once at init and never mutated afterwards, so they are
// safe for concurrent readers.
package pieces

import "svw.info/daygrid/internal/domain"

// offset is a relative (row, col) cell within a shape.
type offset struct {
	r, c int
}

// canonical piece definitions, one per PieceID, normalized.
// Seven pentominoes and one 2x3 rectangle, 41 cells in total.
var canonical = [domain.NumPieces][]offset{
	domain.PieceA: {{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}},         // V
	domain.PieceB: {{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 2}},         // Z
	domain.PieceC: {{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 2}},         // Y
	domain.PieceD: {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}},         // L
	domain.PieceE: {{0, 0}, {0, 1}, {1, 0}, {2, 0}, {2, 1}},         // U
	domain.PieceF: {{0, 0}, {0, 1}, {1, 0}, {1, 1}, {1, 2}},         // P
	domain.PieceG: {{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}},         // N
	domain.PieceH: {{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}, // 2x3 rectangle
}

// Shape is a normalized set of cells: translated so the minimum row and
// column are zero, sorted row-major.
type Shape []domain.Coord

// Size returns the number of cells of a piece.
func Size(p domain.PieceID) int { return len(canonical[p]) }

// Canonical returns the defining shape of a piece.
func Canonical(p domain.PieceID) Shape { return toShape(canonical[p]) }

func toShape(cells []offset) Shape {
	out := make(Shape, len(cells))
	for i, cc := range cells {
		out[i] = domain.Coord{Row: cc.r, Col: cc.c}
	}
	return out
}
