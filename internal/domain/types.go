package domain

import "math/bits"

// Board geometry. Cells are indexed row-major: cell = row*Cols + col.
const (
	Rows      = 7
	Cols      = 7
	CellCount = Rows * Cols
)

// Cell is a linear board index in [0, CellCount).
type Cell int

// CellAt maps a (row, col) pair to its linear index.
func CellAt(row, col int) Cell { return Cell(row*Cols + col) }

func (c Cell) Valid() bool { return c >= 0 && c < CellCount }
func (c Cell) Row() int    { return int(c) / Cols }
func (c Cell) Col() int    { return int(c) % Cols }
func (c Cell) Mask() Mask  { return 1 << uint(c) }

// Coord identifies a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) Cell() Cell { return CellAt(c.Row, c.Col) }

// Mask is a 49-bit occupancy set over board cells, bit i for cell i.
type Mask uint64

// Full covers every cell on the board.
const Full Mask = (1 << CellCount) - 1

// CellMask builds a mask from the given cells.
func CellMask(cells ...Cell) Mask {
	var m Mask
	for _, c := range cells {
		m |= c.Mask()
	}
	return m
}

func (m Mask) Has(c Cell) bool      { return m&c.Mask() != 0 }
func (m Mask) With(c Cell) Mask     { return m | c.Mask() }
func (m Mask) Without(c Cell) Mask  { return m &^ c.Mask() }
func (m Mask) Overlaps(o Mask) bool { return m&o != 0 }
func (m Mask) Count() int           { return bits.OnesCount64(uint64(m)) }

// FirstClear returns the lowest-indexed cell absent from m, or CellCount
// when the mask is full.
func (m Mask) FirstClear() Cell {
	free := ^uint64(m) & uint64(Full)
	if free == 0 {
		return CellCount
	}
	return Cell(bits.TrailingZeros64(free))
}

// Cells lists the set cells in ascending order.
func (m Mask) Cells() []Cell {
	out := make([]Cell, 0, m.Count())
	for v := uint64(m); v != 0; v &= v - 1 {
		out = append(out, Cell(bits.TrailingZeros64(v)))
	}
	return out
}

// PlacedPiece is one piece fixed at a board position.
type PlacedPiece struct {
	Piece PieceID `json:"piece"`
	Cells []Cell  `json:"cells"`
}

func (p PlacedPiece) Mask() Mask { return CellMask(p.Cells...) }

// Solution is a complete tiling: all eight pieces placed, ordered by piece.
type Solution struct {
	Placements []PlacedPiece `json:"placements"`
}

// Mask returns the union of all placement cells.
func (s Solution) Mask() Mask {
	var m Mask
	for _, p := range s.Placements {
		m |= p.Mask()
	}
	return m
}

// SolveRecord is a persisted solve result for one date.
type SolveRecord struct {
	Date       Date       `json:"date"`
	Engine     EngineKind `json:"engine,omitempty"`
	Count      int        `json:"count"`
	Nodes      int        `json:"nodes,omitempty"`
	DurationMs int64      `json:"durationMs,omitempty"`
	Solutions  []Solution `json:"solutions,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// RecordMeta is a lightweight listing entry.
type RecordMeta struct {
	Date      Date  `json:"date"`
	Count     int   `json:"count"`
	CreatedAt int64 `json:"createdAt"`
}
