package solver

import (
	"context"
	"time"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/pieces"
	"svw.info/daygrid/internal/ports"
)

// ExactCover implements Algorithm X / Dancing Links over piece placements.
// Exact-cover mapping: one column per piece (each must be used exactly
// once) plus one column per coverable cell, i.e. the 49 board cells minus
// the blocked ones minus the exclusion pair. Rows are the placements
// disjoint from blocked and excluded cells; a row links its piece column
// with the columns of the cells it covers.
type ExactCover struct{}

func NewExactCover() *ExactCover { return &ExactCover{} }

// node/column structures (classic dancing links)
type node struct {
	left, right, up, down *node
	col                   *column
	rowIdx                int // index into the placement table
}
type column struct {
	node
	size   int
	name   int
	active bool // whether this constraint column is currently uncovered
}

type dlx struct {
	cols      []*column
	rowPl     []pieces.Placement // rowIdx -> placement
	sol       [domain.NumPieces]*node
	nodes     int
	activeCnt int // number of active (uncovered) columns
}

func newDLX(excluded domain.Mask) *dlx {
	banned := domain.Blocked | excluded
	table := viablePlacements(banned)

	// columns 0..NumPieces-1 are pieces, then coverable cells ascending
	var cellCol [domain.CellCount]int
	nCols := domain.NumPieces
	for c := domain.Cell(0); c < domain.CellCount; c++ {
		if banned.Has(c) {
			cellCol[c] = -1
			continue
		}
		cellCol[c] = nCols
		nCols++
	}

	d := &dlx{
		cols:  make([]*column, nCols),
		rowPl: table,
	}
	for i := 0; i < nCols; i++ {
		c := &column{name: i, active: true}
		c.up = &c.node
		c.down = &c.node
		d.cols[i] = c
	}
	d.activeCnt = nCols

	for rowIdx, pl := range table {
		colIDs := make([]int, 0, len(pl.Cells)+1)
		colIDs = append(colIDs, int(pl.Piece))
		for _, cc := range pl.Cells {
			colIDs = append(colIDs, cellCol[cc])
		}
		var first *node
		var prev *node
		for _, colID := range colIDs {
			col := d.cols[colID]
			n := &node{col: col, rowIdx: rowIdx}
			// vertical insert (at bottom)
			n.down = &col.node
			n.up = col.node.up
			col.node.up.down = n
			col.node.up = n
			col.size++
			// horizontal ring for the nodes of the row
			if first == nil {
				first = n
				n.left = n
				n.right = n
			} else {
				// hook after prev
				n.left = prev
				n.right = prev.right
				prev.right.left = n
				prev.right = n
			}
			prev = n
		}
	}
	return d
}

// core operations
func cover(col *column, d *dlx) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}
func uncover(col *column, d *dlx) {
	for i := col.up; i != &col.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// choose the active column with the smallest size
func chooseColumn(d *dlx) *column {
	var best *column
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

// search visits every exact cover, passing the chosen rows to emit. It
// returns true when the walk was stopped by ctx.
func (d *dlx) search(ctx context.Context, k int, emit func([]*node)) bool {
	// cancellation check
	select {
	case <-ctx.Done():
		return true // stop search
	default:
	}
	// all constraints covered -> complete tiling
	if d.activeCnt == 0 {
		emit(d.sol[:k])
		return false
	}

	c := chooseColumn(d)
	if c == nil || c.size == 0 {
		return false
	}
	cover(c, d)
	for r := c.down; r != &c.node; r = r.down {
		d.nodes++
		d.sol[k] = r
		// cover other columns for this row
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				cover(j.col, d)
			}
		}
		stop := d.search(ctx, k+1, emit)
		// backtrack: uncover in reverse order
		for j := r.left; j != r; j = j.left {
			uncover(j.col, d)
		}
		if stop {
			uncover(c, d)
			return true
		}
	}
	uncover(c, d)
	return false
}

func (d *dlx) decode(rows []*node) []pieces.Placement {
	chosen := make([]pieces.Placement, len(rows))
	for i, r := range rows {
		chosen[i] = d.rowPl[r.rowIdx]
	}
	return chosen
}

// Enumerate returns every tiling for the exclusion pair. The order is the
// exact-cover visit order, which is fixed for a given pair but differs
// from the backtracking engine's.
func (s *ExactCover) Enumerate(ctx context.Context, a, b domain.Cell) ([]domain.Solution, ports.Stats, error) {
	start := time.Now()
	if err := domain.ValidateExclusion(a, b); err != nil {
		return nil, ports.Stats{}, err
	}
	d := newDLX(a.Mask() | b.Mask())
	sols := []domain.Solution{}
	stopped := d.search(ctx, 0, func(rows []*node) {
		sols = append(sols, toSolution(d.decode(rows)))
	})
	var err error
	if stopped {
		err = ctx.Err()
	}
	return sols, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, err
}

// Count runs the same search without materializing solutions.
func (s *ExactCover) Count(ctx context.Context, a, b domain.Cell) (int, ports.Stats, error) {
	start := time.Now()
	if err := domain.ValidateExclusion(a, b); err != nil {
		return 0, ports.Stats{}, err
	}
	d := newDLX(a.Mask() | b.Mask())
	n := 0
	stopped := d.search(ctx, 0, func([]*node) { n++ })
	var err error
	if stopped {
		err = ctx.Err()
	}
	return n, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, err
}
