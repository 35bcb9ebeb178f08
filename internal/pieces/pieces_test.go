package pieces

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/daygrid/internal/domain"
)

func TestOrientationCounts(t *testing.T) {
	want := map[domain.PieceID]int{
		domain.PieceA: 4,
		domain.PieceB: 4,
		domain.PieceC: 8,
		domain.PieceD: 8,
		domain.PieceE: 4,
		domain.PieceF: 8,
		domain.PieceG: 8,
		domain.PieceH: 2,
	}
	total := 0
	for p := domain.PieceID(0); p < domain.NumPieces; p++ {
		ors := Orientations(p)
		assert.Equal(t, want[p], len(ors), "piece %s", p)
		assert.Contains(t, []int{1, 2, 4, 8}, len(ors), "piece %s", p)
		total += len(ors)
	}
	assert.Equal(t, 46, total)
}

func TestOrientationsNormalizedAndDistinct(t *testing.T) {
	for p := domain.PieceID(0); p < domain.NumPieces; p++ {
		seen := map[string]bool{}
		for _, shape := range Orientations(p) {
			require.Len(t, shape, Size(p), "piece %s", p)

			minR, minC := shape[0].Row, shape[0].Col
			for _, cc := range shape {
				if cc.Row < minR {
					minR = cc.Row
				}
				if cc.Col < minC {
					minC = cc.Col
				}
			}
			assert.Equal(t, 0, minR, "piece %s", p)
			assert.Equal(t, 0, minC, "piece %s", p)

			for i := 1; i < len(shape); i++ {
				prev, cur := shape[i-1], shape[i]
				less := prev.Row < cur.Row || (prev.Row == cur.Row && prev.Col < cur.Col)
				assert.True(t, less, "piece %s not row-major sorted: %v", p, shape)
			}

			k := fmt.Sprint(shape)
			assert.False(t, seen[k], "piece %s duplicate orientation %v", p, shape)
			seen[k] = true
		}
	}
}

func TestCanonicalIsFirstOrientation(t *testing.T) {
	for p := domain.PieceID(0); p < domain.NumPieces; p++ {
		require.NotEmpty(t, Orientations(p))
		assert.Equal(t, Canonical(p), Orientations(p)[0], "piece %s", p)
	}
}

func TestPlacementsCoverGridExactly(t *testing.T) {
	for p := domain.PieceID(0); p < domain.NumPieces; p++ {
		wantCount := 0
		for _, shape := range Orientations(p) {
			h, w := 0, 0
			for _, cc := range shape {
				if cc.Row+1 > h {
					h = cc.Row + 1
				}
				if cc.Col+1 > w {
					w = cc.Col + 1
				}
			}
			wantCount += (domain.Rows - h + 1) * (domain.Cols - w + 1)
		}
		pls := Placements(p)
		assert.Equal(t, wantCount, len(pls), "piece %s", p)

		for _, pl := range pls {
			assert.Equal(t, p, pl.Piece)
			require.Len(t, pl.Cells, Size(p))
			assert.Equal(t, Size(p), pl.Mask.Count())
			assert.Equal(t, domain.CellMask(pl.Cells...), pl.Mask)
			for i, c := range pl.Cells {
				assert.True(t, c.Valid(), "piece %s cell %d", p, c)
				if i > 0 {
					assert.Less(t, int(pl.Cells[i-1]), int(c), "piece %s cells not ascending", p)
				}
			}
		}
	}
}

func TestFirstPlacementAnchorsTopLeft(t *testing.T) {
	pls := Placements(domain.PieceA)
	require.NotEmpty(t, pls)
	assert.Equal(t, []domain.Cell{0, 7, 14, 15, 16}, pls[0].Cells)
}

func TestPieceSetTotals(t *testing.T) {
	cells := 0
	for p := domain.PieceID(0); p < domain.NumPieces; p++ {
		cells += Size(p)
	}
	// Seven pentominoes plus one hexomino tile the 49-cell board minus
	// six blocked cells minus a two-cell date.
	assert.Equal(t, 41, cells)
	assert.Equal(t, domain.CellCount-domain.Blocked.Count()-2, cells)
}
