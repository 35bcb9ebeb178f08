package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/pieces"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show each piece and its distinct orientations",
	Run: func(cmd *cobra.Command, args []string) {
		for p := domain.PieceID(0); p < domain.NumPieces; p++ {
			ors := pieces.Orientations(p)
			fmt.Printf("%s: %d cells, %d orientations, %d placements\n",
				p, pieces.Size(p), len(ors), len(pieces.Placements(p)))
			blocks := make([]string, len(ors))
			for i, shape := range ors {
				blocks[i] = shapeArt(shape, p.Letter())
			}
			fmt.Println(joinBlocks(blocks))
		}
	},
}

func init() {
	rootCmd.AddCommand(piecesCmd)
}

// shapeArt draws one orientation as a small letter grid.
func shapeArt(shape pieces.Shape, letter byte) string {
	h, w := 0, 0
	for _, cc := range shape {
		if cc.Row+1 > h {
			h = cc.Row + 1
		}
		if cc.Col+1 > w {
			w = cc.Col + 1
		}
	}
	grid := make([][]byte, h)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(".", w))
	}
	for _, cc := range shape {
		grid[cc.Row][cc.Col] = letter
	}
	lines := make([]string, h)
	for r, row := range grid {
		lines[r] = string(row)
	}
	return strings.Join(lines, "\n")
}

// joinBlocks lays the orientation grids out side by side.
func joinBlocks(blocks []string) string {
	split := make([][]string, len(blocks))
	height := 0
	for i, b := range blocks {
		split[i] = strings.Split(b, "\n")
		if len(split[i]) > height {
			height = len(split[i])
		}
	}
	var sb strings.Builder
	for line := 0; line < height; line++ {
		for i, rows := range split {
			if i > 0 {
				sb.WriteString("   ")
			}
			width := len(rows[0])
			if line < len(rows) {
				sb.WriteString(rows[line])
			} else {
				sb.WriteString(strings.Repeat(" ", width))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
