// Package render formats solutions for terminals and web pages.
package render

import (
	"fmt"
	"strings"
	"time"

	"svw.info/daygrid/internal/domain"
)

const (
	blockedChar = '#'
	openChar    = ' '
)

// labels fills a 7x7 letter grid from a solution: piece letters for
// covered cells, '#' for blocked cells, ' ' for the excluded pair, and
// '.' for anything an incomplete solution leaves open.
func labels(sol domain.Solution, a, b domain.Cell) [domain.CellCount]byte {
	var g [domain.CellCount]byte
	for i := range g {
		g[i] = '.'
	}
	for _, c := range domain.Blocked.Cells() {
		g[c] = blockedChar
	}
	if a.Valid() {
		g[a] = openChar
	}
	if b.Valid() {
		g[b] = openChar
	}
	for _, pp := range sol.Placements {
		for _, c := range pp.Cells {
			if c.Valid() {
				g[c] = pp.Piece.Letter()
			}
		}
	}
	return g
}

// Simple renders the bare 7x7 letter grid, one row per line.
func Simple(sol domain.Solution, a, b domain.Cell) string {
	g := labels(sol, a, b)
	var sb strings.Builder
	for r := 0; r < domain.Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(g[r*domain.Cols : (r+1)*domain.Cols])
	}
	return sb.String()
}

// Calendar renders the labeled board for a date: the month and day cells
// keep their bracketed labels, covered cells show the piece letter.
func Calendar(sol domain.Solution, d domain.Date) string {
	a, b := d.Cells()
	g := labels(sol, a, b)
	lines := make([]string, 0, domain.Rows+2)
	lines = append(lines, fmt.Sprintf("Solution for %s:", d), "")
	for row := 0; row < 2; row++ {
		var sb strings.Builder
		for col := 0; col < 6; col++ {
			cell := domain.CellAt(row, col)
			if g[cell] == openChar {
				m := time.Month(row*6 + col + 1)
				fmt.Fprintf(&sb, "[%4s]", domain.MonthLabel(m))
			} else {
				fmt.Fprintf(&sb, "  %c   ", g[cell])
			}
		}
		lines = append(lines, sb.String())
	}
	for row := 2; row < domain.Rows; row++ {
		var sb strings.Builder
		for col := 0; col < domain.Cols; col++ {
			cell := domain.CellAt(row, col)
			day := (row-2)*domain.Cols + col + 1
			if domain.Blocked.Has(cell) || day > 31 {
				sb.WriteString("      ")
				continue
			}
			if g[cell] == openChar {
				fmt.Fprintf(&sb, "[%3d ]", day)
			} else {
				fmt.Fprintf(&sb, "  %c   ", g[cell])
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
