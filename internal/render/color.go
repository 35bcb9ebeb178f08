package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/daygrid/internal/domain"
)

// one background per piece, picked from the 256-color palette for contrast
var pieceStyles = [domain.NumPieces]lipgloss.Style{
	lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("231")),
	lipgloss.NewStyle().Background(lipgloss.Color("168")).Foreground(lipgloss.Color("231")),
	lipgloss.NewStyle().Background(lipgloss.Color("35")).Foreground(lipgloss.Color("231")),
	lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("16")),
	lipgloss.NewStyle().Background(lipgloss.Color("99")).Foreground(lipgloss.Color("231")),
	lipgloss.NewStyle().Background(lipgloss.Color("172")).Foreground(lipgloss.Color("16")),
	lipgloss.NewStyle().Background(lipgloss.Color("31")).Foreground(lipgloss.Color("231")),
	lipgloss.NewStyle().Background(lipgloss.Color("136")).Foreground(lipgloss.Color("16")),
}

var blockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Color renders the board with one background color per piece. The piece
// letters stay in the output, so the board remains readable on terminals
// without color support.
func Color(sol domain.Solution, a, b domain.Cell) string {
	g := labels(sol, a, b)
	var sb strings.Builder
	for r := 0; r < domain.Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < domain.Cols; c++ {
			ch := g[domain.CellAt(r, c)]
			switch {
			case ch == blockedChar:
				sb.WriteString(blockedStyle.Render(" # "))
			case ch >= 'A' && ch <= 'H':
				p := domain.PieceID(ch - 'A')
				sb.WriteString(pieceStyles[p].Render(fmt.Sprintf(" %c ", ch)))
			default:
				sb.WriteString("[ ]")
			}
		}
	}
	return sb.String()
}
