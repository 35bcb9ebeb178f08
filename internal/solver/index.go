package solver

import (
	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/pieces"
)

// byCell indexes, for each board cell, the placements of each piece that
// cover it, pre-filtered against the permanently blocked cells. Built once
// at init and read-only afterwards, so engines can run concurrently.
var byCell [domain.CellCount][domain.NumPieces][]pieces.Placement

func init() {
	for p := domain.PieceID(0); p < domain.NumPieces; p++ {
		for _, pl := range pieces.Placements(p) {
			if pl.Mask.Overlaps(domain.Blocked) {
				continue
			}
			for _, c := range pl.Cells {
				byCell[c][p] = append(byCell[c][p], pl)
			}
		}
	}
}

// viablePlacements lists every placement disjoint from the banned cells, in
// piece-major table order. Shared by the exact-cover and SAT engines.
func viablePlacements(banned domain.Mask) []pieces.Placement {
	var out []pieces.Placement
	for p := domain.PieceID(0); p < domain.NumPieces; p++ {
		for _, pl := range pieces.Placements(p) {
			if !pl.Mask.Overlaps(banned) {
				out = append(out, pl)
			}
		}
	}
	return out
}

// toSolution orders a chosen placement set by piece ID with copied cell
// slices, detaching the result from the shared tables.
func toSolution(chosen []pieces.Placement) domain.Solution {
	byPiece := make([]domain.PlacedPiece, domain.NumPieces)
	for _, pl := range chosen {
		cells := append([]domain.Cell(nil), pl.Cells...)
		byPiece[pl.Piece] = domain.PlacedPiece{Piece: pl.Piece, Cells: cells}
	}
	return domain.Solution{Placements: byPiece}
}
