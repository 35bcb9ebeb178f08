package solver

import (
	"context"
	"time"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/pieces"
	"svw.info/daygrid/internal/ports"
)

// Enumerate returns every tiling for the exclusion pair in discovery order.
func (s *Backtracking) Enumerate(ctx context.Context, a, b domain.Cell) ([]domain.Solution, ports.Stats, error) {
	start := time.Now()
	if err := domain.ValidateExclusion(a, b); err != nil {
		return nil, ports.Stats{}, err
	}
	sols := []domain.Solution{}
	nodes, err := enumerate(ctx, a, b, func(chosen []pieces.Placement) {
		sols = append(sols, toSolution(chosen))
	})
	return sols, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
}
