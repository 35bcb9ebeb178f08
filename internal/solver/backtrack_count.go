package solver

import (
	"context"
	"time"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/pieces"
	"svw.info/daygrid/internal/ports"
)

// Count walks the same tree as Enumerate without materializing solutions.
func (s *Backtracking) Count(ctx context.Context, a, b domain.Cell) (int, ports.Stats, error) {
	start := time.Now()
	if err := domain.ValidateExclusion(a, b); err != nil {
		return 0, ports.Stats{}, err
	}
	n := 0
	nodes, err := enumerate(ctx, a, b, func([]pieces.Placement) { n++ })
	return n, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
}
