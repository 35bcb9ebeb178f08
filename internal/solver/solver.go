// Package solver implements the tiling engines behind ports.Tiler: a
// recursive backtracker, an Algorithm X / Dancing Links exact-cover
// engine, and a CNF encoding run through a SAT solver. All three
// enumerate the complete solution set for an exclusion pair; they share
// the precomputed placement tables and differ only in search strategy.
package solver

import (
	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/ports"
)

// ForKind returns the engine for a kind, defaulting to backtracking.
func ForKind(k domain.EngineKind) ports.Tiler {
	switch k {
	case domain.EngineDLX:
		return NewExactCover()
	case domain.EngineSAT:
		return NewSAT()
	default:
		return NewBacktracking()
	}
}
