package ports

import (
	"context"
	"time"

	"svw.info/daygrid/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Tiler enumerates complete board tilings that leave two given cells
// uncovered. Implementations are deterministic: the same exclusion pair
// always yields the same solutions in the same order. A pair with no
// tilings yields an empty list, not an error.
type Tiler interface {
	Enumerate(ctx context.Context, a, b domain.Cell) ([]domain.Solution, Stats, error)
	Count(ctx context.Context, a, b domain.Cell) (int, Stats, error)
}

// Validator performs fast whole-solution checks (coverage, overlap,
// piece legality).
type Validator interface {
	Validate(ctx context.Context, sol domain.Solution, a, b domain.Cell) (ok bool, conflicts []domain.Cell, err error)
}

// Storage persists and retrieves solve records as JSON.
type Storage interface {
	Save(ctx context.Context, rec *domain.SolveRecord) error
	Load(ctx context.Context, d domain.Date) (*domain.SolveRecord, error)
	List(ctx context.Context) ([]domain.RecordMeta, error)
}
