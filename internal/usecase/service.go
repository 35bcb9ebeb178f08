package usecase

import (
	"context"
	"errors"
	"time"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/ports"
)

type Service struct {
	Tiler     ports.Tiler
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(t ports.Tiler, v ports.Validator, st ports.Storage) *Service {
	return &Service{Tiler: t, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// SolveDate enumerates every tiling that leaves the date's cells visible.
func (u *Service) SolveDate(ctx context.Context, d domain.Date) ([]domain.Solution, ports.Stats, error) {
	if u.Tiler == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if err := d.Validate(); err != nil {
		return nil, ports.Stats{}, err
	}
	a, b := d.Cells()
	return u.Tiler.Enumerate(ctx, a, b)
}

// SolveCells enumerates tilings for an arbitrary exclusion pair.
func (u *Service) SolveCells(ctx context.Context, a, b domain.Cell) ([]domain.Solution, ports.Stats, error) {
	if u.Tiler == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Tiler.Enumerate(ctx, a, b)
}

// CountDate counts tilings without materializing them.
func (u *Service) CountDate(ctx context.Context, d domain.Date) (int, ports.Stats, error) {
	if u.Tiler == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	if err := d.Validate(); err != nil {
		return 0, ports.Stats{}, err
	}
	a, b := d.Cells()
	return u.Tiler.Count(ctx, a, b)
}

func (u *Service) Validate(ctx context.Context, sol domain.Solution, a, b domain.Cell) (bool, []domain.Cell, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, sol, a, b)
}

// Persistence
func (u *Service) SaveRecord(ctx context.Context, d domain.Date, engine domain.EngineKind, sols []domain.Solution, st ports.Stats) (*domain.SolveRecord, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	rec := &domain.SolveRecord{
		Date:       d,
		Engine:     engine,
		Count:      len(sols),
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
		Solutions:  sols,
		CreatedAt:  time.Now().UnixNano(),
	}
	if err := u.Storage.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *Service) LoadRecord(ctx context.Context, d domain.Date) (*domain.SolveRecord, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, d)
}

func (u *Service) ListRecords(ctx context.Context) ([]domain.RecordMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
