package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"svw.info/daygrid/internal/domain"
)

// FS stores one JSON record per date under <dir>/MM/DD.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(d domain.Date) string {
	return filepath.Join(s.dir, fmt.Sprintf("%02d", int(d.Month)), fmt.Sprintf("%02d.json", d.Day))
}

func (s *FS) Save(ctx context.Context, rec *domain.SolveRecord) error {
	if rec == nil {
		return errors.New("invalid record: nil")
	}
	if err := rec.Date.Validate(); err != nil {
		return err
	}
	// Ensure directory ./data/MM exists
	target := s.pathFor(rec.Date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func (s *FS) Load(ctx context.Context, d domain.Date) (*domain.SolveRecord, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.pathFor(d))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, err
	}
	var out domain.SolveRecord
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.RecordMeta, error) {
	months, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []domain.RecordMeta
	for _, me := range months {
		if !me.IsDir() {
			continue
		}
		days, err := os.ReadDir(filepath.Join(s.dir, me.Name()))
		if err != nil {
			continue
		}
		for _, de := range days {
			if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, me.Name(), de.Name()))
			if err != nil {
				continue
			}
			var rec struct {
				Date      domain.Date `json:"date"`
				Count     int         `json:"count"`
				CreatedAt int64       `json:"createdAt"`
			}
			if err := json.Unmarshal(data, &rec); err != nil || rec.Date.Validate() != nil {
				continue
			}
			out = append(out, domain.RecordMeta{
				Date:      rec.Date,
				Count:     rec.Count,
				CreatedAt: rec.CreatedAt,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Month != out[j].Date.Month {
			return out[i].Date.Month < out[j].Date.Month
		}
		return out[i].Date.Day < out[j].Date.Day
	})
	return out, nil
}
