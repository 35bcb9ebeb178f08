package almanac

import (
	"context"
	"sync"
	"time"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/ports"
)

// AllDates lists every month/day combination on the board in calendar
// order, including days no real month has.
func AllDates() []domain.Date {
	out := make([]domain.Date, 0, 12*31)
	for m := time.January; m <= time.December; m++ {
		for day := 1; day <= 31; day++ {
			out = append(out, domain.Date{Month: m, Day: day})
		}
	}
	return out
}

// Run counts tilings for each date with up to workers concurrent solves.
// Results keep the input order regardless of completion order. The first
// error aborts scheduling; aggregate stats cover the whole run.
func (c *Census) Run(ctx context.Context, dates []domain.Date, workers int) ([]DateCount, ports.Stats, error) {
	start := time.Now()
	if workers < 1 {
		workers = 1
	}
	results := make([]DateCount, len(dates))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	totalNodes := 0

	for i, d := range dates {
		mu.Lock()
		failed := firstErr != nil
		mu.Unlock()
		if failed || ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, d domain.Date) {
			defer wg.Done()
			defer func() { <-sem }()
			a, b := d.Cells()
			n, st, err := c.Tiler.Count(ctx, a, b)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[i] = DateCount{Date: d, Count: n, Nodes: st.Nodes, Duration: st.Duration}
			totalNodes += st.Nodes
		}(i, d)
	}
	wg.Wait()
	if firstErr == nil && ctx.Err() != nil {
		firstErr = ctx.Err()
	}
	return results, ports.Stats{Nodes: totalNodes, Duration: time.Since(start)}, firstErr
}

// Extremes returns the entries with the fewest and the most tilings. Ties
// keep the earlier date.
func Extremes(res []DateCount) (lo, hi DateCount) {
	if len(res) == 0 {
		return
	}
	lo, hi = res[0], res[0]
	for _, r := range res[1:] {
		if r.Count < lo.Count {
			lo = r
		}
		if r.Count > hi.Count {
			hi = r
		}
	}
	return lo, hi
}
