// Package almanac drives a tiling engine across many dates and aggregates
// per-date solution counts.
package almanac

import (
	"time"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/ports"
)

// Census counts tilings for a set of dates using a provided Tiler.
type Census struct {
	Tiler ports.Tiler
}

// New wires a census that counts with the given engine.
func New(t ports.Tiler) *Census {
	return &Census{Tiler: t}
}

// DateCount is the census result for one date.
type DateCount struct {
	Date     domain.Date
	Count    int
	Nodes    int
	Duration time.Duration
}
