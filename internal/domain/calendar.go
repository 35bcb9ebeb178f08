package domain

import (
	"errors"
	"fmt"
	"time"
)

// The physical board: month labels on the top two rows, day labels 1..31
// below, and six cells that are never coverable.
//
//	Jan Feb Mar Apr May Jun  --
//	Jul Aug Sep Oct Nov Dec  --
//	  1   2   3   4   5   6   7
//	  8   9  10  11  12  13  14
//	 15  16  17  18  19  20  21
//	 22  23  24  25  26  27  28
//	 29  30  31  --  --  --  --

// Blocked marks the six permanently unusable cells: the right edge of the
// month rows and the tail of the bottom row.
const Blocked Mask = 1<<6 | 1<<13 | 1<<45 | 1<<46 | 1<<47 | 1<<48

var (
	// ErrInvalidCell reports an exclusion cell outside the board or a
	// pair that names the same cell twice.
	ErrInvalidCell = errors.New("invalid cell")
	// ErrInvalidDate reports a month outside 1..12 or a day outside 1..31.
	ErrInvalidDate = errors.New("invalid date")
)

// ValidateExclusion checks the two uncovered cells of a solve request.
func ValidateExclusion(a, b Cell) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidCell, int(a), CellCount)
	}
	if !b.Valid() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidCell, int(b), CellCount)
	}
	if a == b {
		return fmt.Errorf("%w: excluded cells must differ, got %d twice", ErrInvalidCell, int(a))
	}
	return nil
}

// Date is a month/day pair on the board. Days run 1..31 for every month;
// the board has no notion of month length, so Feb 31 is a legal request.
type Date struct {
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// Now is the clock used by Today. Tests may substitute it.
var Now = time.Now

// Today returns the current month and day.
func Today() Date {
	t := Now()
	return Date{Month: t.Month(), Day: t.Day()}
}

// NewDate validates and builds a Date.
func NewDate(month, day int) (Date, error) {
	d := Date{Month: time.Month(month), Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

func (d Date) Validate() error {
	if d.Month < time.January || d.Month > time.December {
		return fmt.Errorf("%w: month %d not in 1..12", ErrInvalidDate, int(d.Month))
	}
	if d.Day < 1 || d.Day > 31 {
		return fmt.Errorf("%w: day %d not in 1..31", ErrInvalidDate, d.Day)
	}
	return nil
}

// MonthCell returns the label cell of the month: row 0 holds Jan..Jun,
// row 1 holds Jul..Dec.
func (d Date) MonthCell() Cell {
	m := int(d.Month)
	if m <= 6 {
		return Cell(m - 1)
	}
	return Cell(m)
}

// DayCell returns the label cell of the day, on rows 2..6.
func (d Date) DayCell() Cell { return Cell(13 + d.Day) }

// Cells returns the two cells a solve for this date leaves uncovered.
func (d Date) Cells() (Cell, Cell) { return d.MonthCell(), d.DayCell() }

func (d Date) String() string {
	return fmt.Sprintf("%s %d", MonthLabel(d.Month), d.Day)
}

// MonthLabel is the three-letter month name used on the board.
func MonthLabel(m time.Month) string { return m.String()[:3] }
