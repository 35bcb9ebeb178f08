package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockedCells(t *testing.T) {
	assert.Equal(t, []Cell{6, 13, 45, 46, 47, 48}, Blocked.Cells())
	for _, c := range Blocked.Cells() {
		row, col := c.Row(), c.Col()
		onMonthEdge := (row == 0 || row == 1) && col == 6
		onBottomTail := row == 6 && col >= 3
		assert.True(t, onMonthEdge || onBottomTail, "cell %d at (%d,%d)", c, row, col)
	}
}

func TestDateCells(t *testing.T) {
	cases := []struct {
		month time.Month
		day   int
		mCell Cell
		dCell Cell
	}{
		{time.January, 1, 0, 14},
		{time.June, 30, 5, 43},
		{time.July, 1, 7, 14},
		{time.August, 21, 8, 34},
		{time.December, 31, 12, 44},
		{time.February, 29, 1, 42},
	}
	for _, tc := range cases {
		d := Date{Month: tc.month, Day: tc.day}
		require.NoError(t, d.Validate())
		a, b := d.Cells()
		assert.Equal(t, tc.mCell, a, "%s month cell", d)
		assert.Equal(t, tc.dCell, b, "%s day cell", d)
		assert.False(t, Blocked.Has(a), "%s month cell blocked", d)
		assert.False(t, Blocked.Has(b), "%s day cell blocked", d)
	}
}

func TestEveryDateMapsOntoLabelCells(t *testing.T) {
	seenMonth := map[Cell]bool{}
	for m := time.January; m <= time.December; m++ {
		c := Date{Month: m, Day: 1}.MonthCell()
		assert.True(t, c.Valid())
		assert.True(t, c.Row() <= 1, "month %s cell %d", m, c)
		assert.False(t, seenMonth[c], "month cell %d reused", c)
		seenMonth[c] = true
	}
	seenDay := map[Cell]bool{}
	for day := 1; day <= 31; day++ {
		c := Date{Month: time.January, Day: day}.DayCell()
		assert.True(t, c.Valid())
		assert.True(t, c.Row() >= 2, "day %d cell %d", day, c)
		assert.False(t, seenDay[c], "day cell %d reused", c)
		seenDay[c] = true
	}
}

func TestNewDateValidation(t *testing.T) {
	cases := []struct {
		month, day int
		ok         bool
	}{
		{1, 1, true},
		{12, 31, true},
		{2, 31, true}, // the board accepts days no month has
		{0, 5, false},
		{13, 5, false},
		{5, 0, false},
		{5, 32, false},
	}
	for _, tc := range cases {
		_, err := NewDate(tc.month, tc.day)
		if tc.ok {
			assert.NoError(t, err, "month=%d day=%d", tc.month, tc.day)
		} else {
			assert.ErrorIs(t, err, ErrInvalidDate, "month=%d day=%d", tc.month, tc.day)
		}
	}
}

func TestValidateExclusion(t *testing.T) {
	assert.NoError(t, ValidateExclusion(0, 14))
	assert.ErrorIs(t, ValidateExclusion(-1, 14), ErrInvalidCell)
	assert.ErrorIs(t, ValidateExclusion(0, 49), ErrInvalidCell)
	assert.ErrorIs(t, ValidateExclusion(20, 20), ErrInvalidCell)
}

func TestToday(t *testing.T) {
	orig := Now
	defer func() { Now = orig }()
	Now = func() time.Time { return time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC) }

	d := Today()
	assert.Equal(t, Date{Month: time.March, Day: 9}, d)
	assert.Equal(t, "Mar 9", d.String())
}
