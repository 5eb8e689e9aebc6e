package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(s string) *time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestCalculateMetricsCountsOnlyCompleteShifts(t *testing.T) {
	rows := []Attendance{
		{CheckIn: ts("2026-01-05 08:00"), CheckOut: ts("2026-01-05 16:30")}, // 8.5h
		{CheckIn: ts("2026-01-06 09:00"), CheckOut: ts("2026-01-06 17:00")}, // 8h
		{CheckIn: ts("2026-01-07 08:00")},                                   // open, ignored
		{},                                                                  // no timestamps, ignored
	}

	m := CalculateMetrics(rows)

	assert.Equal(t, 2, m.WorkedDays)
	assert.InDelta(t, 16.5, m.TotalHours, 1e-9)
}

func TestCalculateMetricsEmpty(t *testing.T) {
	m := CalculateMetrics(nil)
	assert.Equal(t, 0, m.WorkedDays)
	assert.Zero(t, m.TotalHours)
}

func TestCalculateMetricsOvernightShift(t *testing.T) {
	rows := []Attendance{
		{CheckIn: ts("2026-01-05 22:00"), CheckOut: ts("2026-01-06 06:00")},
	}

	m := CalculateMetrics(rows)
	assert.Equal(t, 1, m.WorkedDays)
	assert.InDelta(t, 8.0, m.TotalHours, 1e-9)
}

func TestMonthRange(t *testing.T) {
	cases := []struct {
		month, year int
		lastDay     int
	}{
		{1, 2026, 31},
		{4, 2026, 30},
		{2, 2026, 28},
		{2, 2024, 29}, // leap year
		{12, 2026, 31},
	}

	for _, c := range cases {
		first, last := MonthRange(c.month, c.year)
		assert.Equal(t, 1, first.Day())
		assert.Equal(t, time.Month(c.month), first.Month())
		assert.Equal(t, c.lastDay, last.Day(), "month %d/%d", c.month, c.year)
		assert.Equal(t, time.Month(c.month), last.Month())
	}
}
