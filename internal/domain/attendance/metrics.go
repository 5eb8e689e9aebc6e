package attendance

import "time"

// Metrics is the attendance aggregate payroll consumes for one
// employee and month.
type Metrics struct {
	WorkedDays int
	TotalHours float64
}

// CalculateMetrics counts complete shifts and sums their hours. Rows
// missing either end contribute to neither figure.
func CalculateMetrics(rows []Attendance) Metrics {
	var m Metrics
	for _, row := range rows {
		if !row.IsComplete() {
			continue
		}
		m.WorkedDays++
		m.TotalHours += row.CheckOut.Sub(*row.CheckIn).Hours()
	}
	return m
}

// MonthRange returns the first and last calendar day of (month, year).
// AddDate normalizes the overflow, so 28/29/30/31-day months and leap
// years come out right.
func MonthRange(month int, year int) (first, last time.Time) {
	first = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}
