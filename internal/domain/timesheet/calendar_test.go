package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthDetails_July2024(t *testing.T) {
	t.Parallel()

	// July 2024: 31 days, 4 Sundays, 4 Saturdays, 23 weekdays.
	stats := MonthDetails(2024, 6)

	assert.Equal(t, 23*8.5+4*4.0, stats.ExpectedHours)
	assert.Equal(t, 211.5, stats.ExpectedHours)
	assert.Equal(t, 27, stats.TotalWorkingDays)
}

func TestMonthDetails_September2024(t *testing.T) {
	t.Parallel()

	// September 2024: 30 days, 5 Sundays, 4 Saturdays, 21 weekdays.
	stats := MonthDetails(2024, 8)

	assert.Equal(t, 21*8.5+4*4.0, stats.ExpectedHours)
	assert.Equal(t, 25, stats.TotalWorkingDays)
}

func TestMonthDetails_LeapFebruary(t *testing.T) {
	t.Parallel()

	// February 2024: 29 days, 4 Sundays, 4 Saturdays, 21 weekdays.
	stats := MonthDetails(2024, 1)

	assert.Equal(t, 21*8.5+4*4.0, stats.ExpectedHours)
	assert.Equal(t, 25, stats.TotalWorkingDays)
}
