package timesheet

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/worklog-backend-go/internal/pkg/spreadsheet"
)

type TimeKind int

const (
	// TimeEmpty means no usable time was recorded in the cell.
	TimeEmpty TimeKind = iota
	// TimeFraction is an Excel-style time serial, a fraction of a 24-hour day.
	TimeFraction
	// TimeClock is a textual "HH:MM" time of day.
	TimeClock
)

// TimeValue is the canonical form of an in/out time cell. Display always
// carries the trimmed source text regardless of whether parsing succeeded;
// the stored display string and the computed duration are derived separately
// from the same cell.
type TimeValue struct {
	Kind     TimeKind
	Fraction float64
	Hour     int
	Minute   int
	Display  string
}

// ParseTimeValue converts a raw cell into a TimeValue. Malformed input
// degrades to TimeEmpty; it never fails.
func ParseTimeValue(cell spreadsheet.Cell) TimeValue {
	switch cell.Kind {
	case spreadsheet.CellNumeric:
		return TimeValue{Kind: TimeFraction, Fraction: cell.Number, Display: cell.Text}
	case spreadsheet.CellText:
		value := TimeValue{Kind: TimeEmpty, Display: cell.Text}
		parts := strings.SplitN(cell.Text, ":", 3)
		if len(parts) < 2 {
			return value
		}
		hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return value
		}
		minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return value
		}
		value.Kind = TimeClock
		value.Hour = hour
		value.Minute = minute
		return value
	default:
		return TimeValue{Kind: TimeEmpty}
	}
}
