package timesheet

import (
	"errors"
	"math"
	"time"

	"github.com/cmlabs-hris/worklog-backend-go/internal/pkg/spreadsheet"
)

// ErrUnparseableDate marks a date cell that fits no supported encoding. Rows
// carrying it are skipped by ingestion.
var ErrUnparseableDate = errors.New("unparseable date")

// serialEpochOffset is the day count between the spreadsheet serial epoch
// (serial 1 = 1900-01-01 under the 1900 date system) and 1970-01-01.
const serialEpochOffset = 25569

// dateLayouts are tried in order against textual date cells. Any time-of-day
// suffix is parsed and then discarded.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
	"1-2-2006",
	"01-02-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006 15:04",
	time.RFC3339,
}

// NormalizeDate converts a raw date cell into a date-only UTC time. Numeric
// cells are day serials; text cells are matched against dateLayouts.
func NormalizeDate(cell spreadsheet.Cell) (time.Time, error) {
	switch cell.Kind {
	case spreadsheet.CellNumeric:
		days := int64(math.Floor(cell.Number - serialEpochOffset))
		t := time.Unix(days*86400, 0).UTC()
		return truncateToDate(t), nil
	case spreadsheet.CellText:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, cell.Text); err == nil {
				return truncateToDate(t.UTC()), nil
			}
		}
		return time.Time{}, ErrUnparseableDate
	default:
		return time.Time{}, ErrUnparseableDate
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
