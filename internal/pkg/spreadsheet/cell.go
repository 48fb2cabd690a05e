package spreadsheet

import (
	"strconv"
	"strings"
)

type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumeric
	CellText
)

// Cell is a raw spreadsheet cell. Text always holds the trimmed source text,
// even for numeric cells, so callers can persist the value exactly as uploaded.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

func parseCell(raw string) Cell {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Cell{Kind: CellEmpty}
	}
	if number, err := strconv.ParseFloat(text, 64); err == nil {
		return Cell{Kind: CellNumeric, Number: number, Text: text}
	}
	return Cell{Kind: CellText, Text: text}
}

// Row is one spreadsheet row keyed by normalized column header.
type Row struct {
	// Number is the 1-based row number in the source file, headers included.
	Number int
	Cells  map[string]Cell
}

// Cell returns the cell under the given normalized header, or an empty cell
// when the column is missing from this row.
func (r Row) Cell(label string) Cell {
	return r.Cells[label]
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}
