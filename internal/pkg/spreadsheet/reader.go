package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadRows parses uploaded spreadsheet bytes into ordered rows keyed by the
// normalized headers of the first row. CSV uploads are detected by filename
// extension; everything else goes through the xlsx reader. Cell values are
// read raw (unformatted), which is what keeps the numeric-vs-text distinction
// of time and date cells intact.
func ReadRows(data []byte, filename string) ([]Row, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return readCSV(data)
	default:
		return readWorkbook(data)
	}
}

func readWorkbook(data []byte) ([]Row, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	raw, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheetName, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("worksheet %q is empty", sheetName)
	}

	return buildRows(raw), nil
}

func readCSV(data []byte) ([]Row, error) {
	// Decode with BOM detection so UTF-16 exports from desktop tools still parse.
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(bytes.NewReader(data), decoder))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var raw [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(raw)+1, err)
		}
		raw = append(raw, record)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("csv file is empty")
	}

	return buildRows(raw), nil
}

func buildRows(raw [][]string) []Row {
	headers := make([]string, len(raw[0]))
	for i, header := range raw[0] {
		headers[i] = normalizeHeader(header)
	}

	rows := make([]Row, 0, len(raw)-1)
	for i, record := range raw[1:] {
		cells := make(map[string]Cell, len(headers))
		for j, header := range headers {
			if header == "" {
				continue
			}
			if j < len(record) {
				cells[header] = parseCell(record[j])
			} else {
				cells[header] = Cell{Kind: CellEmpty}
			}
		}
		rows = append(rows, Row{Number: i + 2, Cells: cells})
	}
	return rows
}
