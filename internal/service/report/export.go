package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"Employee Name", "Expected Hours", "Actual Hours", "Leaves Taken", "Productivity %"}

// SummaryCSV implements report.ReportService.
func (s *ReportServiceImpl) SummaryCSV(ctx context.Context) ([]byte, error) {
	monthly, err := s.MonthlyReport(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range monthly.Summary {
		record := []string{
			row.Name,
			row.TotalExpectedHours,
			row.TotalActualHours,
			strconv.Itoa(row.LeavesTaken),
			row.ProductivityDisplay,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// SummaryWorkbook implements report.ReportService.
func (s *ReportServiceImpl) SummaryWorkbook(ctx context.Context) ([]byte, error) {
	monthly, err := s.MonthlyReport(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"
	if err := f.SetSheetName(sheet, "Summary"); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue("Summary", cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
		if err := f.SetCellStyle("Summary", cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header cell: %w", err)
		}
	}
	if err := f.SetColWidth("Summary", "A", "E", 18); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}

	for i, row := range monthly.Summary {
		values := []interface{}{
			row.Name,
			row.TotalExpectedHours,
			row.TotalActualHours,
			row.LeavesTaken,
			row.ProductivityDisplay,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue("Summary", cell, value); err != nil {
				return nil, fmt.Errorf("failed to write summary cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
