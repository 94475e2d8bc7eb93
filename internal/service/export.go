package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
	"unicode/utf8"

	"prequal-reporting-api/internal/entity"

	"github.com/xuri/excelize/v2"
)

const (
	reportSheet = "Report"

	minColumnWidth = 8
	maxColumnWidth = 80
)

// ExportFilename names a download the way the report builder UI expects,
// e.g. Report_20240131_154500.xlsx.
func ExportFilename(e Exporter, now time.Time) string {
	return fmt.Sprintf("Report_%s.%s", now.Format("20060102_150405"), e.Extension())
}

func validateExport(report *entity.ReportResult) error {
	if report == nil || len(report.ColumnHeaders) == 0 || len(report.Rows) == 0 {
		return ErrNothingToExport
	}

	return nil
}

// cells lays the report out as a grid: the header line followed by one line
// per row. Cells are read by position; a short row is padded with empty cells.
func cells(report *entity.ReportResult) [][]string {
	grid := make([][]string, 0, len(report.Rows)+1)
	grid = append(grid, report.ColumnHeaders)
	for _, row := range report.Rows {
		line := make([]string, len(report.ColumnHeaders))
		for i := range line {
			if i < len(row) {
				line[i] = row[i].Value
			}
		}
		grid = append(grid, line)
	}

	return grid
}

type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) Extension() string {
	return "xlsx"
}

func (e *ExcelExporter) Export(report *entity.ReportResult) ([]byte, error) {
	if err := validateExport(report); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), reportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	grid := cells(report)
	widths := make([]int, len(report.ColumnHeaders))
	for r, line := range grid {
		for c, value := range line {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(reportSheet, cell, value); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
			if n := utf8.RuneCountInString(value); n > widths[c] {
				widths[c] = n
			}
		}
	}

	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(report.ColumnHeaders), 1)
	if err := f.SetCellStyle(reportSheet, first, last, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for c, w := range widths {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(reportSheet, name, name, columnWidth(w)); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func columnWidth(chars int) float64 {
	w := chars + 2
	if w < minColumnWidth {
		w = minColumnWidth
	}
	if w > maxColumnWidth {
		w = maxColumnWidth
	}

	return float64(w)
}

type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) ContentType() string {
	return "text/csv; charset=utf-8"
}

func (e *CSVExporter) Extension() string {
	return "csv"
}

func (e *CSVExporter) Export(report *entity.ReportResult) ([]byte, error) {
	if err := validateExport(report); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(cells(report)); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	return buf.Bytes(), nil
}
