package spreadsheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"licsum/internal/domain"
)

// Layout of the summary sheet. Fixed columns first, then one spacer and
// one dynamic column per distinct license-set label.
const (
	colCount       = 1
	colCombination = 2
	colFirstFlag   = 3
	colSpacer      = colFirstFlag + len(domain.LicenseCategories)
	colFirstGroup  = colSpacer + 1
)

// Writer renders a SummaryReport to a new xlsx workbook.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// SummaryPath derives the output path from the license report path:
// the input stem with a "_summary" suffix, e.g. "report_summary.xlsx".
func SummaryPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	if ext == "" {
		ext = ".xlsx"
	}
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(filepath.Dir(inputPath), stem+"_summary"+ext)
}

// WriteSummary renders the report: a styled header row, one row per
// combination, and a totals row. Flag columns hold 1 where the combination
// requires the category; dynamic license-set columns hold the member count
// under the combination's license-set label.
func (w *Writer) WriteSummary(report *domain.SummaryReport, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"000080"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	centerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    []excelize.Border{{Type: "top", Style: 2, Color: "000000"}},
	})
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	labels := report.LicenseSetLabels()
	lastCol := colFirstFlag + len(domain.LicenseCategories) - 1
	if len(labels) > 0 {
		lastCol = colSpacer + len(labels)
	}

	if err := w.writeHeader(f, sheet, labels, headerStyle); err != nil {
		return err
	}

	groupTotals := make(map[string]int, len(labels))
	for i, combo := range report.Combinations {
		row := i + 2
		setCell(f, sheet, colCount, row, combo.Count)
		setStyle(f, sheet, colCount, row, centerStyle)
		setCell(f, sheet, colCombination, row, combo.Label())
		for j, required := range combo.Licenses {
			if required {
				setCell(f, sheet, colFirstFlag+j, row, 1)
				setStyle(f, sheet, colFirstFlag+j, row, centerStyle)
			}
		}
		if combo.Licenses.Any() {
			label := combo.Licenses.Label()
			groupTotals[label] += combo.Count
			for j, l := range labels {
				if l == label {
					setCell(f, sheet, colFirstGroup+j, row, combo.Count)
					setStyle(f, sheet, colFirstGroup+j, row, centerStyle)
				}
			}
		}
	}

	totalRow := len(report.Combinations) + 2
	setCell(f, sheet, colCount, totalRow, report.TotalUsers)
	setCell(f, sheet, colCombination, totalRow, "Total")
	for j, total := range report.LicenseTotals {
		setCell(f, sheet, colFirstFlag+j, totalRow, total)
	}
	for j, label := range labels {
		setCell(f, sheet, colFirstGroup+j, totalRow, groupTotals[label])
	}
	first, _ := excelize.CoordinatesToCellName(colCount, totalRow)
	last, _ := excelize.CoordinatesToCellName(lastCol, totalRow)
	if err := f.SetCellStyle(sheet, first, last, totalStyle); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// writeHeader writes and styles the header row and column widths.
func (w *Writer) writeHeader(f *excelize.File, sheet string, labels []string, style int) error {
	type column struct {
		col   int
		title string
		width float64
	}
	columns := []column{
		{colCount, "Count", 10},
		{colCombination, "Role Combination", 40},
	}
	for i, cat := range domain.LicenseCategories {
		columns = append(columns, column{colFirstFlag + i, cat, 10})
	}
	if len(labels) > 0 {
		columns = append(columns, column{colSpacer, "", 15})
		for i, label := range labels {
			columns = append(columns, column{colFirstGroup + i, label, 20})
		}
	}

	for _, c := range columns {
		setCell(f, sheet, c.col, 1, c.title)
		setStyle(f, sheet, c.col, 1, style)
		name, err := excelize.ColumnNumberToName(c.col)
		if err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		if err := f.SetColWidth(sheet, name, name, c.width); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellValue(sheet, cell, value)
}

func setStyle(f *excelize.File, sheet string, col, row int, style int) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellStyle(sheet, cell, cell, style)
}
