// Package spreadsheet reads the two workbook inputs and writes the styled
// summary workbook using excelize.
package spreadsheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"licsum/internal/domain"
)

// Section marker cells in the license report export.
const (
	aliasHeader = "Alias"
	roleHeader  = "Security Role"
)

// ReaderOptions locate the data inside the license report export.
// Columns and rows are 1-based.
type ReaderOptions struct {
	DataStartRow int // first sheet row that can hold an Alias header
	AliasColumn  int // column carrying the Alias marker and user identifier
	RoleColumn   int // column carrying the Security Role marker and role cells
}

// Reader loads role-mapping and role-assignment rows from xlsx workbooks.
type Reader struct {
	opts ReaderOptions
}

// NewReader creates a Reader.
func NewReader(opts ReaderOptions) *Reader {
	return &Reader{opts: opts}
}

// ReadRoleRows reads the roles workbook: one header row followed by rows
// of role name + five 0/1 license flag columns. Fully empty rows are
// skipped; everything else is returned unvalidated for the catalog loader.
func (r *Reader) ReadRoleRows(path string) ([]domain.RoleRow, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, domain.ErrInputFile(path, errors.New("no role rows below the header row"))
	}

	var out []domain.RoleRow
	for i, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		flags := make([]string, 0, len(domain.LicenseCategories))
		for col := 2; col <= 1+len(domain.LicenseCategories); col++ {
			flags = append(flags, cellAt(row, col))
		}
		out = append(out, domain.RoleRow{Row: i + 2, Name: cellAt(row, 1), Flags: flags})
	}
	return out, nil
}

// ReadAssignmentRows flattens the block-structured license report into
// (user, role-cell) rows. A block starts at a row whose alias column reads
// "Alias": the next row holds the user identifier, the row after that a
// "Security Role" marker in the role column, and subsequent rows carry
// role cells until the next block or end of sheet. Rows outside any block
// are ignored.
func (r *Reader) ReadAssignmentRows(path string) ([]domain.AssignmentRow, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < r.opts.DataStartRow {
		return nil, domain.ErrInputFile(path,
			fmt.Errorf("no data rows at or below row %d", r.opts.DataStartRow))
	}

	var out []domain.AssignmentRow
	i := r.opts.DataStartRow - 1
	for i < len(rows) {
		if strings.TrimSpace(cellAt(rows[i], r.opts.AliasColumn)) != aliasHeader {
			i++
			continue
		}
		if i+1 >= len(rows) {
			break
		}
		user := cellAt(rows[i+1], r.opts.AliasColumn)

		// Two rows below the Alias header sits the Security Role marker.
		i += 2
		if i >= len(rows) || strings.TrimSpace(cellAt(rows[i], r.opts.RoleColumn)) != roleHeader {
			continue
		}
		i++
		for i < len(rows) {
			if strings.TrimSpace(cellAt(rows[i], r.opts.AliasColumn)) == aliasHeader {
				break // next user block, reprocess in the outer loop
			}
			if cell := cellAt(rows[i], r.opts.RoleColumn); strings.TrimSpace(cell) != "" {
				out = append(out, domain.AssignmentRow{Row: i + 1, User: user, RoleCell: cell})
			}
			i++
		}
	}
	return out, nil
}

// readSheet returns all rows of the workbook's first sheet.
func readSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, domain.ErrInputFile(path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, domain.ErrInputFile(path, err)
	}
	return rows, nil
}

// cellAt returns the 1-based column's cell value, or "" past the row's end.
func cellAt(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return row[col-1]
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
