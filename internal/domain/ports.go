package domain

// SpreadsheetReader loads the two tabular inputs.
// Implemented by spreadsheet.Reader.
type SpreadsheetReader interface {
	// ReadRoleRows returns the role-mapping rows of the roles workbook.
	ReadRoleRows(path string) ([]RoleRow, error)
	// ReadAssignmentRows returns the flattened per-(user, role-cell) rows
	// of the license report.
	ReadAssignmentRows(path string) ([]AssignmentRow, error)
}

// ReportWriter renders a finished summary report to a new workbook.
// Implemented by spreadsheet.Writer.
type ReportWriter interface {
	WriteSummary(report *SummaryReport, path string) error
}
