package service

import (
	"log/slog"
	"time"

	"licsum/internal/domain"
)

// Pipeline wires the stages together over the spreadsheet ports. The run
// is strictly linear: catalog load, extraction, aggregation, resolution,
// report build, write. Any fatal stage error aborts before the output file
// is created.
type Pipeline struct {
	reader    domain.SpreadsheetReader
	writer    domain.ReportWriter
	delimiter string
	logger    *slog.Logger
}

// NewPipeline creates a Pipeline.
func NewPipeline(reader domain.SpreadsheetReader, writer domain.ReportWriter,
	delimiter string, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		reader:    reader,
		writer:    writer,
		delimiter: delimiter,
		logger:    logger,
	}
}

// RunResult carries the outcome of a successful run.
type RunResult struct {
	Report      *domain.SummaryReport
	Diagnostics domain.Diagnostics
	OutputPath  string
	Elapsed     time.Duration
}

// Run executes the whole pipeline and writes the summary workbook to
// outputPath. On error no output file is written.
func (p *Pipeline) Run(reportPath, rolesPath, outputPath string) (*RunResult, error) {
	started := time.Now()

	catalog, err := p.loadCatalog(rolesPath)
	if err != nil {
		return nil, err
	}

	var diag domain.Diagnostics
	users, err := p.extractUsers(reportPath, &diag)
	if err != nil {
		return nil, err
	}

	step := time.Now()
	combos := Aggregate(users)
	p.logger.Debug("aggregated role combinations",
		"combinations", len(combos), "users", len(users), "elapsed", time.Since(step))

	step = time.Now()
	if err := Resolve(combos, catalog); err != nil {
		return nil, err
	}
	p.logger.Debug("resolved license requirements", "elapsed", time.Since(step))

	report, err := BuildSummary(combos, len(users))
	if err != nil {
		return nil, err
	}

	step = time.Now()
	if err := p.writer.WriteSummary(report, outputPath); err != nil {
		return nil, err
	}
	p.logger.Debug("wrote summary workbook", "path", outputPath, "elapsed", time.Since(step))

	p.logger.Info("run complete",
		"combinations", len(report.Combinations),
		"users", report.TotalUsers,
		"skipped_rows", diag.SkippedRows,
		"roleless_users", diag.RolelessUsers,
		"elapsed", time.Since(started))

	return &RunResult{
		Report:      report,
		Diagnostics: diag,
		OutputPath:  outputPath,
		Elapsed:     time.Since(started),
	}, nil
}

// loadCatalog reads and validates the roles workbook.
func (p *Pipeline) loadCatalog(rolesPath string) (*RoleCatalog, error) {
	step := time.Now()
	rows, err := p.reader.ReadRoleRows(rolesPath)
	if err != nil {
		return nil, err
	}
	catalog, err := LoadCatalog(rows)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("loaded role catalog",
		"roles", catalog.Len(), "path", rolesPath, "elapsed", time.Since(step))
	for _, role := range catalog.Roles() {
		p.logger.Debug("catalog role", "role", role.Name, "licenses", role.Licenses.Label())
	}
	return catalog, nil
}

// extractUsers reads the license report and builds per-user role sets.
func (p *Pipeline) extractUsers(reportPath string, diag *domain.Diagnostics) ([]domain.UserRoles, error) {
	step := time.Now()
	rows, err := p.reader.ReadAssignmentRows(reportPath)
	if err != nil {
		return nil, err
	}
	users := NewExtractor(p.delimiter).Extract(rows, diag)
	p.logger.Debug("extracted user role sets",
		"rows", len(rows), "users", len(users),
		"skipped_rows", diag.SkippedRows, "roleless_users", diag.RolelessUsers,
		"elapsed", time.Since(step))
	for _, u := range users {
		p.logger.Debug("user roles", "user", u.User, "role_count", len(u.Roles))
	}
	return users, nil
}
