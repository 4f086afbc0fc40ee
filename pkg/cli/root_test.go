package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, cells map[string]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for cell, value := range cells {
		require.NoError(t, f.SetCellValue(sheet, cell, value))
	}
	require.NoError(t, f.SaveAs(path))
}

func writeInputs(t *testing.T, dir string) (reportPath, rolesPath string) {
	t.Helper()
	reportPath = filepath.Join(dir, "report.xlsx")
	writeWorkbook(t, reportPath, map[string]interface{}{
		"D20": "Alias",
		"D21": "alice@contoso.com",
		"F22": "Security Role",
		"F23": "Sales, Support",
		"D24": "Alias",
		"D25": "bob@contoso.com",
		"F26": "Security Role",
		"F27": "Sales",
	})
	rolesPath = filepath.Join(dir, "roles.xlsx")
	writeWorkbook(t, rolesPath, map[string]interface{}{
		"A1": "Role", "B1": "Finance", "C1": "SCM", "D1": "Commerce", "E1": "Project", "F1": "HR",
		"A2": "Sales", "B2": 1,
		"A3": "Support", "D3": 1,
	})
	return reportPath, rolesPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep ~/.licsum out of the tests

	t.Run("writes_summary_next_to_report", func(t *testing.T) {
		dir := t.TempDir()
		reportPath, rolesPath := writeInputs(t, dir)

		out, err := execute(t, reportPath, rolesPath)

		require.NoError(t, err)
		assert.Contains(t, out, "2 users in 2 role combinations")
		summaryPath := filepath.Join(dir, "report_summary.xlsx")
		assert.Contains(t, out, summaryPath)
		_, statErr := os.Stat(summaryPath)
		assert.NoError(t, statErr)
	})

	t.Run("output_flag_overrides_path", func(t *testing.T) {
		dir := t.TempDir()
		reportPath, rolesPath := writeInputs(t, dir)
		custom := filepath.Join(dir, "custom.xlsx")

		_, err := execute(t, "--output", custom, reportPath, rolesPath)

		require.NoError(t, err)
		_, statErr := os.Stat(custom)
		assert.NoError(t, statErr)
	})

	t.Run("unknown_role_fails_without_output", func(t *testing.T) {
		dir := t.TempDir()
		reportPath, _ := writeInputs(t, dir)
		rolesPath := filepath.Join(dir, "partial_roles.xlsx")
		writeWorkbook(t, rolesPath, map[string]interface{}{
			"A1": "Role",
			"A2": "Sales", "B2": 1, // Support is missing
		})

		_, err := execute(t, reportPath, rolesPath)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Support")
		_, statErr := os.Stat(filepath.Join(dir, "report_summary.xlsx"))
		assert.True(t, os.IsNotExist(statErr), "no output file on fatal error")
	})

	t.Run("missing_input_file", func(t *testing.T) {
		dir := t.TempDir()
		_, rolesPath := writeInputs(t, dir)

		_, err := execute(t, filepath.Join(dir, "nope.xlsx"), rolesPath)

		require.Error(t, err)
	})

	t.Run("requires_two_arguments", func(t *testing.T) {
		_, err := execute(t, "only-one.xlsx")
		require.Error(t, err)
	})

	t.Run("version_subcommand", func(t *testing.T) {
		out, err := execute(t, "version")

		require.NoError(t, err)
		assert.Contains(t, out, "licsum version")
	})
}
