// Package cli implements the licsum command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"licsum/internal/config"
	"licsum/internal/service"
	"licsum/internal/spreadsheet"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		verbose   bool
		delimiter string
		output    string
	)

	rootCmd := &cobra.Command{
		Use:   "licsum <license-report.xlsx> <roles.xlsx>",
		Short: "Summarize license requirements by security-role combination",
		Long: "licsum reads a per-user security-role report and a role-to-license\n" +
			"mapping workbook, groups users by their exact role combination, and\n" +
			"writes a summary workbook with derived license requirements.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()

			// Precedence: flag > env > user config file > default.
			if uc, err := LoadUserConfig(); err == nil {
				uc.applyTo(cfg)
			}
			cfg.ApplyEnv()
			if cmd.Flags().Changed("delimiter") {
				cfg.Delimiter = delimiter
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			})).With("run_id", uuid.New().String())

			reportPath, rolesPath := args[0], args[1]
			outputPath := output
			if outputPath == "" {
				outputPath = spreadsheet.SummaryPath(reportPath)
			}

			reader := spreadsheet.NewReader(spreadsheet.ReaderOptions{
				DataStartRow: cfg.DataStartRow,
				AliasColumn:  cfg.AliasColumn,
				RoleColumn:   cfg.RoleColumn,
			})
			pipeline := service.NewPipeline(reader, spreadsheet.NewWriter(), cfg.Delimiter, logger)

			result, err := pipeline.Run(reportPath, rolesPath, outputPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d users in %d role combinations\n",
				result.Report.TotalUsers, len(result.Report.Combinations))
			if !result.Diagnostics.Empty() {
				fmt.Fprintf(out, "skipped %d rows without a user identifier, %d users without roles\n",
					result.Diagnostics.SkippedRows, result.Diagnostics.RolelessUsers)
			}
			fmt.Fprintf(out, "summary written to %s\n", result.OutputPath)
			return nil
		},
	}

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log catalog, per-user roles, and step timing")
	rootCmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "Separator for multi-role cells (default \",\")")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default <report-stem>_summary.xlsx)")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
