package cmd

import (
	"errors"

	"github.com/Okuromatsu/Sentinel-Drift/core/runner"

	"github.com/spf13/cobra"
)

var (
	autoFixFlag   bool
	askFixFlag    bool
	fixReportFlag bool
)

// fixCmd remediates detected drift, either automatically or per drift.
var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Remediate detected configuration drift",
	Long: `Runs the drift playbook in remediation mode.

With --ask the engine runs interactively and the playbook prompts before
fixing each detected drift. With --auto every drift is fixed without
per-drift confirmation, which overwrites configuration files on the remote
hosts; a safety confirmation is required unless --yes is given.

Examples:
  # Fix drifts one by one, confirming each
  sentinel-drift fix --ask

  # Fix everything without prompts (dangerous)
  sentinel-drift fix --auto --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if autoFixFlag == askFixFlag {
			return errors.New("specify exactly one of --auto or --ask")
		}

		if autoFixFlag {
			if err := confirmAutoFix(); err != nil {
				return err
			}
		}
		if fixReportFlag {
			if err := confirmReportLeak(); err != nil {
				return err
			}
		}

		return executeRun(runner.Options{
			AutoFix: autoFixFlag,
			AskFix:  askFixFlag,
			Report:  fixReportFlag,
		})
	},
}

func init() {
	fixCmd.Flags().BoolVar(&autoFixFlag, "auto", false, "⚠️  automatically fix all detected drifts (DANGEROUS)")
	fixCmd.Flags().BoolVar(&askFixFlag, "ask", false, "interactively ask to fix each detected drift")
	fixCmd.Flags().BoolVar(&fixReportFlag, "report", false, "generate an HTML dashboard report after execution")
	RootCmd.AddCommand(fixCmd)
}
