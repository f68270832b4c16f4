package cmd

import (
	"github.com/Okuromatsu/Sentinel-Drift/core/runner"

	"github.com/spf13/cobra"
)

var checkReportFlag bool

// checkCmd audits the inventory without changing anything.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit managed hosts for configuration drift",
	Long: `Runs the drift playbook in audit mode and reduces its structured output
into a per-host compliance report. Nothing is changed on the remote hosts.

With --verbose the engine's full output is streamed instead of the report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkReportFlag {
			if err := confirmReportLeak(); err != nil {
				return err
			}
		}
		return executeRun(runner.Options{Report: checkReportFlag})
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkReportFlag, "report", false, "generate an HTML dashboard report after execution")
	RootCmd.AddCommand(checkCmd)
}
