package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Okuromatsu/Sentinel-Drift/feature/report"

	"github.com/spf13/cobra"
)

var sinceFlag time.Duration

// historyCmd summarizes past runs from the audit history log without
// invoking the engine.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Summarize the audit history log",
	Long: `Reduces the append-only audit history log into a per-host compliance
summary. Useful after interactive runs, where no structured engine output
is available.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := newRunContext()
		if err != nil {
			return err
		}

		path := rc.cfg.Runner.AuditLog
		f, err := os.Open(path)
		if err != nil {
			// Best effort: a missing or unreadable log is not a failure.
			fmt.Println(warnStyle.Render("No report available: cannot read " + path))
			return nil
		}
		defer f.Close()

		var cutoff time.Time
		if sinceFlag > 0 {
			cutoff = time.Now().Add(-sinceFlag)
		}

		statuses := report.ReduceHistory(f, cutoff, rc.rep)
		fmt.Print(report.NewRenderer(rc.theme).Render("Sentinel-Drift Report (Summary)", statuses))
		return nil
	},
}

func init() {
	historyCmd.Flags().DurationVar(&sinceFlag, "since", 24*time.Hour, "only consider records newer than this window (0 for the whole log)")
	RootCmd.AddCommand(historyCmd)
}
