package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/Okuromatsu/Sentinel-Drift/core/logger"
	"github.com/Okuromatsu/Sentinel-Drift/core/runner"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// promptSentinel marks a --vault-pass flag given without a value: the
// password is read interactively instead.
const promptSentinel = "__PROMPT__"

var (
	inventoryFlag string
	vaultPassFlag string
	verboseFlag   bool
	yesFlag       bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sentinel-drift",
	Short: "Configuration drift detection & remediation front end",
	Long: `Sentinel-Drift 🛡️ wraps the drift playbook of an external orchestration
engine, providing a friendly CLI, secure vault password injection, and a
per-host compliance report reduced from the engine's output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status. The engine's own
// exit status and the conventional interrupt code pass through verbatim;
// everything else is logged and becomes a plain failure.
func exitCode(err error) int {
	var exitErr *runner.ExitError
	switch {
	case errors.Is(err, runner.ErrInterrupted):
		return runner.InterruptExitCode
	case errors.As(err, &exitErr):
		// Raw engine output was already surfaced; just carry the status.
		return exitErr.Code
	}

	// Use the application's standard logger for error reporting
	// Console format matches user expectations for a CLI tool
	cfg := &logger.Config{
		Level:  "debug",
		Format: "console",
	}

	l, logErr := logger.New(cfg)
	if logErr == nil {
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
	} else {
		// Absolute fallback if logger creation fails (rare)
		fmt.Println(err)
	}
	return 1
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&inventoryFlag, "inventory", "i", "", "path to the inventory file (defaults to the configured one)")
	RootCmd.PersistentFlags().StringVar(&vaultPassFlag, "vault-pass", "", "vault password (pass the flag without a value to be prompted)")
	RootCmd.PersistentFlags().Lookup("vault-pass").NoOptDefVal = promptSentinel
	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "show full engine output (useful for debugging)")
	RootCmd.PersistentFlags().BoolVar(&yesFlag, "yes", false, "assume yes for safety confirmations (non-interactive)")
}
