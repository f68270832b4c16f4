package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/Okuromatsu/Sentinel-Drift/core/config"
	"github.com/Okuromatsu/Sentinel-Drift/core/logger"
	"github.com/Okuromatsu/Sentinel-Drift/core/runner"
	"github.com/Okuromatsu/Sentinel-Drift/core/spinner"
	"github.com/Okuromatsu/Sentinel-Drift/core/vault"
	"github.com/Okuromatsu/Sentinel-Drift/feature/report"

	"go.uber.org/zap"
)

// runContext bundles what every engine-invoking command needs.
type runContext struct {
	cfg   *config.Config
	log   *zap.Logger
	rep   report.Config
	theme report.Theme
}

func newRunContext() (*runContext, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &runContext{
		cfg:   cfg,
		log:   logg,
		rep:   report.DefaultConfig(),
		theme: report.DefaultTheme(),
	}, nil
}

// setupRelay prepares the secret relay when a vault password was supplied,
// prompting for it if the flag was given without a value.
func setupRelay() (*vault.Relay, error) {
	if vaultPassFlag == "" {
		return nil, nil
	}

	secret := vaultPassFlag
	if secret == promptSentinel {
		var err error
		secret, err = vault.PromptPassword(os.Stdout)
		if err != nil {
			return nil, err
		}
	}

	return vault.Prepare(secret)
}

// executeRun drives one engine invocation end to end: relay setup, interrupt
// handling, the run itself, and the post-run report.
func executeRun(opts runner.Options) error {
	rc, err := newRunContext()
	if err != nil {
		return err
	}

	relay, err := setupRelay()
	if err != nil {
		return err
	}
	if relay != nil {
		// Unconditional teardown: normal exit, error, or interrupt.
		defer relay.Cleanup()
		opts.Relay = relay
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts.Inventory = inventoryFlag
	opts.Verbose = verboseFlag
	r := runner.New(rc.cfg.Runner, rc.log)

	if opts.Interactive() {
		fmt.Println(infoStyle.Render("🚀 Launching Sentinel-Drift (Interactive Mode)..."))
		return runInteractive(ctx, rc, r, opts)
	}

	fmt.Println(infoStyle.Render("🚀 Launching Sentinel-Drift..."))
	return runQuiet(ctx, rc, r, opts)
}

// runQuiet captures the engine's JSON payload behind a progress indicator
// and reduces it into the compliance report.
func runQuiet(ctx context.Context, rc *runContext, r *runner.Runner, opts runner.Options) error {
	message := "Auditing infrastructure..."
	if opts.AutoFix {
		message = "Auditing and fixing infrastructure..."
	}

	sp := spinner.New(os.Stdout, message)
	sp.Start()
	res, err := r.Run(ctx, opts)
	sp.Stop()

	if err != nil {
		if errors.Is(err, runner.ErrInterrupted) {
			fmt.Println(dangerStyle.Render("🛑 Execution interrupted by user."))
		}
		return err
	}

	// A non-zero exit without a JSON document means the engine died before
	// its callback produced anything reducible. Show the raw output.
	if res.ExitCode != 0 && !strings.HasPrefix(strings.TrimSpace(res.Stdout), "{") {
		fmt.Println(dangerStyle.Render("❌ Engine execution failed:"))
		fmt.Println(res.Stderr)
		fmt.Println(res.Stdout)
		return &runner.ExitError{Code: res.ExitCode}
	}

	statuses, err := report.ReduceRun([]byte(res.Stdout), rc.rep)
	if err != nil {
		// No partial summary on a parse failure; surface the raw output
		// so the operator still sees what the engine said.
		rc.log.Error("Failed to parse engine output", zap.Error(err))
		fmt.Println(dangerStyle.Render("❌ Failed to parse engine output; raw output follows."))
		fmt.Println(res.Stdout)
	} else {
		fmt.Print(report.NewRenderer(rc.theme).Render("Sentinel-Drift Report", statuses))
	}

	// The summary never masks the engine's own status.
	if res.ExitCode != 0 {
		return &runner.ExitError{Code: res.ExitCode}
	}
	return nil
}

// runInteractive hands the terminal to the engine and afterwards summarizes
// the audit history log, using the run start as cutoff so only this run's
// records are considered.
func runInteractive(ctx context.Context, rc *runContext, r *runner.Runner, opts runner.Options) error {
	started := time.Now()
	res, err := r.Run(ctx, opts)
	if err != nil {
		if errors.Is(err, runner.ErrInterrupted) {
			fmt.Println()
			fmt.Println(dangerStyle.Render("🛑 Execution interrupted by user."))
			// Best-effort partial summary from whatever got logged.
			summarizeHistory(rc, r.AuditLog(), started)
		}
		return err
	}

	if res.ExitCode != 0 {
		fmt.Println()
		fmt.Println(dangerStyle.Render(fmt.Sprintf("❌ Engine execution failed with return code %d", res.ExitCode)))
		// Attempt the summary even on failure before carrying the status.
		summarizeHistory(rc, r.AuditLog(), res.Started)
		return &runner.ExitError{Code: res.ExitCode}
	}

	summarizeHistory(rc, r.AuditLog(), res.Started)
	return nil
}

// summarizeHistory renders the post-run summary from the audit history log.
// An unreadable log yields no report rather than a failure.
func summarizeHistory(rc *runContext, path string, cutoff time.Time) {
	f, err := os.Open(path)
	if err != nil {
		rc.log.Info("No history report available", zap.String("audit_log", path))
		return
	}
	defer f.Close()

	statuses := report.ReduceHistory(f, cutoff, rc.rep)
	fmt.Print(report.NewRenderer(rc.theme).Render("Sentinel-Drift Report (Summary)", statuses))
}
