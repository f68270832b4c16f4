package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Okuromatsu/Sentinel-Drift/core/logger"
	"github.com/Okuromatsu/Sentinel-Drift/core/vault"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options selects the behavior of a single engine run.
type Options struct {
	// Inventory overrides the configured inventory path when non-empty.
	Inventory string

	// AutoFix injects auto_fix=true: the playbook remediates every drift
	// without asking.
	AutoFix bool

	// AskFix injects ask_fix=true and runs the engine interactively so the
	// playbook can prompt per drift.
	AskFix bool

	// Report injects generate_report=true.
	Report bool

	// Verbose streams the engine's full output instead of suppressing it.
	Verbose bool

	// Relay carries the vault secret, if one was supplied.
	Relay *vault.Relay
}

// Interactive reports whether the run attaches the engine to the caller's
// terminal instead of capturing structured output.
func (o Options) Interactive() bool {
	return o.AskFix || o.Verbose
}

// Result is the outcome of one engine run.
type Result struct {
	// RunID correlates this run across log entries.
	RunID string

	// Stdout and Stderr hold captured output. Empty for interactive runs,
	// where the engine owns the terminal.
	Stdout string
	Stderr string

	// ExitCode is the engine's exit status.
	ExitCode int

	// Started is when the engine process was launched; it serves as the
	// cutoff for the post-run history summary.
	Started time.Time
}

// Runner invokes the external orchestration engine. It treats the engine as
// a black box: one playbook, one inventory, a set of key=value overrides.
type Runner struct {
	cfg Config
	log *zap.Logger
}

// New creates a runner.
func New(cfg Config, log *zap.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// AuditLog returns the path of the history log the playbook appends to.
func (r *Runner) AuditLog() string {
	return r.cfg.AuditLog
}

// Run executes the engine once and waits for it to finish. A non-zero engine
// exit is not an error here; it is reported through Result.ExitCode so the
// caller can decide how to surface it. An error is returned only when the
// process could not be started or the context was cancelled.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	runID := uuid.NewString()
	log := logger.WithRunID(r.log, runID)

	args := r.buildArgs(opts)
	log.Debug("Invoking engine",
		zap.String("binary", r.cfg.Binary),
		zap.Strings("args", args),
		zap.Bool("interactive", opts.Interactive()),
	)

	cmd := exec.CommandContext(ctx, r.cfg.Binary, args...)
	cmd.Env = r.buildEnv(opts)

	var stdout, stderr bytes.Buffer
	if opts.Interactive() {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	started := time.Now()
	err := cmd.Run()

	if ctx.Err() != nil {
		log.Warn("Engine run cancelled")
		return nil, ErrInterrupted
	}

	res := &Result{
		RunID:   runID,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Started: started,
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			log.Debug("Engine finished", zap.Int("exit_code", res.ExitCode))
			return res, nil
		}
		return nil, fmt.Errorf("start engine %q: %w", r.cfg.Binary, err)
	}

	log.Debug("Engine finished", zap.Int("exit_code", 0))
	return res, nil
}

// buildArgs assembles the engine command line from config and options.
func (r *Runner) buildArgs(opts Options) []string {
	inventory := r.cfg.Inventory
	if opts.Inventory != "" {
		inventory = opts.Inventory
	}

	args := []string{r.cfg.Playbook, "-i", inventory}

	var extra []string
	if opts.AutoFix {
		extra = append(extra, "auto_fix=true")
	} else if opts.AskFix {
		extra = append(extra, "ask_fix=true")
	}
	if opts.Report {
		extra = append(extra, "generate_report=true")
	}
	if len(extra) > 0 {
		args = append(args, "-e", strings.Join(extra, " "))
	}

	if opts.Relay != nil {
		args = append(args, "--vault-password-file", opts.Relay.File())
	}

	return args
}

// buildEnv assembles the engine process environment. Quiet runs force the
// JSON stdout callback so the output can be reduced; non-verbose interactive
// runs suppress noise so the playbook's prompts stand out.
func (r *Runner) buildEnv(opts Options) []string {
	env := os.Environ()

	if opts.Relay != nil {
		env = append(env, opts.Relay.Env())
	}

	if opts.Interactive() {
		if !opts.Verbose {
			env = append(env,
				"ANSIBLE_DISPLAY_SKIPPED_HOSTS=no",
				"ANSIBLE_DISPLAY_OK_HOSTS=no",
				"ANSIBLE_STDOUT_CALLBACK=yaml",
				"ANSIBLE_RETRY_FILES_ENABLED=0",
			)
		}
	} else {
		env = append(env,
			"ANSIBLE_STDOUT_CALLBACK=json",
			"ANSIBLE_LOAD_CALLBACK_PLUGINS=1",
		)
	}

	return env
}
