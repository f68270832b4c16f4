package runner

import (
	"errors"
	"fmt"
)

// InterruptExitCode is the conventional exit status for user interruption.
const InterruptExitCode = 130

// ErrInterrupted reports that the engine run was cancelled by the user.
var ErrInterrupted = errors.New("execution interrupted by user")

// ExitError carries a non-zero engine exit status up to the process exit,
// so the engine's own status is propagated verbatim and never masked by
// report generation failures.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("engine exited with status %d", e.Code)
}
