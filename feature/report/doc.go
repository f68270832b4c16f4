// Package report reduces raw orchestration-engine output into a per-host
// compliance summary.
//
// Two reducers share one output vocabulary (HostStatus):
//
//  1. ReduceRun consumes the structured JSON payload of a single engine run
//     and decides each host's state by strict precedence:
//     UNREACHABLE > FAILED > FIXED > DRIFTED > COMPLIANT. Drift messages
//     superseded by a fix applied in the same run are suppressed from the
//     details.
//
//  2. ReduceHistory consumes the append-only audit history log (used when
//     structured output is unavailable, e.g. interactive runs) and folds the
//     timestamped records at or after a cutoff into the same vocabulary.
//     Content errors are never fatal; malformed lines are skipped.
//
// # Configuration
//
// The recognized drift/fix task-name sets, the fix marker, and the fix/drift
// correlation strategy are carried by an explicit Config object rather than
// package-level globals. The default correlation is a substring match between
// the fixed file path and the drift message; see SubstringMatcher for its
// accepted imprecision.
//
// # Rendering
//
// Renderer turns either reducer's output into a styled terminal report using
// an injected lipgloss Theme.
package report
