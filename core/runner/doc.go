// Package runner invokes the external orchestration engine as a subprocess.
//
// The engine is an opaque collaborator: it consumes a fixed playbook path, an
// inventory path, and key=value override variables, and produces either a
// structured JSON payload (quiet runs) or interleaved human text plus appends
// to the audit history log (interactive runs). All drift semantics live in
// the playbook, not here.
//
// A non-zero engine exit is a normal Result, not an error; the caller
// propagates the status verbatim. Context cancellation is translated to
// ErrInterrupted so user interrupts map to the conventional exit code 130.
// There are no retries: a failed invocation is reported once, immediately.
package runner
