package vault

import (
	"errors"
	"fmt"
	"os"
)

// EnvVar is the environment variable the relay script echoes back to the
// engine. The secret travels only through the engine process environment;
// it is never written to disk.
const EnvVar = "SENTINEL_VAULT_PASS"

// Relay is a transient, owner-only-executable script that forwards the vault
// password from the process environment to the engine. The engine consumes it
// via a "password file" style argument.
type Relay struct {
	secret string
	path   string
}

// Prepare allocates the relay script and returns its handle. Callers must
// arrange for Cleanup to run unconditionally when the process terminates.
func Prepare(secret string) (*Relay, error) {
	f, err := os.CreateTemp("", "sentinel-vault-*.sh")
	if err != nil {
		return nil, fmt.Errorf("create relay script: %w", err)
	}

	// The script's sole behavior is to print the designated environment
	// variable. The secret itself never appears in the file.
	if _, err := f.WriteString("#!/bin/sh\necho \"$" + EnvVar + "\"\n"); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write relay script: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("close relay script: %w", err)
	}
	if err := os.Chmod(f.Name(), 0o700); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("chmod relay script: %w", err)
	}

	return &Relay{secret: secret, path: f.Name()}, nil
}

// File returns the script path handed to the engine as its password file.
func (r *Relay) File() string {
	return r.path
}

// Env returns the environment entry carrying the secret, in "key=value" form
// suitable for exec.Cmd.Env.
func (r *Relay) Env() string {
	return EnvVar + "=" + r.secret
}

// Cleanup removes the relay script. It is idempotent: calling it multiple
// times, or after the file is already gone, is safe and returns no error.
func (r *Relay) Cleanup() error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove relay script: %w", err)
	}
	return nil
}
