// Package vault handles the vault secret without ever persisting it.
//
// The engine expects a "password file" argument, but writing the password to
// disk would leak it. Prepare therefore creates a transient, owner-only
// executable relay script whose sole behavior is to echo the designated
// environment variable (EnvVar). The secret travels exclusively through the
// environment of the engine invocation; the script contains no secret
// material.
//
// At most one relay exists per invocation. Cleanup must be invoked
// unconditionally on process termination and is safe to call repeatedly or
// after the file is already gone.
package vault
