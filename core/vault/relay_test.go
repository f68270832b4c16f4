package vault_test

import (
	"os"
	"strings"
	"testing"

	"github.com/Okuromatsu/Sentinel-Drift/core/vault"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare_ScriptOnDisk(t *testing.T) {
	relay, err := vault.Prepare("s3cret")
	require.NoError(t, err)
	t.Cleanup(func() { _ = relay.Cleanup() })

	info, err := os.Stat(relay.File())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm(), "relay must be owner-only executable")

	content, err := os.ReadFile(relay.File())
	require.NoError(t, err)

	assert.Contains(t, string(content), "#!/bin/sh")
	assert.Contains(t, string(content), vault.EnvVar)
	assert.NotContains(t, string(content), "s3cret", "the secret must never be written to the script")
}

func TestRelay_Env(t *testing.T) {
	relay, err := vault.Prepare("s3cret")
	require.NoError(t, err)
	t.Cleanup(func() { _ = relay.Cleanup() })

	assert.Equal(t, vault.EnvVar+"=s3cret", relay.Env())
	assert.True(t, strings.HasPrefix(relay.Env(), "SENTINEL_VAULT_PASS="))
}

func TestRelay_CleanupRemovesScript(t *testing.T) {
	relay, err := vault.Prepare("s3cret")
	require.NoError(t, err)

	require.NoError(t, relay.Cleanup())

	_, err = os.Stat(relay.File())
	assert.True(t, os.IsNotExist(err), "relay script must be gone after cleanup")
}

func TestRelay_CleanupIsIdempotent(t *testing.T) {
	relay, err := vault.Prepare("s3cret")
	require.NoError(t, err)

	assert.NoError(t, relay.Cleanup())
	assert.NoError(t, relay.Cleanup(), "second cleanup must not error")
}

func TestRelay_CleanupAfterExternalRemoval(t *testing.T) {
	relay, err := vault.Prepare("s3cret")
	require.NoError(t, err)

	// Simulate abnormal teardown where the file vanished already.
	require.NoError(t, os.Remove(relay.File()))

	assert.NoError(t, relay.Cleanup())
}
