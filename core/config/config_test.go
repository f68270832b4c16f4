package config_test

import (
	"testing"

	"github.com/Okuromatsu/Sentinel-Drift/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "ansible-playbook", cfg.Runner.Binary)
	assert.Equal(t, "sentinel_drift.yml", cfg.Runner.Playbook)
	assert.Equal(t, "inventory.yml", cfg.Runner.Inventory)
	assert.Equal(t, "audit_history.log", cfg.Runner.AuditLog)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("RUNNER_PLAYBOOK", "custom_playbook.yml")
	t.Setenv("RUNNER_AUDIT_LOG", "/var/log/sentinel/audit.log")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "custom_playbook.yml", cfg.Runner.Playbook)
	assert.Equal(t, "/var/log/sentinel/audit.log", cfg.Runner.AuditLog)
	assert.Equal(t, "debug", cfg.Log.Level)
}
