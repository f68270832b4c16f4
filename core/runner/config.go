package runner

// Config holds configuration for the orchestration engine invocation.
type Config struct {
	// Binary is the engine executable to invoke.
	Binary string `mapstructure:"binary" default:"ansible-playbook"`
	// Playbook is the path to the drift playbook.
	Playbook string `mapstructure:"playbook" default:"sentinel_drift.yml"`
	// Inventory is the default inventory file path.
	Inventory string `mapstructure:"inventory" default:"inventory.yml"`
	// AuditLog is the append-only history log the playbook writes to.
	AuditLog string `mapstructure:"audit_log" default:"audit_history.log"`
}
