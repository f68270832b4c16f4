package report

import "strings"

// Matcher decides whether a fix for the given file path resolves the given
// drift message. It is injectable so the default substring correlation can be
// replaced with a stricter exact-path match without touching the reducer.
type Matcher func(driftMsg, fixedPath string) bool

// SubstringMatcher is the default correlation: a drift message is considered
// resolved when the fixed file path appears anywhere inside it. This is a
// best-effort approximation, not an exact key join; paths that are prefixes
// of one another may over-suppress.
func SubstringMatcher(driftMsg, fixedPath string) bool {
	return fixedPath != "" && strings.Contains(driftMsg, fixedPath)
}

// Config controls how raw engine output is interpreted. It replaces the
// module-level task-name constants of earlier iterations with an explicit
// object passed to the reducers.
type Config struct {
	// DriftTasks are the playbook task names that report a drift.
	DriftTasks []string

	// FixTasks are the playbook task names that report an applied fix.
	FixTasks []string

	// FixedMarker is the substring preceding the file path in fix messages.
	FixedMarker string

	// VaultErrorType is the drift type reserved for missing-password
	// conditions in the history log.
	VaultErrorType string

	// Matches correlates fix file paths with drift messages.
	// Nil falls back to SubstringMatcher.
	Matches Matcher
}

// DefaultConfig returns the task-name sets and markers of the canonical
// sentinel_drift playbook.
func DefaultConfig() Config {
	return Config{
		DriftTasks: []string{
			"Display Diff",
			"Display Metadata Drift",
			"Display Missing File Warning",
			"Display Vault Error",
		},
		FixTasks: []string{
			"Display Fix Applied",
		},
		FixedMarker:    "FIXED: ",
		VaultErrorType: "vault_error",
	}
}

// isDriftTask reports whether the task name belongs to the drift set.
func (c Config) isDriftTask(name string) bool {
	return containsName(c.DriftTasks, name)
}

// isFixTask reports whether the task name belongs to the fix set.
func (c Config) isFixTask(name string) bool {
	return containsName(c.FixTasks, name)
}

// matches applies the configured matcher, defaulting to SubstringMatcher.
func (c Config) matches(driftMsg, fixedPath string) bool {
	if c.Matches != nil {
		return c.Matches(driftMsg, fixedPath)
	}
	return SubstringMatcher(driftMsg, fixedPath)
}

func containsName(set []string, name string) bool {
	for _, n := range set {
		if n == name {
			return true
		}
	}
	return false
}
