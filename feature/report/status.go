package report

// State is the reduced compliance state for a single host.
type State string

const (
	// StateCompliant means no drift was observed for the host.
	StateCompliant State = "COMPLIANT"
	// StateDrifted means at least one unresolved drift was observed.
	StateDrifted State = "DRIFTED"
	// StateFixed means a fix was applied during the run.
	StateFixed State = "FIXED"
	// StateFailed means at least one task failed on the host.
	StateFailed State = "FAILED"
	// StateUnreachable means the engine could not contact the host at all.
	StateUnreachable State = "UNREACHABLE"
)

// HostStatus is the reduction output for a single host.
// Both reducers emit this shape so a single renderer can present either.
type HostStatus struct {
	// Host is the inventory name of the host.
	Host string `json:"host"`

	// State is the final per-host state after applying precedence rules.
	State State `json:"state"`

	// Details contains human-readable detail lines in observation order.
	// Empty for COMPLIANT, FAILED, and UNREACHABLE hosts.
	Details []string `json:"details"`
}
