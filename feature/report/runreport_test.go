package report_test

import (
	"testing"

	"github.com/Okuromatsu/Sentinel-Drift/feature/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// payload builds a minimal engine document with one play.
func payload(stats string, tasks string) []byte {
	return []byte(`{"stats": ` + stats + `, "plays": [{"tasks": [` + tasks + `]}]}`)
}

func findHost(t *testing.T, statuses []report.HostStatus, host string) report.HostStatus {
	t.Helper()
	for _, hs := range statuses {
		if hs.Host == host {
			return hs
		}
	}
	t.Fatalf("host %q not in statuses", host)
	return report.HostStatus{}
}

func TestReduceRun_UnreachableBeatsEverything(t *testing.T) {
	raw := payload(
		`{"web01": {"unreachable": 1, "failures": 3, "changed": 0}}`,
		`{"task": {"name": "Display Diff"}, "hosts": {"web01": {"skipped": false, "msg": "drift on /etc/app.conf"}}},
		 {"task": {"name": "Display Fix Applied"}, "hosts": {"web01": {"skipped": false, "msg": "✅ FIXED: /etc/app.conf"}}}`,
	)

	statuses, err := report.ReduceRun(raw, report.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	assert.Equal(t, report.StateUnreachable, statuses[0].State)
	assert.Empty(t, statuses[0].Details)
}

func TestReduceRun_FailuresBeatDriftAndFix(t *testing.T) {
	raw := payload(
		`{"web01": {"unreachable": 0, "failures": 2}}`,
		`{"task": {"name": "Display Diff"}, "hosts": {"web01": {"skipped": false, "msg": "drift"}}}`,
	)

	statuses, err := report.ReduceRun(raw, report.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	assert.Equal(t, report.StateFailed, statuses[0].State)
	assert.Empty(t, statuses[0].Details)
}

func TestReduceRun_FixSuppressesMatchingDrift(t *testing.T) {
	raw := payload(
		`{"web01": {"unreachable": 0, "failures": 0}}`,
		`{"task": {"name": "Display Diff"}, "hosts": {"web01": {"skipped": false, "msg": "--- /etc/app.conf differs"}}},
		 {"task": {"name": "Display Fix Applied"}, "hosts": {"web01": {"skipped": false, "msg": "✅ FIXED: /etc/app.conf"}}}`,
	)

	statuses, err := report.ReduceRun(raw, report.DefaultConfig())
	require.NoError(t, err)

	hs := findHost(t, statuses, "web01")
	assert.Equal(t, report.StateFixed, hs.State)
	assert.Equal(t, []string{"✅ FIXED: /etc/app.conf"}, hs.Details)
}

func TestReduceRun_UnrelatedDriftSurvivesFix(t *testing.T) {
	raw := payload(
		`{"web01": {"unreachable": 0, "failures": 0}}`,
		`{"task": {"name": "Display Diff"}, "hosts": {"web01": {"skipped": false, "msg": "--- /etc/other.conf differs"}}},
		 {"task": {"name": "Display Fix Applied"}, "hosts": {"web01": {"skipped": false, "msg": "✅ FIXED: /etc/app.conf"}}}`,
	)

	statuses, err := report.ReduceRun(raw, report.DefaultConfig())
	require.NoError(t, err)

	hs := findHost(t, statuses, "web01")
	assert.Equal(t, report.StateFixed, hs.State)
	// Fix messages first, then the unsuppressed drift.
	assert.Equal(t, []string{
		"✅ FIXED: /etc/app.conf",
		"--- /etc/other.conf differs",
	}, hs.Details)
}

func TestReduceRun_DriftWithoutFix(t *testing.T) {
	raw := payload(
		`{"web01": {"unreachable": 0, "failures": 0}}`,
		`{"task": {"name": "Display Metadata Drift"}, "hosts": {"web01": {"skipped": false, "msg": "mode drift on /etc/app.conf"}}}`,
	)

	statuses, err := report.ReduceRun(raw, report.DefaultConfig())
	require.NoError(t, err)

	hs := findHost(t, statuses, "web01")
	assert.Equal(t, report.StateDrifted, hs.State)
	assert.Equal(t, []string{"mode drift on /etc/app.conf"}, hs.Details)
}

func TestReduceRun_SkippedResultsAreIgnored(t *testing.T) {
	raw := payload(
		`{"web01": {"unreachable": 0, "failures": 0}}`,
		`{"task": {"name": "Display Diff"}, "hosts": {"web01": {"skipped": true, "msg": "would drift"}}}`,
	)

	statuses, err := report.ReduceRun(raw, report.DefaultConfig())
	require.NoError(t, err)

	hs := findHost(t, statuses, "web01")
	assert.Equal(t, report.StateCompliant, hs.State)
	assert.Empty(t, hs.Details)
}

func TestReduceRun_UnknownTaskNamesAreIgnored(t *testing.T) {
	raw := payload(
		`{"web01": {"unreachable": 0, "failures": 0}}`,
		`{"task": {"name": "Gather Facts"}, "hosts": {"web01": {"skipped": false, "msg": "not a drift"}}}`,
	)

	statuses, err := report.ReduceRun(raw, report.DefaultConfig())
	require.NoError(t, err)

	hs := findHost(t, statuses, "web01")
	assert.Equal(t, report.StateCompliant, hs.State)
}

func TestReduceRun_HostsSortedForDeterminism(t *testing.T) {
	raw := []byte(`{"stats": {"web02": {}, "web01": {}, "db01": {}}, "plays": []}`)

	statuses, err := report.ReduceRun(raw, report.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	assert.Equal(t, "db01", statuses[0].Host)
	assert.Equal(t, "web01", statuses[1].Host)
	assert.Equal(t, "web02", statuses[2].Host)
}

func TestReduceRun_MalformedPayload(t *testing.T) {
	statuses, err := report.ReduceRun([]byte("PLAY RECAP *****"), report.DefaultConfig())

	require.Error(t, err)
	assert.Nil(t, statuses, "no partial summary on a parse failure")

	var parseErr *report.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestReduceRun_CustomMatcher(t *testing.T) {
	cfg := report.DefaultConfig()
	// Exact-path matcher: only suppress when the drift message is exactly
	// the fixed path. The substring default would suppress both drifts here.
	cfg.Matches = func(driftMsg, fixedPath string) bool {
		return driftMsg == fixedPath
	}

	raw := payload(
		`{"web01": {"unreachable": 0, "failures": 0}}`,
		`{"task": {"name": "Display Diff"}, "hosts": {"web01": {"skipped": false, "msg": "/etc/app.conf"}}},
		 {"task": {"name": "Display Diff"}, "hosts": {"web01": {"skipped": false, "msg": "diff of /etc/app.conf"}}},
		 {"task": {"name": "Display Fix Applied"}, "hosts": {"web01": {"skipped": false, "msg": "✅ FIXED: /etc/app.conf"}}}`,
	)

	statuses, err := report.ReduceRun(raw, cfg)
	require.NoError(t, err)

	hs := findHost(t, statuses, "web01")
	assert.Equal(t, []string{
		"✅ FIXED: /etc/app.conf",
		"diff of /etc/app.conf",
	}, hs.Details)
}
