package report

import (
	"encoding/json"
	"sort"
	"strings"
)

// ParseError indicates the engine's structured output could not be decoded.
// The whole report is unavailable in that case; callers should surface the
// raw engine output instead of a partial summary.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse engine report: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// runPayload mirrors the JSON document produced by the engine's json stdout
// callback. Fields the reducer does not consume are left out.
type runPayload struct {
	Stats map[string]hostStats `json:"stats"`
	Plays []play               `json:"plays"`
}

type hostStats struct {
	Unreachable int `json:"unreachable"`
	Failures    int `json:"failures"`
	Changed     int `json:"changed"`
	OK          int `json:"ok"`
	Skipped     int `json:"skipped"`
}

type play struct {
	Tasks []playTask `json:"tasks"`
}

type playTask struct {
	Task  taskMeta              `json:"task"`
	Hosts map[string]taskResult `json:"hosts"`
}

type taskMeta struct {
	Name string `json:"name"`
}

// taskResult is one host's result for one named task within one run.
type taskResult struct {
	Skipped bool   `json:"skipped"`
	Msg     string `json:"msg"`
}

// ReduceRun folds one run's structured payload into a per-host status.
//
// Every host named in the payload's stats section yields exactly one
// HostStatus. State is decided by precedence: UNREACHABLE beats FAILED beats
// FIXED beats DRIFTED beats COMPLIANT; once a higher-precedence condition is
// observed it cannot be downgraded within the same pass. Drift messages whose
// file was fixed in the same run are suppressed from the details.
//
// Hosts are returned sorted by name for deterministic output.
func ReduceRun(raw []byte, cfg Config) ([]HostStatus, error) {
	var doc runPayload
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	drifts := make(map[string][]string, len(doc.Stats))
	fixes := make(map[string][]string, len(doc.Stats))

	// Scan every task in every play in document order, collecting drift and
	// fix messages for hosts the engine reported stats for.
	for _, p := range doc.Plays {
		for _, t := range p.Tasks {
			name := t.Task.Name
			isDrift := cfg.isDriftTask(name)
			isFix := cfg.isFixTask(name)
			if !isDrift && !isFix {
				continue
			}
			for host, res := range t.Hosts {
				if res.Skipped {
					continue
				}
				if _, known := doc.Stats[host]; !known {
					continue
				}
				if isDrift {
					drifts[host] = append(drifts[host], res.Msg)
				} else {
					fixes[host] = append(fixes[host], res.Msg)
				}
			}
		}
	}

	hosts := make([]string, 0, len(doc.Stats))
	for host := range doc.Stats {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	statuses := make([]HostStatus, 0, len(hosts))
	for _, host := range hosts {
		stat := doc.Stats[host]
		switch {
		case stat.Unreachable > 0:
			statuses = append(statuses, HostStatus{Host: host, State: StateUnreachable})
		case stat.Failures > 0:
			statuses = append(statuses, HostStatus{Host: host, State: StateFailed})
		default:
			statuses = append(statuses, reduceHost(host, drifts[host], fixes[host], cfg))
		}
	}

	return statuses, nil
}

// reduceHost decides the state of a reachable, non-failed host from its
// collected drift and fix messages.
func reduceHost(host string, drifts, fixes []string, cfg Config) HostStatus {
	if len(fixes) > 0 {
		remaining := suppressFixed(drifts, fixes, cfg)
		details := make([]string, 0, len(fixes)+len(remaining))
		details = append(details, fixes...)
		details = append(details, remaining...)
		return HostStatus{Host: host, State: StateFixed, Details: details}
	}
	if len(drifts) > 0 {
		return HostStatus{Host: host, State: StateDrifted, Details: drifts}
	}
	return HostStatus{Host: host, State: StateCompliant}
}

// suppressFixed drops drift messages that the configured matcher correlates
// with a file fixed in the same pass, preserving scan order.
func suppressFixed(drifts, fixes []string, cfg Config) []string {
	paths := fixedPaths(fixes, cfg.FixedMarker)
	if len(paths) == 0 {
		return drifts
	}

	var remaining []string
	for _, msg := range drifts {
		resolved := false
		for _, p := range paths {
			if cfg.matches(msg, p) {
				resolved = true
				break
			}
		}
		if !resolved {
			remaining = append(remaining, msg)
		}
	}
	return remaining
}

// fixedPaths extracts file paths from fix messages following the
// "<marker><path>" convention.
func fixedPaths(fixes []string, marker string) []string {
	var paths []string
	for _, msg := range fixes {
		i := strings.Index(msg, marker)
		if i < 0 {
			continue
		}
		path := strings.TrimSpace(msg[i+len(marker):])
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}
