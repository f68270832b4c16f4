package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// recordTimeLayout is the bracketed timestamp prefix of every history record.
const recordTimeLayout = "2006-01-02 15:04:05"

// unknownField substitutes for detail fields missing from a history record.
const unknownField = "Unknown"

// History record statuses as written by the playbook.
const (
	recordOK    = "OK"
	recordDrift = "DRIFT"
	recordFixed = "FIXED"
)

// HistoryRecord is one parsed line of the append-only audit history log.
type HistoryRecord struct {
	// Timestamp is when the record was appended.
	Timestamp time.Time

	// Status is OK, DRIFT, or FIXED.
	Status string

	// Host is the inventory name of the host, or "Unknown".
	Host string

	// File is the managed file the record refers to, or "Unknown".
	File string

	// Type classifies the drift (e.g. content, metadata, vault_error),
	// or "Unknown".
	Type string
}

// ParseRecord parses one log line of the form
//
//	[YYYY-MM-DD HH:MM:SS] [STATUS] Host: <h> | File: <f> | Type: <t>
//
// The second result is false for lines that do not carry a recognizable
// record: no bracketed prefix, an unparseable timestamp, or no status field.
// Missing detail fields are tolerated and substituted with "Unknown".
func ParseRecord(line string) (HistoryRecord, bool) {
	var rec HistoryRecord

	if !strings.HasPrefix(line, "[") {
		return rec, false
	}

	end := strings.Index(line, "]")
	if end < 0 {
		return rec, false
	}
	ts, err := time.Parse(recordTimeLayout, line[1:end])
	if err != nil {
		return rec, false
	}

	rest := strings.TrimSpace(line[end+1:])
	if !strings.HasPrefix(rest, "[") {
		return rec, false
	}
	statusEnd := strings.Index(rest, "]")
	if statusEnd < 0 {
		return rec, false
	}

	rec = HistoryRecord{
		Timestamp: ts,
		Status:    rest[1:statusEnd],
		Host:      unknownField,
		File:      unknownField,
		Type:      unknownField,
	}

	details := strings.TrimSpace(rest[statusEnd+1:])
	for _, part := range strings.Split(details, " | ") {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, "Host: "):
			rec.Host = strings.TrimPrefix(part, "Host: ")
		case strings.HasPrefix(part, "File: "):
			rec.File = strings.TrimPrefix(part, "File: ")
		case strings.HasPrefix(part, "Type: "):
			rec.Type = strings.TrimPrefix(part, "Type: ")
		}
	}

	return rec, true
}

// ReduceHistory folds the audit history log into a per-host status,
// considering only records at or after the cutoff timestamp.
//
// Records are applied in file order, which a well-formed log keeps
// chronological. DRIFT and FIXED set the host state unconditionally; OK never
// downgrades a host already marked DRIFTED or FIXED. Malformed lines are
// skipped, never fatal, so the summary is always best effort.
//
// Hosts are returned in first-seen order.
func ReduceHistory(r io.Reader, cutoff time.Time, cfg Config) []HostStatus {
	byHost := make(map[string]*HostStatus)
	var order []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rec, ok := ParseRecord(strings.TrimSpace(sc.Text()))
		if !ok {
			continue
		}
		if rec.Timestamp.Before(cutoff) {
			continue
		}

		hs, seen := byHost[rec.Host]
		if !seen {
			hs = &HostStatus{Host: rec.Host, State: StateCompliant}
			byHost[rec.Host] = hs
			order = append(order, rec.Host)
		}

		switch rec.Status {
		case recordDrift:
			hs.State = StateDrifted
			msg := fmt.Sprintf("File: %s (Type: %s)", rec.File, rec.Type)
			if rec.Type == cfg.VaultErrorType {
				msg += "\n⚠️  VAULT ERROR: Source file is encrypted but password was missing."
			}
			hs.Details = append(hs.Details, msg)
		case recordFixed:
			hs.State = StateFixed
			hs.Details = append(hs.Details, fmt.Sprintf("File: %s (FIXED)", rec.File))
		case recordOK:
			// An OK record only confirms compliance; it never downgrades
			// an existing DRIFTED or FIXED state.
		}
	}

	statuses := make([]HostStatus, 0, len(order))
	for _, host := range order {
		statuses = append(statuses, *byHost[host])
	}
	return statuses
}
