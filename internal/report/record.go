package report

import (
	"strings"
	"time"
)

// RawRecord is one registration row as handed over by the ingestion layer.
// Only the four columns of interest survive to this point; any extra source
// columns were already discarded. The timestamp is kept as raw text because
// parsing it is this package's job, not the reader's.
type RawRecord struct {
	FullName  string
	Course    string
	Timestamp string
	Email     string
}

// CleanRecord is a RawRecord that passed validation: full name and course are
// present and the timestamp parsed.
type CleanRecord struct {
	FullName     string
	Course       string
	RegisteredAt time.Time
	Email        string
}

// timestampLayouts covers the formats seen in registration exports. Forms
// exports commonly use day-first dates; ISO forms show up when the sheet was
// round-tripped through other tools.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006",
	"1/2/06 15:04:05",
	"1/2/06 15:04",
}

// ParseTimestamp parses a registration timestamp against the accepted layouts.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range timestampLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Clean filters raw rows down to clean records. A row is dropped when its
// full name, course, or timestamp is empty, or when the timestamp does not
// parse. Rows are never repaired, and no deduplication happens here; that is
// the aggregator's job. The second return value is the number of dropped
// rows, reported as a diagnostic only.
func Clean(raw []RawRecord) ([]CleanRecord, int) {
	clean := make([]CleanRecord, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r.FullName) == "" || strings.TrimSpace(r.Course) == "" {
			continue
		}
		t, ok := ParseTimestamp(r.Timestamp)
		if !ok {
			continue
		}
		clean = append(clean, CleanRecord{
			FullName:     r.FullName,
			Course:       r.Course,
			RegisteredAt: t,
			Email:        r.Email,
		})
	}
	return clean, len(raw) - len(clean)
}
