package report

import (
	"testing"
	"time"
)

func TestParseTimestampLayouts(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2024-03-05 14:30:00", true, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)},
		{"2024-03-05 14:30", true, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)},
		{"05/03/2024 14:30", true, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)},
		{"2024-03-05", true, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"  2024-03-05 14:30  ", true, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"not a date", false, time.Time{}},
		{"32/13/2024", false, time.Time{}},
	}
	for _, c := range cases {
		got, ok := ParseTimestamp(c.in)
		if ok != c.ok {
			t.Fatalf("ParseTimestamp(%q): ok=%v, want %v", c.in, ok, c.ok)
		}
		if ok && !got.Equal(c.want) {
			t.Fatalf("ParseTimestamp(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCleanDropsIncompleteRows(t *testing.T) {
	raw := []RawRecord{
		{FullName: "Ana Pérez", Course: "Python", Timestamp: "2024-03-01 10:00", Email: "ana@x.com"},
		{FullName: "", Course: "Python", Timestamp: "2024-03-01 10:05", Email: "b@x.com"},
		{FullName: "Luis Gómez", Course: "", Timestamp: "2024-03-01 10:10", Email: "luis@x.com"},
		{FullName: "Marta Ruiz", Course: "Go", Timestamp: "", Email: "marta@x.com"},
		{FullName: "Marta Ruiz", Course: "Go", Timestamp: "pronto", Email: "marta@x.com"},
		{FullName: "Luis Gómez", Course: "Go", Timestamp: "2024-03-02 09:00", Email: "luis@x.com"},
	}
	clean, dropped := Clean(raw)
	if len(clean) != 2 {
		t.Fatalf("clean count = %d, want 2", len(clean))
	}
	if dropped != 4 {
		t.Fatalf("dropped = %d, want 4", dropped)
	}
	// Source order is preserved and values are untouched
	if clean[0].FullName != "Ana Pérez" || clean[1].Course != "Go" {
		t.Fatalf("unexpected clean records: %+v", clean)
	}
	// A missing email is not a drop condition
	raw = append(raw, RawRecord{FullName: "Eva Díaz", Course: "Rust", Timestamp: "2024-03-03 08:00"})
	clean, _ = Clean(raw)
	if len(clean) != 3 {
		t.Fatalf("clean count with empty email = %d, want 3", len(clean))
	}
}

func TestCleanAllValid(t *testing.T) {
	raw := []RawRecord{
		{FullName: "A", Course: "C1", Timestamp: "2024-01-01", Email: "a@x.com"},
		{FullName: "B", Course: "C2", Timestamp: "2024-01-02", Email: "b@x.com"},
	}
	clean, dropped := Clean(raw)
	if len(clean) != len(raw) || dropped != 0 {
		t.Fatalf("clean=%d dropped=%d, want %d and 0", len(clean), dropped, len(raw))
	}
}
