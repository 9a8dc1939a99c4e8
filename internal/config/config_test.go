package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ColumnFullName != "Nombre y apellidos completos" {
		t.Fatalf("column_full_name = %q", c.ColumnFullName)
	}
	if c.PageSize != "Letter" {
		t.Fatalf("page_size = %q", c.PageSize)
	}
	if c.DateFormat != "02/01/2006" {
		t.Fatalf("date_format = %q", c.DateFormat)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := &Global{
		ColumnFullName:  "Full name",
		ColumnCourse:    "Course",
		ColumnTimestamp: "Start time",
		ColumnEmail:     "Email",
		ReportTitle:     "COURSE REGISTRATION REPORT",
		Attribution:     "Prepared by: QA",
		PageSize:        "A4",
		DateFormat:      "2006-01-02",
		DateTimeFormat:  "2006-01-02 15:04",
	}
	if err := Save(c, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ReportTitle != c.ReportTitle || got.PageSize != "A4" || got.ColumnCourse != "Course" {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}
