// Package ingest reads a registration export (.xlsx, .csv, .tsv) into the
// raw records the report pipeline consumes. Column presence is enforced here,
// at the boundary; row-level completeness is the validator's job.
package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/enrolldeck-cli/internal/report"
)

// Columns names the source columns that hold each registration field.
type Columns struct {
	FullName  string
	Course    string
	Timestamp string
	Email     string
}

// DefaultColumns matches the headers of the form export the tool was built
// around.
func DefaultColumns() Columns {
	return Columns{
		FullName:  "Nombre y apellidos completos",
		Course:    "Curso de interés",
		Timestamp: "Hora de inicio",
		Email:     "Correo de contacto",
	}
}

// ErrMissingColumns indicates the source table lacks one or more required
// columns. The wrapped message names them.
var ErrMissingColumns = errors.New("missing required columns")

// Dataset is the fully materialized source table. Header keeps every source
// column for display; Records keep only the four fields of interest.
type Dataset struct {
	Path    string
	Sheet   string
	Header  []string
	Records []report.RawRecord
}

// ReadFile dispatches on the file extension. sheet selects an .xlsx worksheet
// and is ignored for CSV; empty means the first sheet.
func ReadFile(path string, cols Columns, sheet string) (*Dataset, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return readXLSX(path, sheet, cols)
	case ".csv", ".tsv":
		return readCSV(path, cols)
	default:
		return nil, fmt.Errorf("unsupported file type %q (use .xlsx, .csv, or .tsv)", ext)
	}
}

// fieldIndexes locates the four required columns within a header row.
type fieldIndexes struct {
	name, course, ts, email int
}

// resolveColumns matches required column names against the header,
// case-insensitively on trimmed text. Extra columns are accepted and ignored.
func resolveColumns(header []string, cols Columns) (fieldIndexes, error) {
	find := func(want string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(want)) {
				return i
			}
		}
		return -1
	}
	fi := fieldIndexes{
		name:   find(cols.FullName),
		course: find(cols.Course),
		ts:     find(cols.Timestamp),
		email:  find(cols.Email),
	}
	var missing []string
	for _, c := range []struct {
		idx  int
		name string
	}{
		{fi.name, cols.FullName},
		{fi.course, cols.Course},
		{fi.ts, cols.Timestamp},
		{fi.email, cols.Email},
	} {
		if c.idx < 0 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return fi, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return fi, nil
}

// record extracts one raw record from a row. Short rows (trailing empty cells
// dropped by the reader) yield empty fields, which the validator filters.
func (fi fieldIndexes) record(row []string) report.RawRecord {
	at := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return report.RawRecord{
		FullName:  at(fi.name),
		Course:    at(fi.course),
		Timestamp: at(fi.ts),
		Email:     at(fi.email),
	}
}
