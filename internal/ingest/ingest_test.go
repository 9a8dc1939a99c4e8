package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

var csvRows = []string{
	"Id,Nombre y apellidos completos,Curso de interés,Hora de inicio,Correo de contacto,Comentarios",
	"1,Ana Pérez,Python,2024-03-01 10:00,ana@x.com,primera",
	"2,Luis Gómez,Go,2024-03-02 11:30,luis@x.com,",
	"3,,Go,2024-03-03 09:00,nadie@x.com,sin nombre",
}

func writeCSV(t *testing.T, name string, rows []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeCSV(t, "inscripciones.csv", csvRows)
	ds, err := ReadFile(path, DefaultColumns(), "")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(ds.Header) != 6 {
		t.Fatalf("header = %v, want 6 columns", ds.Header)
	}
	if len(ds.Records) != 3 {
		t.Fatalf("records = %d, want 3", len(ds.Records))
	}
	r := ds.Records[0]
	if r.FullName != "Ana Pérez" || r.Course != "Python" || r.Timestamp != "2024-03-01 10:00" || r.Email != "ana@x.com" {
		t.Fatalf("record[0] = %+v", r)
	}
	// Incomplete rows pass through; validation is downstream
	if ds.Records[2].FullName != "" {
		t.Fatalf("record[2] = %+v, want empty full name", ds.Records[2])
	}
}

func TestReadCSVColumnMatchingIsLenient(t *testing.T) {
	rows := []string{
		"  nombre y apellidos completos ,CURSO DE INTERÉS,Hora de inicio,Correo de contacto",
		"Eva Díaz,Rust,2024-03-05 08:00,eva@x.com",
	}
	ds, err := ReadFile(writeCSV(t, "weird.csv", rows), DefaultColumns(), "")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if ds.Records[0].FullName != "Eva Díaz" || ds.Records[0].Course != "Rust" {
		t.Fatalf("record = %+v", ds.Records[0])
	}
}

func TestReadCSVMissingColumns(t *testing.T) {
	rows := []string{
		"Nombre y apellidos completos,Hora de inicio",
		"Ana Pérez,2024-03-01 10:00",
	}
	_, err := ReadFile(writeCSV(t, "faltan.csv", rows), DefaultColumns(), "")
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("err = %v, want ErrMissingColumns", err)
	}
	for _, want := range []string{"Curso de interés", "Correo de contacto"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not name missing column %q", err, want)
		}
	}
}

func TestReadTSV(t *testing.T) {
	rows := []string{
		"Nombre y apellidos completos\tCurso de interés\tHora de inicio\tCorreo de contacto",
		"Ana Pérez\tPython\t2024-03-01 10:00\tana@x.com",
	}
	ds, err := ReadFile(writeCSV(t, "datos.tsv", rows), DefaultColumns(), "")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(ds.Records) != 1 || ds.Records[0].Course != "Python" {
		t.Fatalf("records = %+v", ds.Records)
	}
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inscripciones.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Nombre y apellidos completos", "Curso de interés", "Hora de inicio", "Correo de contacto", "Extra"},
		{"Ana Pérez", "Python", "2024-03-01 10:00", "ana@x.com", "x"},
		{"Luis Gómez", "Go", "2024-03-02 11:30", "luis@x.com", "y"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	_ = f.Close()

	ds, err := ReadFile(path, DefaultColumns(), "")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if ds.Sheet != "Sheet1" {
		t.Fatalf("sheet = %q, want Sheet1", ds.Sheet)
	}
	if len(ds.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(ds.Records))
	}
	if ds.Records[1].FullName != "Luis Gómez" || ds.Records[1].Email != "luis@x.com" {
		t.Fatalf("record[1] = %+v", ds.Records[1])
	}
}

func TestReadXLSXMissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacio.xlsx")
	f := excelize.NewFile()
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	_ = f.Close()
	if _, err := ReadFile(path, DefaultColumns(), "NoExiste"); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}

func TestReadFileUnsupportedExtension(t *testing.T) {
	if _, err := ReadFile("datos.docx", DefaultColumns(), ""); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
