package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

func readXLSX(path, sheet string, cols Columns) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", path)
		}
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}
	fi, err := resolveColumns(rows[0], cols)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Path: path, Sheet: sheet, Header: rows[0]}
	for _, row := range rows[1:] {
		ds.Records = append(ds.Records, fi.record(row))
	}
	return ds, nil
}
