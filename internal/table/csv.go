package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the table as delimited text: one header row carrying the
// column names, then one row per record, columns in table order.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses delimited text produced by WriteCSV back into a table.
// The first record is the header; every data record must have the same
// field count as the header.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	t := New(records[0]...)
	for i, rec := range records[1:] {
		if err := t.AddRow(rec...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return t, nil
}
