package sheetson

import "fmt"

// Frame is a minimal in-memory table: an ordered list of columns and rows of
// values aligned to them. It is the tabular input of CreateRowsFromFrame and
// what the adapters produce when loading external files.
type Frame struct {
	columns []string
	rows    [][]any
}

// NewFrame creates an empty frame with the given column order.
func NewFrame(columns ...string) *Frame {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Frame{columns: cols}
}

// Columns returns a copy of the column names in order.
func (f *Frame) Columns() []string {
	cols := make([]string, len(f.columns))
	copy(cols, f.columns)
	return cols
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Append adds one row. The number of values must match the number of columns;
// use nil for empty cells.
func (f *Frame) Append(values ...any) error {
	if len(values) != len(f.columns) {
		return fmt.Errorf("sheetson: frame has %d columns, got %d values", len(f.columns), len(values))
	}
	row := make([]any, len(values))
	copy(row, values)
	f.rows = append(f.rows, row)
	return nil
}

// Records converts the frame into row mappings, preserving row order. Nil
// cells are omitted from the mapping.
func (f *Frame) Records() []map[string]any {
	records := make([]map[string]any, 0, len(f.rows))
	for _, row := range f.rows {
		record := make(map[string]any, len(f.columns))
		for i, col := range f.columns {
			if row[i] == nil {
				continue
			}
			record[col] = row[i]
		}
		records = append(records, record)
	}
	return records
}
