package dataset

import (
	"fmt"
	"strings"
)

// Dataset is an ordered set of named columns with rows aligned by position. Cell
// values are strings or numbers; a nil cell is 'missing' and is distinct from the
// empty string.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]any
}

// New creates an empty dataset with the supplied column names. Column names must
// be unique.
func New(columns ...string) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("missing column names")
	}

	index := map[string]int{}
	for i, column := range columns {
		if strings.TrimSpace(column) == "" {
			return nil, fmt.Errorf("blank column name at index %d", i)
		}

		if _, ok := index[column]; ok {
			return nil, fmt.Errorf("duplicate column name '%s'", column)
		}

		index[column] = i
	}

	d := Dataset{
		columns: append([]string{}, columns...),
		index:   index,
		rows:    [][]any{},
	}

	return &d, nil
}

// AddRow appends a row of values, one per column, in column order.
func (d *Dataset) AddRow(values ...any) error {
	if len(values) != len(d.columns) {
		return fmt.Errorf("expected %d values per row, got %d", len(d.columns), len(values))
	}

	d.rows = append(d.rows, append([]any{}, values...))

	return nil
}

// Columns returns the column names in dataset order.
func (d *Dataset) Columns() []string {
	return append([]string{}, d.columns...)
}

// NumRows returns the number of data rows (excluding the header).
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// ColumnIndex returns the 0-based position of the named column.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	ix, ok := d.index[name]

	return ix, ok
}

// Value returns the cell at (row, column), both 0-based. Missing cells are nil.
func (d *Dataset) Value(row, column int) any {
	return d.rows[row][column]
}

// Table renders the dataset as a header row followed by the data rows, with
// missing values normalised to the empty string.
func (d *Dataset) Table() [][]any {
	table := make([][]any, 0, len(d.rows)+1)

	header := make([]any, len(d.columns))
	for i, column := range d.columns {
		header[i] = column
	}
	table = append(table, header)

	for _, row := range d.rows {
		record := make([]any, len(row))
		for i, v := range row {
			if v == nil {
				record[i] = ""
			} else {
				record[i] = v
			}
		}
		table = append(table, record)
	}

	return table
}
