package commands

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gsheet-tools/drive-sheets/dataset"
)

// readTSV reads a tab-separated file with a header row into a dataset. Rows must
// all have the header's column count.
func readTSV(f io.Reader) (*dataset.Dataset, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	ds, err := dataset.New(records[0]...)
	if err != nil {
		return nil, err
	}

	for _, record := range records[1:] {
		row := make([]any, len(record))
		for i, v := range record {
			row[i] = v
		}

		if err := ds.AddRow(row...); err != nil {
			return nil, err
		}
	}

	return ds, nil
}
