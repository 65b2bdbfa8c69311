package sheet

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/gsheet-tools/drive-sheets/dataset"
	"github.com/gsheet-tools/drive-sheets/store"
)

const (
	noImage      = "no image"
	notInDrive   = "not found in drive"
	imageFormula = `=IMAGE("%s")`

	// extra rows/columns allocated when creating a worksheet
	padding = 10
)

// LinkResolver resolves a file name within a folder scope to a public link,
// returning store.ErrNotFound when the name cannot be resolved.
type LinkResolver interface {
	Resolve(ctx context.Context, fileName, folderID string) (string, error)
}

// Populator writes datasets to Google Sheets worksheets, rendering designated
// 'image' columns as embedded-image formulas backed by public Drive links.
type Populator struct {
	client   Client
	resolver LinkResolver
}

func NewPopulator(client Client, resolver LinkResolver) *Populator {
	return &Populator{
		client:   client,
		resolver: resolver,
	}
}

// Populate writes the dataset to the named worksheet, creating the worksheet if
// necessary, and then rewrites each image column with, per row:
//
//   - 'no image' where the cell is missing or blank
//   - an =IMAGE(...) formula where the file name resolves to a Drive link
//   - 'not found in drive' where it does not
//
// imageColumns maps dataset column names to the Drive folder ID in which the
// column's file names are searched. Cell values may carry a path prefix, which is
// stripped before resolution. Each image column is patched with a single range
// update covering all of its rows.
func (p *Populator) Populate(ctx context.Context, spreadsheetID, sheetName string, ds *dataset.Dataset, imageColumns map[string]string) error {
	for column := range imageColumns {
		if _, ok := ds.ColumnIndex(column); !ok {
			return fmt.Errorf("image column '%s' is not a dataset column", column)
		}
	}

	rows := int64(ds.NumRows() + padding)
	cols := int64(len(ds.Columns()) + padding)

	if err := p.client.GetOrCreateSheet(ctx, spreadsheetID, sheetName, rows, cols); err != nil {
		return err
	}

	// ... bulk write: header and data rows, anchored at A1
	if err := p.client.WriteRange(ctx, spreadsheetID, rangeRef(sheetName, "A1"), ds.Table()); err != nil {
		return fmt.Errorf("unable to upload dataset to worksheet '%s' (%w)", sheetName, err)
	}

	// ... patch pass: one range update per image column, in dataset column order
	for ix, column := range ds.Columns() {
		folderID, ok := imageColumns[column]
		if !ok {
			continue
		}

		values := make([][]any, ds.NumRows())
		for row := 0; row < ds.NumRows(); row++ {
			cell, err := p.imageCell(ctx, ds.Value(row, ix), folderID)
			if err != nil {
				return err
			}

			values[row] = []any{cell}
		}

		if len(values) == 0 {
			continue
		}

		// data rows start below the 1-indexed header row
		area := rangeRef(sheetName, fmt.Sprintf("%s2:%s%d", columnName(ix+1), columnName(ix+1), ds.NumRows()+1))
		if err := p.client.WriteRange(ctx, spreadsheetID, area, values); err != nil {
			return fmt.Errorf("unable to update image column '%s' (%w)", column, err)
		}
	}

	return nil
}

// AppendLinkColumn writes a column of public links for already-resolved files to an
// existing worksheet, headed columnTitle, starting at the 1-indexed column position.
// Unlike Populate, a missing worksheet is an error - nothing is written.
func (p *Populator) AppendLinkColumn(ctx context.Context, spreadsheetID, sheetName, columnTitle string, files []store.File, position int) error {
	if position < 1 {
		return fmt.Errorf("invalid column position %d", position)
	}

	exists, err := p.client.SheetExists(ctx, spreadsheetID, sheetName)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("worksheet '%s' not found in spreadsheet", sheetName)
	}

	if err := p.client.WriteCell(ctx, spreadsheetID, sheetName, 1, position, columnTitle); err != nil {
		return fmt.Errorf("unable to write column header '%s' (%w)", columnTitle, err)
	}

	if len(files) == 0 {
		return nil
	}

	values := make([][]any, len(files))
	for i, f := range files {
		values[i] = []any{store.Link(f.ID)}
	}

	area := rangeRef(sheetName, fmt.Sprintf("%s2:%s%d", columnName(position), columnName(position), len(files)+1))

	return p.client.WriteRange(ctx, spreadsheetID, area, values)
}

func (p *Populator) imageCell(ctx context.Context, v any, folderID string) (any, error) {
	if v == nil || v == "" {
		return noImage, nil
	}

	name := path.Base(fmt.Sprintf("%v", v))

	link, err := p.resolver.Resolve(ctx, name, folderID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return notInDrive, nil

	case err != nil:
		return nil, err
	}

	return fmt.Sprintf(imageFormula, link), nil
}
