package sheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"
)

// Client is the spreadsheet capability consumed by the populator. All writes use
// USER_ENTERED semantics so that =IMAGE(...) formulas are parsed by the sheet.
type Client interface {
	SheetExists(ctx context.Context, spreadsheetID, name string) (bool, error)
	GetOrCreateSheet(ctx context.Context, spreadsheetID, name string, minRows, minCols int64) error
	WriteRange(ctx context.Context, spreadsheetID, area string, values [][]any) error
	WriteCell(ctx context.Context, spreadsheetID, sheetName string, row, col int, value any) error
}

// GoogleSheets implements Client on the Google Sheets v4 API.
type GoogleSheets struct {
	service *sheets.Service
}

func NewGoogleSheets(service *sheets.Service) *GoogleSheets {
	return &GoogleSheets{
		service: service,
	}
}

// SheetExists reports whether the spreadsheet has a worksheet with the given name.
// A failure to fetch the spreadsheet itself is an error.
func (g *GoogleSheets) SheetExists(ctx context.Context, spreadsheetID, name string) (bool, error) {
	sheet, err := g.getSheet(ctx, spreadsheetID, name)
	if err != nil {
		return false, err
	}

	return sheet != nil, nil
}

// GetOrCreateSheet creates the named worksheet sized minRows x minCols if it does
// not exist. A pre-existing worksheet is left untouched, whatever its dimensions.
func (g *GoogleSheets) GetOrCreateSheet(ctx context.Context, spreadsheetID, name string, minRows, minCols int64) error {
	sheet, err := g.getSheet(ctx, spreadsheetID, name)
	if err != nil {
		return err
	}

	if sheet != nil {
		return nil
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			&sheets.Request{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: name,
						GridProperties: &sheets.GridProperties{
							RowCount:    minRows,
							ColumnCount: minCols,
						},
					},
				},
			},
		},
	}

	if _, err := g.service.Spreadsheets.BatchUpdate(spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to create worksheet '%s' (%w)", name, err)
	}

	return nil
}

// WriteRange overwrites the cells of an A1 range with the supplied values. Cells
// beyond the extent of the values are left as-is.
func (g *GoogleSheets) WriteRange(ctx context.Context, spreadsheetID, area string, values [][]any) error {
	rq := sheets.ValueRange{
		Range:  area,
		Values: values,
	}

	if _, err := g.service.Spreadsheets.Values.Update(spreadsheetID, area, &rq).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do(); err != nil {
		return err
	}

	return nil
}

// WriteCell overwrites a single cell, addressed by 1-indexed row and column.
func (g *GoogleSheets) WriteCell(ctx context.Context, spreadsheetID, sheetName string, row, col int, value any) error {
	area := rangeRef(sheetName, cellRef(col, row))

	return g.WriteRange(ctx, spreadsheetID, area, [][]any{{value}})
}

func (g *GoogleSheets) getSheet(ctx context.Context, spreadsheetID, name string) (*sheets.Sheet, error) {
	spreadsheet, err := g.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
			return nil, fmt.Errorf("no spreadsheet with ID '%s' (%w)", spreadsheetID, err)
		}

		return nil, fmt.Errorf("unable to fetch spreadsheet (%w)", err)
	}

	return findSheet(spreadsheet.Sheets, name), nil
}

// findSheet returns the worksheet whose title matches name exactly, or nil.
// Worksheet titles are case sensitive - 'Catalog' and 'catalog' are distinct tabs.
func findSheet(list []*sheets.Sheet, name string) *sheets.Sheet {
	for _, sheet := range list {
		if sheet.Properties.Title == name {
			return sheet
		}
	}

	return nil
}
