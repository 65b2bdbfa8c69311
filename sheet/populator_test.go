package sheet

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/gsheet-tools/drive-sheets/dataset"
	"github.com/gsheet-tools/drive-sheets/store"
)

type write struct {
	area   string
	values [][]any
}

type cell struct {
	sheet string
	row   int
	col   int
	value any
}

type fakeClient struct {
	sheets  map[string]bool
	created []string
	rows    int64
	cols    int64
	writes  []write
	cells   []cell
	getErr  error
	cellErr error

	// writeErr fails every WriteRange after the first writeOK writes
	writeErr error
	writeOK  int
}

func (c *fakeClient) SheetExists(ctx context.Context, spreadsheetID, name string) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}

	return c.sheets[name], nil
}

func (c *fakeClient) GetOrCreateSheet(ctx context.Context, spreadsheetID, name string, minRows, minCols int64) error {
	if c.getErr != nil {
		return c.getErr
	}

	if !c.sheets[name] {
		c.sheets[name] = true
		c.created = append(c.created, name)
		c.rows = minRows
		c.cols = minCols
	}

	return nil
}

func (c *fakeClient) WriteRange(ctx context.Context, spreadsheetID, area string, values [][]any) error {
	if c.writeErr != nil && len(c.writes) >= c.writeOK {
		return c.writeErr
	}

	c.writes = append(c.writes, write{area: area, values: values})

	return nil
}

func (c *fakeClient) WriteCell(ctx context.Context, spreadsheetID, sheetName string, row, col int, value any) error {
	if c.cellErr != nil {
		return c.cellErr
	}

	c.cells = append(c.cells, cell{sheet: sheetName, row: row, col: col, value: value})

	return nil
}

// fakeResolver maps '<folder>/<name>' to a file ID.
type fakeResolver struct {
	files    map[string]string
	resolved []string
}

func (r *fakeResolver) Resolve(ctx context.Context, fileName, folderID string) (string, error) {
	r.resolved = append(r.resolved, fileName)

	if id, ok := r.files[folderID+"/"+fileName]; ok {
		return store.Link(id), nil
	}

	return "", store.ErrNotFound
}

func catalog(t *testing.T) *dataset.Dataset {
	ds, err := dataset.New("name", "other")
	if err != nil {
		t.Fatalf("Unexpected error creating dataset (%v)", err)
	}

	ds.AddRow("a.png", 1)
	ds.AddRow("", 2)
	ds.AddRow("b.png", 3)

	return ds
}

func TestPopulate(t *testing.T) {
	client := fakeClient{sheets: map[string]bool{}}
	resolver := fakeResolver{
		files: map[string]string{
			"F/a.png": "ID_A",
		},
	}

	populator := NewPopulator(&client, &resolver)

	ds := catalog(t)
	if err := populator.Populate(context.Background(), "SPREADSHEET", "Catalog", ds, map[string]string{"name": "F"}); err != nil {
		t.Fatalf("Unexpected error returned from Populate (%v)", err)
	}

	expected := []write{
		{
			area: "'Catalog'!A1",
			values: [][]any{
				{"name", "other"},
				{"a.png", 1},
				{"", 2},
				{"b.png", 3},
			},
		},
		{
			area: "'Catalog'!A2:A4",
			values: [][]any{
				{`=IMAGE("https://drive.google.com/uc?id=ID_A")`},
				{"no image"},
				{"not found in drive"},
			},
		},
	}

	if !reflect.DeepEqual(client.writes, expected) {
		t.Errorf("Incorrect writes\n   expected: %v\n   got:      %v\n", expected, client.writes)
	}
}

func TestPopulateWritesHeaderPlusDataRows(t *testing.T) {
	client := fakeClient{sheets: map[string]bool{}}
	populator := NewPopulator(&client, &fakeResolver{})

	ds := catalog(t)
	if err := populator.Populate(context.Background(), "SPREADSHEET", "Catalog", ds, nil); err != nil {
		t.Fatalf("Unexpected error returned from Populate (%v)", err)
	}

	if len(client.writes) != 1 {
		t.Fatalf("Expected a single bulk write, got %d", len(client.writes))
	}

	if rows := len(client.writes[0].values); rows != ds.NumRows()+1 {
		t.Errorf("Incorrect bulk write row count - expected:%v, got:%v", ds.NumRows()+1, rows)
	}
}

func TestPopulateCreatesMissingWorksheet(t *testing.T) {
	client := fakeClient{sheets: map[string]bool{}}
	populator := NewPopulator(&client, &fakeResolver{})

	ds := catalog(t)
	if err := populator.Populate(context.Background(), "SPREADSHEET", "Catalog", ds, nil); err != nil {
		t.Fatalf("Unexpected error returned from Populate (%v)", err)
	}

	if !reflect.DeepEqual(client.created, []string{"Catalog"}) {
		t.Fatalf("Expected worksheet to be created, got %v", client.created)
	}

	if client.rows != int64(ds.NumRows()+10) || client.cols != int64(len(ds.Columns())+10) {
		t.Errorf("Incorrect worksheet size - expected:%vx%v, got:%vx%v", ds.NumRows()+10, len(ds.Columns())+10, client.rows, client.cols)
	}
}

func TestPopulateReusesExistingWorksheet(t *testing.T) {
	client := fakeClient{sheets: map[string]bool{"Catalog": true}}
	populator := NewPopulator(&client, &fakeResolver{})

	if err := populator.Populate(context.Background(), "SPREADSHEET", "Catalog", catalog(t), nil); err != nil {
		t.Fatalf("Unexpected error returned from Populate (%v)", err)
	}

	if len(client.created) != 0 {
		t.Errorf("Expected existing worksheet to be reused, got created:%v", client.created)
	}
}

func TestPopulateStripsPathPrefix(t *testing.T) {
	client := fakeClient{sheets: map[string]bool{}}
	resolver := fakeResolver{
		files: map[string]string{
			"F/a.png": "ID_A",
		},
	}

	populator := NewPopulator(&client, &resolver)

	ds, _ := dataset.New("photo")
	ds.AddRow("images/products/a.png")

	if err := populator.Populate(context.Background(), "SPREADSHEET", "Catalog", ds, map[string]string{"photo": "F"}); err != nil {
		t.Fatalf("Unexpected error returned from Populate (%v)", err)
	}

	if !reflect.DeepEqual(resolver.resolved, []string{"a.png"}) {
		t.Errorf("Expected path prefix to be stripped before resolution - got:%v", resolver.resolved)
	}
}

func TestPopulateWithUnknownImageColumn(t *testing.T) {
	client := fakeClient{sheets: map[string]bool{}}
	populator := NewPopulator(&client, &fakeResolver{})

	err := populator.Populate(context.Background(), "SPREADSHEET", "Catalog", catalog(t), map[string]string{"qwerty": "F"})
	if err == nil {
		t.Fatalf("Expected error return for unknown image column, got %v", err)
	}

	if len(client.writes) != 0 {
		t.Errorf("Expected no writes after failed validation, got %v", client.writes)
	}
}

func TestPopulateWithInaccessibleSpreadsheet(t *testing.T) {
	client := fakeClient{
		sheets: map[string]bool{},
		getErr: fmt.Errorf("spreadsheet unreachable"),
	}

	populator := NewPopulator(&client, &fakeResolver{})

	if err := populator.Populate(context.Background(), "SPREADSHEET", "Catalog", catalog(t), nil); err == nil {
		t.Fatalf("Expected error return for inaccessible spreadsheet, got %v", err)
	}

	if len(client.writes) != 0 {
		t.Errorf("Expected no writes after fatal setup error, got %v", client.writes)
	}
}

func TestPopulateWithFailedBulkWrite(t *testing.T) {
	broken := fmt.Errorf("transport error")
	client := fakeClient{
		sheets:   map[string]bool{},
		writeErr: broken,
		writeOK:  0,
	}

	populator := NewPopulator(&client, &fakeResolver{})

	err := populator.Populate(context.Background(), "SPREADSHEET", "Catalog", catalog(t), nil)
	if !errors.Is(err, broken) {
		t.Fatalf("Expected bulk write error to propagate, got %v", err)
	}
}

func TestPopulateWithFailedImageColumnWrite(t *testing.T) {
	broken := fmt.Errorf("transport error")
	client := fakeClient{
		sheets:   map[string]bool{},
		writeErr: broken,
		writeOK:  1,
	}

	resolver := fakeResolver{
		files: map[string]string{
			"F/a.png": "ID_A",
		},
	}

	populator := NewPopulator(&client, &resolver)

	err := populator.Populate(context.Background(), "SPREADSHEET", "Catalog", catalog(t), map[string]string{"name": "F"})
	if !errors.Is(err, broken) {
		t.Fatalf("Expected image column write error to propagate, got %v", err)
	}

	if len(client.writes) != 1 {
		t.Errorf("Expected only the bulk write to have completed, got %d writes", len(client.writes))
	}
}

func TestPopulateWithMultipleImageColumns(t *testing.T) {
	client := fakeClient{sheets: map[string]bool{}}
	resolver := fakeResolver{
		files: map[string]string{
			"F/a.png": "ID_A",
			"G/t.png": "ID_T",
		},
	}

	populator := NewPopulator(&client, &resolver)

	ds, _ := dataset.New("photo", "sku", "thumbnail")
	ds.AddRow("a.png", "S-1", "t.png")

	imageColumns := map[string]string{
		"photo":     "F",
		"thumbnail": "G",
	}

	if err := populator.Populate(context.Background(), "SPREADSHEET", "Catalog", ds, imageColumns); err != nil {
		t.Fatalf("Unexpected error returned from Populate (%v)", err)
	}

	expected := []write{
		{
			area:   "'Catalog'!A1",
			values: [][]any{{"photo", "sku", "thumbnail"}, {"a.png", "S-1", "t.png"}},
		},
		{
			area:   "'Catalog'!A2:A2",
			values: [][]any{{`=IMAGE("https://drive.google.com/uc?id=ID_A")`}},
		},
		{
			area:   "'Catalog'!C2:C2",
			values: [][]any{{`=IMAGE("https://drive.google.com/uc?id=ID_T")`}},
		},
	}

	if !reflect.DeepEqual(client.writes, expected) {
		t.Errorf("Incorrect writes\n   expected: %v\n   got:      %v\n", expected, client.writes)
	}
}

func TestAppendLinkColumn(t *testing.T) {
	client := fakeClient{sheets: map[string]bool{"Catalog": true}}
	populator := NewPopulator(&client, &fakeResolver{})

	files := []store.File{
		{ID: "ID_A", Name: "a.png"},
		{ID: "ID_B", Name: "b.png"},
	}

	if err := populator.AppendLinkColumn(context.Background(), "SPREADSHEET", "Catalog", "Drive Link", files, 3); err != nil {
		t.Fatalf("Unexpected error returned from AppendLinkColumn (%v)", err)
	}

	header := []cell{{sheet: "Catalog", row: 1, col: 3, value: "Drive Link"}}
	if !reflect.DeepEqual(client.cells, header) {
		t.Errorf("Incorrect header cell\n   expected: %v\n   got:      %v\n", header, client.cells)
	}

	expected := []write{
		{
			area: "'Catalog'!C2:C3",
			values: [][]any{
				{"https://drive.google.com/uc?id=ID_A"},
				{"https://drive.google.com/uc?id=ID_B"},
			},
		},
	}

	if !reflect.DeepEqual(client.writes, expected) {
		t.Errorf("Incorrect link column\n   expected: %v\n   got:      %v\n", expected, client.writes)
	}
}

func TestAppendLinkColumnWithFailedHeaderWrite(t *testing.T) {
	broken := fmt.Errorf("transport error")
	client := fakeClient{
		sheets:  map[string]bool{"Catalog": true},
		cellErr: broken,
	}

	populator := NewPopulator(&client, &fakeResolver{})

	files := []store.File{{ID: "ID_A", Name: "a.png"}}

	err := populator.AppendLinkColumn(context.Background(), "SPREADSHEET", "Catalog", "Drive Link", files, 1)
	if !errors.Is(err, broken) {
		t.Fatalf("Expected header write error to propagate, got %v", err)
	}

	if len(client.writes) != 0 {
		t.Errorf("Expected no link writes after failed header write, got %v", client.writes)
	}
}

func TestAppendLinkColumnWithFailedWrite(t *testing.T) {
	broken := fmt.Errorf("transport error")
	client := fakeClient{
		sheets:   map[string]bool{"Catalog": true},
		writeErr: broken,
		writeOK:  0,
	}

	populator := NewPopulator(&client, &fakeResolver{})

	files := []store.File{{ID: "ID_A", Name: "a.png"}}

	err := populator.AppendLinkColumn(context.Background(), "SPREADSHEET", "Catalog", "Drive Link", files, 1)
	if !errors.Is(err, broken) {
		t.Fatalf("Expected link column write error to propagate, got %v", err)
	}
}

func TestAppendLinkColumnWithMissingWorksheet(t *testing.T) {
	client := fakeClient{sheets: map[string]bool{}}
	populator := NewPopulator(&client, &fakeResolver{})

	files := []store.File{{ID: "ID_A", Name: "a.png"}}

	if err := populator.AppendLinkColumn(context.Background(), "SPREADSHEET", "Catalog", "Drive Link", files, 1); err == nil {
		t.Fatalf("Expected error return for missing worksheet, got %v", err)
	}

	if len(client.writes) != 0 || len(client.cells) != 0 {
		t.Errorf("Expected no writes for missing worksheet, got writes:%v cells:%v", client.writes, client.cells)
	}
}
