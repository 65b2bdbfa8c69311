package commands

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/net/context"

	"github.com/gsheet-tools/drive-sheets/sheet"
	"github.com/gsheet-tools/drive-sheets/store"
)

var UploadCmd = Upload{
	command: command{},
	sheet:   "",
	file:    "",
	images:  imageColumns{},
}

// Upload is the CLI command that loads a TSV dataset and writes it to a Google
// Sheets worksheet, resolving the designated image columns against Drive folders.
type Upload struct {
	command
	sheet  string
	file   string
	images imageColumns
}

// imageColumns is a repeatable '--image <column>:<folder ID>' flag value.
type imageColumns map[string]string

func (m *imageColumns) String() string {
	pairs := make([]string, 0, len(*m))
	for column, folder := range *m {
		pairs = append(pairs, fmt.Sprintf("%s:%s", column, folder))
	}

	sort.Strings(pairs)

	return strings.Join(pairs, ",")
}

func (m *imageColumns) Set(v string) error {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return fmt.Errorf("expected <column>:<folder ID>, got '%s'", v)
	}

	(*m)[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])

	return nil
}

func (cmd *Upload) Name() string {
	return "upload"
}

func (cmd *Upload) Description() string {
	return "Uploads a TSV dataset to a Google Sheets worksheet, with optional image columns"
}

func (cmd *Upload) Usage() string {
	return "--credentials <file> --url <url> --sheet <name> --file <file>"
}

func (cmd *Upload) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] upload [options] --url <URL> --sheet <name> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Uploads a TSV dataset to a Google Sheets worksheet, creating the worksheet if it does not exist.")
	fmt.Println("  Columns designated with --image are rewritten as embedded-image formulas referencing public Drive")
	fmt.Println("  links, with 'no image' / 'not found in drive' placeholders where a file name cannot be resolved")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s upload --credentials "credentials.json" \`, APP)
	fmt.Println()
	fmt.Println(`                        --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                        --sheet "Catalog" \`)
	fmt.Println(`                        --file "catalog.tsv" \`)
	fmt.Println(`                        --image "photo:1aBcDeFgHiJkLmNoP"`)
	fmt.Println()
}

func (cmd *Upload) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("upload")

	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Worksheet (tab) name")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file with a header row")
	flagset.Var(&cmd.images, "image", "Image column in the form <column>:<folder ID> (repeatable)")

	return flagset
}

func (cmd *Upload) Execute(ctx context.Context, args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	if strings.TrimSpace(cmd.sheet) == "" {
		return fmt.Errorf("--sheet is a required option")
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	spreadsheetId, err := cmd.spreadsheetId()
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  sheet:%s  images:%v", spreadsheetId, cmd.sheet, cmd.images.String())
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	ds, err := readTSV(f)
	if err != nil {
		return fmt.Errorf("invalid TSV file (%v)", err)
	}

	gdrive, gsheets, err := cmd.services(ctx)
	if err != nil {
		return err
	}

	resolver := store.NewResolver(store.NewDriveStore(gdrive))
	populator := sheet.NewPopulator(sheet.NewGoogleSheets(gsheets), resolver)

	if err := populator.Populate(ctx, spreadsheetId, cmd.sheet, ds, cmd.images); err != nil {
		return err
	}

	infof("Uploaded %v rows to worksheet %v", ds.NumRows(), cmd.sheet)

	return nil
}
