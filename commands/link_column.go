package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/net/context"

	"github.com/gsheet-tools/drive-sheets/sheet"
	"github.com/gsheet-tools/drive-sheets/store"
)

var LinkColumnCmd = LinkColumn{
	command:  command{},
	sheet:    "",
	folder:   "",
	column:   "Drive Link",
	position: 0,
}

// LinkColumn is the CLI command that appends a column of public Drive links for
// a folder's files to an existing worksheet.
type LinkColumn struct {
	command
	sheet    string
	folder   string
	column   string
	position int
}

func (cmd *LinkColumn) Name() string {
	return "link-column"
}

func (cmd *LinkColumn) Description() string {
	return "Appends a column of public Drive links to an existing Google Sheets worksheet"
}

func (cmd *LinkColumn) Usage() string {
	return "--credentials <file> --url <url> --sheet <name> --folder <folder ID> --position <column>"
}

func (cmd *LinkColumn) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] link-column [options] --url <URL> --sheet <name> --folder <folder ID> --position <column>\n", APP)
	fmt.Println()
	fmt.Println("  Lists the files of a Drive folder and writes their public links as a column of an existing")
	fmt.Println("  worksheet, starting at the 1-indexed column position. Fails if the worksheet does not exist")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s link-column --credentials "credentials.json" \`, APP)
	fmt.Println()
	fmt.Println(`                             --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                             --sheet "Catalog" \`)
	fmt.Println(`                             --folder "1aBcDeFgHiJkLmNoP" \`)
	fmt.Println(`                             --position 5`)
	fmt.Println()
}

func (cmd *LinkColumn) FlagSet() *flag.FlagSet {
	if cmd.folder == "" {
		cmd.folder = viper.GetString("google.folder")
	}

	flagset := cmd.flagset("link-column")

	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Worksheet (tab) name")
	flagset.StringVar(&cmd.folder, "folder", cmd.folder, "Drive folder ID")
	flagset.StringVar(&cmd.column, "column", cmd.column, "Header for the new column")
	flagset.IntVar(&cmd.position, "position", cmd.position, "1-indexed column position for the new column")

	return flagset
}

func (cmd *LinkColumn) Execute(ctx context.Context, args ...any) error {
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

	if strings.TrimSpace(cmd.folder) == "" {
		return fmt.Errorf("--folder is a required option")
	}

	if cmd.position < 1 {
		return fmt.Errorf("--position is a required option and must be 1 or greater")
	}

	spreadsheetId, err := cmd.spreadsheetId()
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  sheet:%s  folder:%s  position:%v", spreadsheetId, cmd.sheet, cmd.folder, cmd.position)
	}

	gdrive, gsheets, err := cmd.services(ctx)
	if err != nil {
		return err
	}

	files := store.NewDriveStore(gdrive)

	list, err := files.ListFiles(ctx, cmd.folder)
	if err != nil {
		return fmt.Errorf("unable to list files in '%s' (%v)", cmd.folder, err)
	}

	if len(list) == 0 {
		warnf("Folder '%s' is empty - writing header only", cmd.folder)
	}

	populator := sheet.NewPopulator(sheet.NewGoogleSheets(gsheets), nil)

	if err := populator.AppendLinkColumn(ctx, spreadsheetId, cmd.sheet, cmd.column, list, cmd.position); err != nil {
		return err
	}

	infof("Wrote %v links to column %v of worksheet %v", len(list), cmd.position, cmd.sheet)

	return nil
}
