package commands

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/net/context"

	"github.com/gsheet-tools/drive-sheets/store"
)

var ListCmd = List{
	command: command{},
	folder:  "",
	folders: false,
}

// List is the CLI command that lists the contents of a Google Drive folder as a
// TSV table of names and Drive IDs on stdout.
type List struct {
	command
	folder  string
	folders bool
}

func (cmd *List) Name() string {
	return "list"
}

func (cmd *List) Description() string {
	return "Lists the files (or subfolders) of a Google Drive folder"
}

func (cmd *List) Usage() string {
	return "--credentials <file> --folder <folder ID>"
}

func (cmd *List) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] list [options] --folder <folder ID>\n", APP)
	fmt.Println()
	fmt.Println("  Lists the files in a Google Drive folder as TSV. With --folders, lists the child folders instead")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s list --credentials "credentials.json" --folder "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`, APP)
	fmt.Println()
	fmt.Println()
}

func (cmd *List) FlagSet() *flag.FlagSet {
	if cmd.folder == "" {
		cmd.folder = viper.GetString("google.folder")
	}

	flagset := cmd.flagset("list")

	flagset.StringVar(&cmd.folder, "folder", cmd.folder, "Drive folder ID")
	flagset.BoolVar(&cmd.folders, "folders", cmd.folders, "Lists the child folders instead of the files")

	return flagset
}

func (cmd *List) Execute(ctx context.Context, args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.folder) == "" {
		return fmt.Errorf("--folder is a required option")
	}

	if cmd.debug {
		debugf("Drive - folder:%s", cmd.folder)
	}

	gdrive, _, err := cmd.services(ctx)
	if err != nil {
		return err
	}

	files := store.NewDriveStore(gdrive)

	records := [][]string{}

	if cmd.folders {
		folders, err := files.ListSubfolders(ctx, cmd.folder)
		if err != nil {
			return fmt.Errorf("unable to list subfolders of '%s' (%v)", cmd.folder, err)
		}

		names := make([]string, 0, len(folders))
		for name := range folders {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			records = append(records, []string{name, folders[name]})
		}
	} else {
		list, err := files.ListFiles(ctx, cmd.folder)
		if err != nil {
			return fmt.Errorf("unable to list files in '%s' (%v)", cmd.folder, err)
		}

		for _, f := range list {
			records = append(records, []string{f.Name, f.ID})
		}
	}

	return writeListing(os.Stdout, records)
}

// writeListing renders a folder listing as TSV with a 'Name'/'Drive ID' header row.
func writeListing(f io.Writer, records [][]string) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write([]string{"Name", "Drive ID"})
	for _, record := range records {
		w.Write(record)
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("unable to write listing (%v)", err)
	}

	return nil
}
