package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/context"
	"golang.org/x/oauth2/google"
)

var AuthoriseCmd = Authorise{
	command: command{},
}

// Authorise is the CLI command that obtains OAuth2 tokens for the Drive and
// Sheets scopes and caches them for subsequent commands.
type Authorise struct {
	command
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises " + APP + " to access Google Drive and Google Sheets"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file> --workdir <dir>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Requests OAuth2 tokens for the Google Drive and Google Sheets scopes and caches them in the workdir")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s authorise --credentials "credentials.json"`, APP)
	fmt.Println()
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	return cmd.flagset("authorise")
}

func (cmd *Authorise) Execute(ctx context.Context, args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	b, err := os.ReadFile(cmd.credentials)
	if err != nil {
		return err
	}

	config, err := google.ConfigFromJSON(b, DRIVE, SHEETS)
	if err != nil {
		return err
	}

	token, err := tokenFromWeb(config)
	if err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	tokens := tokenPath(cmd.credentials, filepath.Join(cmd.workdir, ".google"))
	if err := saveToken(tokens, token); err != nil {
		return err
	}

	infof("Stored tokens in %s", tokens)

	return nil
}
