package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gsheet-tools/drive-sheets/commands"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.AuthoriseCmd,
	&commands.ListCmd,
	&commands.UploadCmd,
	&commands.LinkColumnCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	if err := commands.LoadConfig(); err != nil {
		fmt.Printf("\nError loading configuration: %v\n\n", err)
		os.Exit(1)
	}

	args := flag.Args()

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	if args[0] == "help" {
		help(args[1:])
		return
	}

	cmd := parse(args[0])
	if cmd == nil {
		fmt.Printf("\nError parsing command line: unknown command '%s'\n\n", args[0])
		usage()
		os.Exit(1)
	}

	if err := cmd.FlagSet().Parse(args[1:]); err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := cmd.Execute(ctx, &options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func parse(name string) commands.Command {
	for _, c := range cli {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func help(args []string) {
	if len(args) > 0 {
		if cmd := parse(args[0]); cmd != nil {
			cmd.Help()
			return
		}

		fmt.Printf("\nUnknown command '%s'\n", args[0])
	}

	usage()
}

func usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", commands.APP)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	for _, c := range cli {
		fmt.Printf("    %-12s %s\n", c.Name(), c.Description())
	}

	fmt.Println()
	fmt.Printf("  Use '%s help <command>' for command specific options\n", commands.APP)
	fmt.Println()
}
