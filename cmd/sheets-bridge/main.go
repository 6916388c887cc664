package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	lib "github.com/uhppoted/uhppoted-lib/command"

	"github.com/twystd/sheets-bridge/commands"
)

var cli = []lib.Command{
	&commands.VersionCmd,
	&commands.AuthoriseCmd,
	&commands.ListCmd,
	&commands.GetCmd,
	&commands.UpdateCmd,
}

var options = commands.Options{
	Debug:      false,
	OutputFile: "",
}

var help = lib.NewHelp(commands.APP, cli, nil)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.StringVar(&options.OutputFile, "output-file", options.OutputFile, "Writes the JSON result to a file instead of the console")
	flag.Parse()

	cmd, err := lib.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
