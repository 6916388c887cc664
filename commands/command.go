package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/twystd/sheets-bridge/google"
)

const APP = "sheets-bridge"
const VERSION = "v0.1.0"

type Options struct {
	Debug      bool
	OutputFile string
}

type folders interface {
	Folders(ctx context.Context, folder string) ([]google.File, error)
}

type storage interface {
	Files(ctx context.Context, folder string) ([]google.File, error)
	Download(ctx context.Context, fileID string, w io.Writer) (int64, error)
}

type spreadsheets interface {
	Read(ctx context.Context, spreadsheet string, area string) ([][]any, error)
	BatchWrite(ctx context.Context, spreadsheet string, data []*sheets.ValueRange) (int64, error)
}

type command struct {
	credentials string
	tokens      string
	output      string
	debug       bool
	flags       *flag.FlagSet
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, fmt.Sprintf("Path for the OAuth2 client credentials file. Defaults to '%v' beside the executable", CREDENTIALS))
	flagset.StringVar(&c.tokens, "tokens", c.tokens, fmt.Sprintf("Path for the OAuth2 token file. Defaults to '%v' beside the executable", TOKENS))
	flagset.StringVar(&c.output, "output-file", c.output, "Writes the JSON result to a file instead of the console")

	c.flags = flagset

	return flagset
}

// configure applies the global options and fills in the defaults for anything not set on
// the command line.
func (c *command) configure(options *Options) (*config, error) {
	c.debug = options.Debug

	if strings.TrimSpace(c.output) == "" {
		c.output = options.OutputFile
	}

	conf, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(c.credentials) == "" {
		c.credentials = conf.credentials
	}

	if strings.TrimSpace(c.tokens) == "" {
		c.tokens = conf.tokens
	}

	if c.debug {
		debugf("credentials:%v  tokens:%v", c.credentials, c.tokens)
	}

	return conf, nil
}

// arg returns the nth positional argument, or "" if there isn't one.
func (c *command) arg(n int) string {
	if c.flags == nil || n >= c.flags.NArg() {
		return ""
	}

	return strings.TrimSpace(c.flags.Arg(n))
}

func (c *command) connect(ctx context.Context) (*google.Drive, *google.Sheets, error) {
	client, err := authorize(ctx, c.credentials, c.tokens)
	if err != nil {
		return nil, nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	gdrive, err := google.NewDrive(ctx, client, c.debug)
	if err != nil {
		return nil, nil, err
	}

	gsheets, err := google.NewSheets(ctx, client)
	if err != nil {
		return nil, nil, err
	}

	return gdrive, gsheets, nil
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flag.VisitAll(func(f *flag.Flag) {
		count++
	})

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	if count > 0 {
		fmt.Println()
		fmt.Println("  Options:")
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
		})
	}
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
