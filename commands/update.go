package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/twystd/sheets-bridge/regions"
)

const (
	HEADER = "A1:M1"
	NAMES  = "A:A"
)

var UpdateCmd = Update{}

type Update struct {
	command
	sheet string
	file  string
}

func (cmd *Update) Name() string {
	return "update"
}

func (cmd *Update) Description() string {
	return "Writes edited regions back to a Google Sheets spreadsheet"
}

func (cmd *Update) Usage() string {
	return "[options] <spreadsheet> <file>"
}

func (cmd *Update) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] update [options] <spreadsheet> <file>\n", APP)
	fmt.Println()
	fmt.Println("  Matches the regions in a JSON file to the spreadsheet rows by name and writes the")
	fmt.Println("  region start and end times to the 'in' and 'out' columns in a single batch update.")
	fmt.Println("  Repeated names are matched to rows in sheet order.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge update 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms edits.json`)
	fmt.Println(`    sheets-bridge --output-file result.json update --sheet "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" --file edits.json`)
	fmt.Println()
}

func (cmd *Update) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("update")

	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Spreadsheet ID or URL (alternative to the first positional argument)")
	flagset.StringVar(&cmd.file, "file", cmd.file, "JSON file with the edited regions (alternative to the second positional argument)")

	return flagset
}

func (cmd *Update) Execute(args ...any) error {
	options := args[0].(*Options)

	if _, err := cmd.configure(options); err != nil {
		return err
	}

	sheet := cmd.sheet
	file := cmd.file
	n := 0

	if sheet == "" {
		sheet = cmd.arg(n)
		n++
	}

	if file == "" {
		file = cmd.arg(n)
	}

	if sheet == "" {
		return fmt.Errorf("missing spreadsheet ID")
	}

	if file == "" {
		return fmt.Errorf("missing edited regions file")
	}

	edits, err := cmd.load(file)
	if err != nil {
		return err
	}

	ctx := context.Background()

	_, gsheets, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	result, err := cmd.update(ctx, gsheets, spreadsheetID(sheet), edits)
	if err != nil {
		return err
	}

	return emit(os.Stdout, cmd.output, result)
}

func (cmd *Update) load(file string) ([]regions.Region, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	edits, err := regions.DecodeEdits(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %v (%w)", file, err)
	}

	return edits, nil
}

func (cmd *Update) update(ctx context.Context, gsheets spreadsheets, spreadsheet string, edits []regions.Region) (regions.Result, error) {
	header, err := gsheets.Read(ctx, spreadsheet, HEADER)
	if err != nil {
		return regions.Result{}, err
	}

	names, err := gsheets.Read(ctx, spreadsheet, NAMES)
	if err != nil {
		return regions.Result{}, err
	}

	var row []any
	if len(header) > 0 {
		row = header[0]
	}

	columns := regions.Resolve(row)
	index := regions.NewIndex(names, columns)
	data, dropped := regions.Reconcile(edits, index, columns)

	if cmd.debug {
		in, out := columns.Letters()
		debugf("spreadsheet:%v  header:%v  in:%v  out:%v  edits:%v  ranges:%v", spreadsheet, columns.Header, in, out, len(edits), len(data))

		for _, r := range dropped {
			debugf("no matching row for region '%v' (%v, %v)", r.Name, r.Start, r.End)
		}
	}

	if len(data) == 0 {
		return regions.NoChanges(), nil
	}

	cells, err := gsheets.BatchWrite(ctx, spreadsheet, data)
	if err != nil {
		return regions.Result{}, err
	}

	return regions.Success(cells), nil
}
