package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/twystd/sheets-bridge/google"
	"github.com/twystd/sheets-bridge/regions"
)

const AREA = "A:M"

var GetCmd = Get{}

type Get struct {
	command
	folder string
	dir    string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the regions and audio file from a Google Drive folder"
}

func (cmd *Get) Usage() string {
	return "[options] <folder>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] <folder>\n", APP)
	fmt.Println()
	fmt.Println("  Finds the Google Sheets spreadsheet and .wav file in a Google Drive folder, downloads")
	fmt.Println("  the .wav file and writes the regions listed in the spreadsheet as a JSON snapshot.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge get "https://drive.google.com/drive/folders/1a2B3c4D5e6F7g8H9i0J"`)
	fmt.Println(`    sheets-bridge get --dir ./audio --output-file snapshot.json 1a2B3c4D5e6F7g8H9i0J`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.folder, "folder", cmd.folder, "Google Drive folder ID or URL (alternative to the positional argument)")
	flagset.StringVar(&cmd.dir, "dir", cmd.dir, "Directory for the downloaded .wav file. Defaults to the executable directory")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.dir) == "" {
		cmd.dir = conf.dir
	}

	folder := cmd.folder
	if folder == "" {
		folder = cmd.arg(0)
	}

	if folder == "" {
		return fmt.Errorf("missing folder - expected something like 'get https://drive.google.com/drive/folders/<ID>'")
	}

	ctx := context.Background()

	gdrive, gsheets, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	result, err := cmd.get(ctx, gdrive, gsheets, folderID(folder))
	if err != nil {
		return err
	}

	return emit(os.Stdout, cmd.output, result)
}

// get returns either a regions.Snapshot or, for an empty folder or a folder without a
// spreadsheet, a regions.Failure.
func (cmd *Get) get(ctx context.Context, gdrive storage, gsheets spreadsheets, folder string) (any, error) {
	files, err := gdrive.Files(ctx, folder)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return regions.Failure{Error: "Folder is empty or not accessible."}, nil
	}

	var sheet *google.File
	var wav *google.File

	for i := range files {
		f := files[i]

		switch {
		case f.MimeType == google.SPREADSHEET:
			if sheet == nil {
				sheet = &f
			}

		case strings.HasSuffix(strings.ToLower(f.Name), ".wav"):
			if wav == nil {
				wav = &f
			}
		}
	}

	if sheet == nil {
		return regions.Failure{Error: "No Google Sheet found in the folder."}, nil
	}

	if cmd.debug {
		debugf("spreadsheet - ID:%v  name:%v", sheet.ID, sheet.Name)
	}

	snapshot := regions.Snapshot{
		SheetID:   sheet.ID,
		SheetName: sheet.Name,
		Regions:   []regions.Region{},
	}

	if wav != nil && cmd.dir != "" {
		path, err := cmd.download(ctx, gdrive, *wav)
		if err != nil {
			return nil, err
		}

		snapshot.WavPath = &path
	}

	rows, err := gsheets.Read(ctx, sheet.ID, AREA)
	if err != nil {
		return nil, err
	}

	columns, list := regions.Parse(rows)

	if cmd.debug {
		in, out := columns.Letters()
		debugf("header:%v  in:%v  out:%v  rows:%v  regions:%v", columns.Header, in, out, len(rows), len(list))
	}

	snapshot.Regions = list

	return snapshot, nil
}

func (cmd *Get) download(ctx context.Context, gdrive storage, file google.File) (string, error) {
	path, err := stage(cmd.dir, file.Name, time.Now())
	if err != nil {
		return "", err
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return "", err
	}

	defer f.Close()

	N, err := gdrive.Download(ctx, file.ID, f)
	if err != nil {
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", err
	}

	infof("downloaded %v (%v bytes) to %v", file.Name, N, path)

	return path, nil
}
