package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/twystd/sheets-bridge/regions"
)

var ListCmd = List{}

type List struct {
	command
	folder string
}

func (cmd *List) Name() string {
	return "list"
}

func (cmd *List) Description() string {
	return "Lists the sub-folders of a Google Drive folder"
}

func (cmd *List) Usage() string {
	return "[options] <folder>"
}

func (cmd *List) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] list [options] <folder>\n", APP)
	fmt.Println()
	fmt.Println("  Lists the immediate sub-folders of a Google Drive folder as a JSON array of {id, name}")
	fmt.Println("  objects. The folder may be a folder ID or a Google Drive folder URL.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge list "https://drive.google.com/drive/folders/1a2B3c4D5e6F7g8H9i0J"`)
	fmt.Println(`    sheets-bridge list --output-file folders.json 1a2B3c4D5e6F7g8H9i0J`)
	fmt.Println()
}

func (cmd *List) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("list")

	flagset.StringVar(&cmd.folder, "folder", cmd.folder, "Google Drive folder ID or URL (alternative to the positional argument)")

	return flagset
}

func (cmd *List) Execute(args ...any) error {
	options := args[0].(*Options)

	if _, err := cmd.configure(options); err != nil {
		return err
	}

	root := cmd.folder
	if root == "" {
		root = cmd.arg(0)
	}

	if root == "" {
		return fmt.Errorf("missing folder - expected something like 'list https://drive.google.com/drive/folders/<ID>'")
	}

	ctx := context.Background()

	gdrive, _, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	subfolders, err := cmd.list(ctx, gdrive, folderID(root))
	if err != nil {
		return err
	}

	return emit(os.Stdout, cmd.output, subfolders)
}

func (cmd *List) list(ctx context.Context, gdrive folders, root string) ([]regions.Folder, error) {
	if cmd.debug {
		debugf("listing sub-folders of %v", root)
	}

	files, err := gdrive.Folders(ctx, root)
	if err != nil {
		return nil, err
	}

	list := []regions.Folder{}
	for _, f := range files {
		list = append(list, regions.Folder{
			ID:   f.ID,
			Name: f.Name,
		})
	}

	return list, nil
}
