package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
)

var VersionCmd = Version{
	out: os.Stdout,
}

type Version struct {
	out io.Writer
}

func (cmd *Version) Name() string {
	return "version"
}

func (cmd *Version) Description() string {
	return fmt.Sprintf("Displays the %v version", APP)
}

func (cmd *Version) Usage() string {
	return ""
}

func (cmd *Version) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s version\n", APP)
	fmt.Println()
	fmt.Println("  Displays the application name, version and platform e.g.")
	fmt.Println()
	fmt.Printf("    %v\n", version())
	fmt.Println()
}

func (cmd *Version) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("version", flag.ExitOnError)
}

func (cmd *Version) Execute(args ...any) error {
	w := cmd.out
	if w == nil {
		w = os.Stdout
	}

	_, err := fmt.Fprintln(w, version())

	return err
}

func version() string {
	return fmt.Sprintf("%v %v %v/%v", APP, VERSION, runtime.GOOS, runtime.GOARCH)
}
