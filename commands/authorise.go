package commands

import (
	"context"
	"flag"
	"fmt"
)

var AuthoriseCmd = Authorise{}

type Authorise struct {
	command
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises sheets-bridge to access Google Drive and Google Sheets"
}

func (cmd *Authorise) Usage() string {
	return "[--credentials <file>] [--tokens <file>]"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Runs the Google OAuth2 consent flow in the browser and stores the resulting token")
	fmt.Println("  so that later commands can run without user interaction.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	return cmd.flagset("authorise")
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	if _, err := cmd.configure(options); err != nil {
		return err
	}

	config, err := oauthConfig(cmd.credentials)
	if err != nil {
		return err
	}

	token, err := tokenFromWeb(context.Background(), config)
	if err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	if err := saveToken(cmd.tokens, token); err != nil {
		return err
	}

	infof("saved OAuth2 token to %v", cmd.tokens)

	return nil
}
