package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/uhppoted/gsheets-append/sheet"
)

var ReformatCmd = Reformat{
	command: command{
		credentials: "",
		spreadsheet: "",
		sheet:       "",
		debug:       false,
	},
}

type Reformat struct {
	command
}

func (cmd *Reformat) Name() string {
	return "reformat"
}

func (cmd *Reformat) Description() string {
	return "Rewrites the last row of a Google Sheets worksheet as user entered values"
}

func (cmd *Reformat) Usage() string {
	return "--credentials <file> --url <url> --sheet <sheet>"
}

func (cmd *Reformat) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] reformat [options] --url <URL> --sheet <sheet>\n", APP)
	fmt.Println()
	fmt.Println("  Rewrites the last row of a Google Sheets worksheet as if it had been typed in, escaping")
	fmt.Println("  any values starting with '=' or '+' so that they are not evaluated as formulas")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets-append reformat --credentials "credentials.json" --url 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --sheet "Log"`)
	fmt.Println()
}

func (cmd *Reformat) FlagSet() *flag.FlagSet {
	return cmd.flagset("reformat")
}

func (cmd *Reformat) Execute(args ...any) error {
	options := args[0].(*Options)
	ctx := context.Background()

	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	google, spreadsheetID, err := cmd.connect(ctx, conf, options)
	if err != nil {
		return err
	}

	if err := sheet.ReformatLastRow(ctx, google, spreadsheetID, cmd.sheet); err != nil {
		return err
	}

	infof("Reformatted last row of worksheet %v", cmd.sheet)

	return nil
}
