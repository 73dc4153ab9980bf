package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/uhppoted/gsheets-append/sheet"
)

var SheetIDCmd = SheetID{
	command: command{
		credentials: "",
		spreadsheet: "",
		sheet:       "",
		debug:       false,
	},
}

type SheetID struct {
	command
}

func (cmd *SheetID) Name() string {
	return "sheet-id"
}

func (cmd *SheetID) Description() string {
	return "Displays the numeric ID of a Google Sheets worksheet"
}

func (cmd *SheetID) Usage() string {
	return "--credentials <file> --url <url> --sheet <sheet>"
}

func (cmd *SheetID) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] sheet-id [options] --url <URL> --sheet <sheet>\n", APP)
	fmt.Println()
	fmt.Println("  Displays the numeric ID of the worksheet with the (case sensitive) name")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets-append sheet-id --credentials "credentials.json" --url 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --sheet "Log"`)
	fmt.Println()
}

func (cmd *SheetID) FlagSet() *flag.FlagSet {
	return cmd.flagset("sheet-id")
}

func (cmd *SheetID) Execute(args ...any) error {
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

	id, err := sheet.SheetID(ctx, google, spreadsheetID, cmd.sheet)
	if err != nil {
		return err
	}

	fmt.Printf("%v\n", id)

	return nil
}
