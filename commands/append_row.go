package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/uhppoted/gsheets-append/sheet"
)

var AppendRowCmd = AppendRow{
	command: command{
		credentials: "",
		spreadsheet: "",
		sheet:       "",
		debug:       false,
	},

	file:   "",
	adjust: false,
}

type AppendRow struct {
	command
	file   string
	adjust bool
}

func (cmd *AppendRow) Name() string {
	return "append-row"
}

func (cmd *AppendRow) Description() string {
	return "Appends a row of literal string values to a Google Sheets worksheet"
}

func (cmd *AppendRow) Usage() string {
	return "--credentials <file> --url <url> --sheet <sheet> [--file <file>] [--adjust] <value> ..."
}

func (cmd *AppendRow) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] append-row [options] --url <URL> --sheet <sheet> [--adjust] <value> ...\n", APP)
	fmt.Println()
	fmt.Println("  Appends a row of values to the end of a Google Sheets worksheet. The values are stored as")
	fmt.Println("  strings unless --adjust is set, in which case the appended row is rewritten as if it had")
	fmt.Println("  been typed in (with any leading '=' or '+' escaped so that formulas are not evaluated).")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets-append append-row --credentials "credentials.json" \`)
	fmt.Println(`                              --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                              --sheet "Log" --adjust \`)
	fmt.Println(`                              asd =1+1 2018-04-24`)
	fmt.Println()
}

func (cmd *AppendRow) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("append-row")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file with the rows to append (one row per line)")
	flagset.BoolVar(&cmd.adjust, "adjust", cmd.adjust, "Reformats each appended row as user entered values")

	return flagset
}

func (cmd *AppendRow) Execute(args ...any) error {
	options := args[0].(*Options)
	ctx := context.Background()

	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	rows, err := rowsFrom(cmd.file, cmd.args())
	if err != nil {
		return err
	}

	google, spreadsheetID, err := cmd.connect(ctx, conf, options)
	if err != nil {
		return err
	}

	for _, r := range rows {
		if err := sheet.AppendRow(ctx, google, spreadsheetID, cmd.sheet, r); err != nil {
			return err
		}

		if cmd.adjust {
			if err := sheet.ReformatLastRow(ctx, google, spreadsheetID, cmd.sheet); err != nil {
				return err
			}
		}
	}

	infof("Appended %v rows to worksheet %v", len(rows), cmd.sheet)

	return nil
}
