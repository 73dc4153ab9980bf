package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/uhppoted/gsheets-append/row"
	"github.com/uhppoted/gsheets-append/sheet"
)

var AppendCmd = Append{
	command: command{
		credentials: "",
		spreadsheet: "",
		sheet:       "",
		debug:       false,
	},

	file: "",
}

type Append struct {
	command
	file string
}

func (cmd *Append) Name() string {
	return "append"
}

func (cmd *Append) Description() string {
	return "Appends a row of values to a Google Sheets worksheet as if they had been typed in"
}

func (cmd *Append) Usage() string {
	return "--credentials <file> --url <url> --sheet <sheet> [--file <file>] <value> ..."
}

func (cmd *Append) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] append [options] --url <URL> --sheet <sheet> [--file <file>] <value> ...\n", APP)
	fmt.Println()
	fmt.Println("  Appends a row of values to a Google Sheets worksheet using the USER_ENTERED input option and")
	fmt.Println("  prints the number of updated cells. The worksheet heading row must not have any empty cells")
	fmt.Println("  and there must be no empty rows between the existing rows, otherwise the values are shifted")
	fmt.Println("  to the right or written into the gap.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets-append append --credentials "credentials.json" \`)
	fmt.Println(`                          --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                          --sheet "Log" \`)
	fmt.Println(`                          asd xxx 537 TEST 123 2018-04-24`)
	fmt.Println()
	fmt.Println(`    gsheets-append --debug append --credentials "keyring:reports" --url 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --file "rows.tsv"`)
	fmt.Println()
}

func (cmd *Append) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("append")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file with the rows to append (one row per line)")

	return flagset
}

func (cmd *Append) Execute(args ...any) error {
	options := args[0].(*Options)
	ctx := context.Background()

	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	// ... check parameters
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

	updated := int64(0)
	for _, r := range rows {
		if n, err := sheet.AppendValues(ctx, google, spreadsheetID, cmd.sheet, r); err != nil {
			return err
		} else {
			updated += n
		}
	}

	infof("Appended %v rows to worksheet %v", len(rows), cmd.sheet)

	fmt.Printf("%v\n", updated)

	return nil
}

// rowsFrom returns either the rows in the TSV file or the command line values as a single row.
func rowsFrom(file string, values []string) ([]row.Row, error) {
	if strings.TrimSpace(file) != "" {
		if len(values) > 0 {
			return nil, fmt.Errorf("--file and command line values are mutually exclusive")
		}

		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}

		defer f.Close()

		rows, err := tsvToRows(f)
		if err != nil {
			return nil, fmt.Errorf("invalid TSV file %v (%w)", file, err)
		}

		return rows, nil
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no values to append")
	}

	return []row.Row{row.Row(values)}, nil
}
