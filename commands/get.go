package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/uhppoted/gsheets-append/row"
	"github.com/uhppoted/gsheets-append/sheet"
)

var GetCmd = Get{
	command: command{
		credentials: "",
		spreadsheet: "",
		sheet:       "",
		debug:       false,
	},

	area: "",
	file: time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	command
	area string
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the values from a Google Sheets worksheet and stores them to a local TSV file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --sheet <sheet> [--range <range>] --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> [--sheet <sheet> | --range <range>] --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a Google Sheets worksheet to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets-append --debug get --credentials "credentials.json" \`)
	fmt.Println(`                               --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                               --range "Log!A1:E" \`)
	fmt.Println(`                               --file "log.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Log!A1:E'. Defaults to the whole of --sheet")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-dd HHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)
	ctx := context.Background()

	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	area := cmd.area
	if strings.TrimSpace(area) == "" {
		area = row.Range(cmd.sheet, "A1", "ZZ")
	}

	google, spreadsheetID, err := cmd.connect(ctx, conf, options)
	if err != nil {
		return err
	}

	response, err := sheet.GetValues(ctx, google, spreadsheetID, area)
	if err != nil {
		return err
	}

	if len(response.Values) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	tmp, err := os.CreateTemp(os.TempDir(), APP)
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := sheetToTSV(tmp, response); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved %v rows to file %s", len(response.Values), cmd.file)

	return nil
}
