package commands

import (
	"reflect"
	"strings"
	"testing"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/gsheets-append/row"
)

func TestSheetToTSV(t *testing.T) {
	expected := `Name	Phone	Date
asd	=1+1	2018-04-24
qwerty	537	2018-04-25
`

	var f strings.Builder
	var data = sheets.ValueRange{
		Values: [][]interface{}{
			[]interface{}{"Name", "Phone", "Date"},
			[]interface{}{"asd", "=1+1", "2018-04-24"},
			[]interface{}{"qwerty", 537, "2018-04-25"},
		},
	}

	err := sheetToTSV(&f, &data)
	if err != nil {
		t.Fatalf("Unexpected error returned from sheetToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestSheetToTSVWithEmptySheet(t *testing.T) {
	var f strings.Builder
	var data = sheets.ValueRange{}

	err := sheetToTSV(&f, &data)
	if err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}

func TestTSVToRows(t *testing.T) {
	expected := []row.Row{
		{"asd", "xxx", "537", "TEST", "123", "2018-04-24"},
		{"=SUM(A1:A2)", "+1"},
	}

	tsv := "asd\txxx\t537\tTEST\t123\t2018-04-24\n\n=SUM(A1:A2)\t+1\n"

	rows, err := tsvToRows(strings.NewReader(tsv))
	if err != nil {
		t.Fatalf("Unexpected error returned from tsvToRows (%v)", err)
	}

	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Incorrect rows\n   expected: %q\n   got:      %q\n", expected, rows)
	}
}

func TestTSVToRowsWithEmptyFile(t *testing.T) {
	_, err := tsvToRows(strings.NewReader("\n\n"))
	if err == nil {
		t.Fatalf("Expected error return for empty TSV file, got %v", err)
	}
}
