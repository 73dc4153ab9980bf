package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/gsheets-append/row"
)

func sheetToTSV(f io.Writer, data *sheets.ValueRange) error {
	if len(data.Values) == 0 {
		return fmt.Errorf("Empty sheet")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, v := range data.Values {
		if err := w.Write(row.FromValues(v)); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// tsvToRows reads the rows to append from a TSV file. Blank lines are skipped
// and rows may have different lengths.
func tsvToRows(f io.Reader) ([]row.Row, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := []row.Row{}
	for _, record := range records {
		if strings.TrimSpace(strings.Join(record, "")) == "" {
			continue
		}

		rows = append(rows, row.Row(record))
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	return rows, nil
}
