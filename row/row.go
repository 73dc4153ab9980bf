package row

import (
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// Row is the ordered list of cell values appended to a worksheet.
type Row []string

// EscapeFormulas returns a copy of values with a leading apostrophe added to any value
// that Google Sheets would otherwise interpret as a formula when written as USER_ENTERED.
func EscapeFormulas(values []string) []string {
	escaped := make([]string, len(values))

	for i, v := range values {
		if strings.HasPrefix(v, "=") || strings.HasPrefix(v, "+") {
			escaped[i] = "'" + v
		} else {
			escaped[i] = v
		}
	}

	return escaped
}

// EndColumn returns the column letter at offset n from 'A' i.e. one column past the
// last value of an n element row. The extra column is harmless for the inclusive
// ranges used for append and update.
func EndColumn(n int) string {
	if n < 0 {
		n = 0
	}

	return ColumnName(n + 1)
}

// ColumnName converts a 1-based column index to the worksheet column letters
// e.g. 1 -> A, 26 -> Z, 27 -> AA.
func ColumnName(index int) string {
	if index < 1 {
		return ""
	}

	letters := []byte{}
	for index > 0 {
		index--
		letters = append([]byte{byte('A' + index%26)}, letters...)
		index /= 26
	}

	return string(letters)
}

// Range formats an A1 range for the named sheet. The sheet name is always quoted so
// that names like 'A1' or '2024' are not parsed as cell references.
func Range(sheet, from, to string) string {
	name := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"

	if to == "" {
		return fmt.Sprintf("%v!%v", name, from)
	}

	return fmt.Sprintf("%v!%v:%v", name, from, to)
}

// ToRowData converts the values to a RowData with every cell set as a string.
func ToRowData(values []string) *sheets.RowData {
	cells := make([]*sheets.CellData, 0, len(values))

	for _, v := range values {
		s := v
		cells = append(cells, &sheets.CellData{
			UserEnteredValue: &sheets.ExtendedValue{
				StringValue: &s,
			},
		})
	}

	return &sheets.RowData{
		Values: cells,
	}
}

// ToValues converts the values to a ValueRange row.
func ToValues(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}

	return row
}

// FromValues converts a ValueRange row back to strings.
func FromValues(values []interface{}) []string {
	row := make([]string, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			row[i] = s
		} else {
			row[i] = fmt.Sprintf("%v", v)
		}
	}

	return row
}
