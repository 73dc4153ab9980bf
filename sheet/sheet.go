package sheet

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/gsheets-append/row"
)

const (
	USER_ENTERED = "USER_ENTERED"
	RAW          = "RAW"
)

var ErrSheetNotFound = errors.New("sheet not found")
var ErrEmptySheet = errors.New("no rows in sheet")

type SheetNotFoundError struct {
	Name string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("Sheet %v not found", e.Name)
}

func (e *SheetNotFoundError) Is(target error) bool {
	return target == ErrSheetNotFound
}

// SheetID returns the numeric ID of the worksheet with the matching title.
func SheetID(ctx context.Context, google *sheets.Service, fileID string, name string) (int64, error) {
	spreadsheet, err := google.Spreadsheets.Get(fileID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch spreadsheet (%w)", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == name {
			return sheet.Properties.SheetId, nil
		}
	}

	return 0, &SheetNotFoundError{Name: name}
}

// AppendRowRequest builds the batch update request that appends the row to the
// worksheet. Only the user entered values are written.
func AppendRowRequest(data *sheets.RowData, sheetID int64) *sheets.BatchUpdateSpreadsheetRequest {
	return &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			&sheets.Request{
				AppendCells: &sheets.AppendCellsRequest{
					SheetId:         sheetID,
					Rows:            []*sheets.RowData{data},
					Fields:          "userEnteredValue",
					ForceSendFields: []string{"SheetId"},
				},
			},
		},
	}
}

// AppendRow appends the values to the named worksheet as literal strings.
func AppendRow(ctx context.Context, google *sheets.Service, fileID string, name string, values []string) error {
	sheetID, err := SheetID(ctx, google, fileID, name)
	if err != nil {
		return err
	}

	log.Debugf("appending %v values to sheet %v (%v)", len(values), name, sheetID)

	rq := AppendRowRequest(row.ToRowData(values), sheetID)

	if _, err := google.Spreadsheets.BatchUpdate(fileID, rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error appending row to %v (%w)", name, err)
	}

	return nil
}

// AppendValues appends the values to the named worksheet as if they had been typed in, returning
// the number of updated cells.
//
// The row is located by the Sheets 'table' detection, which has two quirks:
//
//   - empty cells in the heading range (A1:<end column>1) shift the new values to the right
//   - empty rows between written rows are filled before the end of the sheet
//
// i.e. the worksheet should have a contiguous heading row and no gaps.
//
// Values are not escaped, so a leading '=' or '+' is evaluated as a formula.
func AppendValues(ctx context.Context, google *sheets.Service, fileID string, name string, values []string) (int64, error) {
	area := row.Range(name, "A1", row.EndColumn(len(values))+"1")
	body := sheets.ValueRange{
		Values: [][]interface{}{row.ToValues(values)},
	}

	log.Debugf("appending %v values to %v", len(values), area)

	response, err := google.Spreadsheets.Values.Append(fileID, area, &body).
		ValueInputOption(USER_ENTERED).
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("error appending values to %v (%w)", name, err)
	}

	if response.Updates == nil {
		return 0, nil
	}

	return response.Updates.UpdatedCells, nil
}

// ReformatLastRow rewrites the last row of the named worksheet as USER_ENTERED values,
// escaping anything that would otherwise be evaluated as a formula.
func ReformatLastRow(ctx context.Context, google *sheets.Service, fileID string, name string) error {
	response, err := google.Spreadsheets.Values.Get(fileID, row.Range(name, "A1", "ZZ")).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to retrieve data from sheet %v (%w)", name, err)
	}

	last := len(response.Values)
	if last == 0 {
		return fmt.Errorf("%v: %w", name, ErrEmptySheet)
	}

	values := row.EscapeFormulas(row.FromValues(response.Values[last-1]))
	area := row.Range(name, fmt.Sprintf("A%v", last), fmt.Sprintf("%v%v", row.EndColumn(len(values)), last))
	body := sheets.ValueRange{
		Values: [][]interface{}{row.ToValues(values)},
	}

	log.Debugf("reformatting %v", area)

	if _, err := google.Spreadsheets.Values.Update(fileID, area, &body).
		ValueInputOption(USER_ENTERED).
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("error reformatting %v (%w)", area, err)
	}

	return nil
}

// GetValues retrieves the formatted values for a worksheet range.
func GetValues(ctx context.Context, google *sheets.Service, fileID string, area string) (*sheets.ValueRange, error) {
	response, err := google.Spreadsheets.Values.Get(fileID, area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	return response, nil
}
