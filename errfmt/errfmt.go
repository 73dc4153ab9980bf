package errfmt

import (
	"errors"
	"fmt"
	"os"

	"github.com/99designs/keyring"
	"google.golang.org/api/googleapi"

	"github.com/uhppoted/gsheets-append/sheet"
)

// Format returns the error as a message suitable for the command line.
func Format(err error) string {
	if err == nil {
		return ""
	}

	var notFound *sheet.SheetNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("No worksheet named '%v' in spreadsheet (worksheet names are case sensitive)", notFound.Name)
	}

	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "Service account not found in keyring. Run: gsheets-append credentials --set <name> --file <key.json>"
	}

	if errors.Is(err, os.ErrNotExist) {
		return err.Error()
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		reason := ""
		if len(gerr.Errors) > 0 && gerr.Errors[0].Reason != "" {
			reason = gerr.Errors[0].Reason
		}

		if reason != "" {
			return fmt.Sprintf("Google API error (%d %s): %s", gerr.Code, reason, gerr.Message)
		}

		return fmt.Sprintf("Google API error (%d): %s", gerr.Code, gerr.Message)
	}

	return err.Error()
}
