package sheet

import (
	"context"

	"google.golang.org/api/option"

	"github.com/uhppoted/gsheets-append/auth"
)

// AppendToSpreadsheet authorises with the service account and appends the values as
// USER_ENTERED, returning the number of updated cells.
func AppendToSpreadsheet(ctx context.Context, credentials auth.Credentials, fileID string, name string, values []string, opts ...option.ClientOption) (int64, error) {
	google, err := auth.NewSheetsService(ctx, credentials, opts...)
	if err != nil {
		return 0, err
	}

	return AppendValues(ctx, google, fileID, name, values)
}

// AppendAndAdjust authorises with the service account, appends the values as literal
// strings and then rewrites the appended row as if it had been typed in.
func AppendAndAdjust(ctx context.Context, credentials auth.Credentials, fileID string, name string, values []string, opts ...option.ClientOption) error {
	google, err := auth.NewSheetsService(ctx, credentials, opts...)
	if err != nil {
		return err
	}

	if err := AppendRow(ctx, google, fileID, name, values); err != nil {
		return err
	}

	return ReformatLastRow(ctx, google, fileID, name)
}
