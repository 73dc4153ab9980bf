package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Credentials holds a service account key, either as the path to the downloaded JSON key file
// or as the key itself. The service account must have edit rights on the spreadsheet.
type Credentials struct {
	path string
	key  []byte
}

func FromFile(path string) Credentials {
	return Credentials{
		path: path,
	}
}

func FromJSON(key []byte) Credentials {
	return Credentials{
		key: key,
	}
}

// FromMap converts a decoded service account key back into credentials.
func FromMap(key map[string]any) (Credentials, error) {
	b, err := json.Marshal(key)
	if err != nil {
		return Credentials{}, fmt.Errorf("invalid service account key (%w)", err)
	}

	return FromJSON(b), nil
}

func (c Credentials) String() string {
	if c.path != "" {
		return c.path
	}

	return "<service account key>"
}

func (c Credentials) Bytes() ([]byte, error) {
	switch {
	case len(c.key) > 0:
		return c.key, nil

	case strings.TrimSpace(c.path) != "":
		return os.ReadFile(c.path)

	default:
		return nil, fmt.Errorf("missing service account credentials")
	}
}

// Client returns an HTTP client authorised with the service account key. Defaults to the
// read/write spreadsheets scope.
func Client(ctx context.Context, credentials Credentials, scopes ...string) (*http.Client, error) {
	b, err := credentials.Bytes()
	if err != nil {
		return nil, err
	}

	if len(scopes) == 0 {
		scopes = []string{sheets.SpreadsheetsScope}
	}

	config, err := google.JWTConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials %v (%w)", credentials, err)
	}

	return config.Client(ctx), nil
}

// NewSheetsService creates a Sheets API client authorised with the service account. Any
// additional options are applied after the authorised HTTP client, so an additional
// option.WithHTTPClient replaces it.
func NewSheetsService(ctx context.Context, credentials Credentials, opts ...option.ClientOption) (*sheets.Service, error) {
	client, err := Client(ctx, credentials)
	if err != nil {
		return nil, err
	}

	options := append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)

	google, err := sheets.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return google, nil
}
