package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	conf := NewConfig()

	err := conf.Load(filepath.Join(t.TempDir(), "gsheets-append.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", conf.Sheet)
	assert.Equal(t, "", conf.Credentials)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsheets-append.yaml")
	data := `
credentials: keyring:reports
spreadsheet: https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0
sheet: Class Data
keyring:
  backend: file
  dir: /var/lib/gsheets/keyring
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	conf := NewConfig()
	require.NoError(t, conf.Load(path))

	assert.Equal(t, "keyring:reports", conf.Credentials)
	assert.Equal(t, "Class Data", conf.Sheet)
	assert.Equal(t, "file", conf.Keyring.Backend)
	assert.Equal(t, "/var/lib/gsheets/keyring", conf.Keyring.Dir)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsheets-append.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sheet: [unterminated"), 0600))

	assert.Error(t, NewConfig().Load(path))
}

func TestLoadWithEnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsheets-append.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sheet: Class Data\n"), 0600))

	t.Setenv("GSHEETS_SHEET", "Log")
	t.Setenv("GSHEETS_CREDENTIALS", "/etc/gsheets/credentials.json")

	conf := NewConfig()
	require.NoError(t, conf.Load(path))

	assert.Equal(t, "Log", conf.Sheet)
	assert.Equal(t, "/etc/gsheets/credentials.json", conf.Credentials)
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GSHEETS_SPREADSHEET=1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms\n"), 0600))

	t.Setenv("GSHEETS_SPREADSHEET", "")
	os.Unsetenv("GSHEETS_SPREADSHEET")

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", os.Getenv("GSHEETS_SPREADSHEET"))

	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestSpreadsheetID(t *testing.T) {
	tests := map[string]string{
		"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms":                                                    "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms":             "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#0":      "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms?usp=sharing": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms#gid=0":       "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
	}

	for s, expected := range tests {
		id, err := SpreadsheetID(s)
		require.NoError(t, err)
		assert.Equal(t, expected, id)
	}

	_, err := SpreadsheetID("https://example.com/not/a/spreadsheet")
	assert.Error(t, err)

	_, err = SpreadsheetID("")
	assert.Error(t, err)

	_, err = SpreadsheetID("https://docs.google.com/spreadsheets/d/")
	assert.Error(t, err)
}
