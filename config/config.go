package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Credentials string  `yaml:"credentials"`
	Spreadsheet string  `yaml:"spreadsheet"`
	Sheet       string  `yaml:"sheet"`
	Workdir     string  `yaml:"workdir"`
	Keyring     Keyring `yaml:"keyring"`
}

type Keyring struct {
	Backend string `yaml:"backend"`
	Dir     string `yaml:"dir"`
}

var spreadsheetURL = regexp.MustCompile(`^https://docs\.google\.com/spreadsheets/d/([a-zA-Z0-9_-]+)(?:[/?#].*)?$`)
var spreadsheetID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func NewConfig() *Config {
	return &Config{
		Sheet: "Sheet1",
	}
}

// Load reads the YAML configuration file, if it exists, and then applies any
// GSHEETS_* environment variable overrides.
func (c *Config) Load(path string) error {
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		} else if err == nil {
			if err := yaml.Unmarshal(b, c); err != nil {
				return fmt.Errorf("invalid configuration file %v (%w)", path, err)
			}
		}
	}

	c.env()

	return nil
}

func (c *Config) env() {
	overrides := map[string]*string{
		"GSHEETS_CREDENTIALS":     &c.Credentials,
		"GSHEETS_SPREADSHEET":     &c.Spreadsheet,
		"GSHEETS_SHEET":           &c.Sheet,
		"GSHEETS_WORKDIR":         &c.Workdir,
		"GSHEETS_KEYRING_BACKEND": &c.Keyring.Backend,
		"GSHEETS_KEYRING_DIR":     &c.Keyring.Dir,
	}

	for k, v := range overrides {
		if s, ok := os.LookupEnv(k); ok && strings.TrimSpace(s) != "" {
			*v = strings.TrimSpace(s)
		}
	}
}

// LoadEnv loads environment variables from a .env file. Variables already set in the
// environment take precedence and a missing file is ignored.
func LoadEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %v (%w)", path, err)
	}

	return nil
}

// SpreadsheetID extracts the spreadsheet ID from a Google Sheets URL, or returns
// the argument unchanged if it is already an ID.
func SpreadsheetID(s string) (string, error) {
	s = strings.TrimSpace(s)

	if match := spreadsheetURL.FindStringSubmatch(s); len(match) > 1 && match[1] != "" {
		return match[1], nil
	}

	if spreadsheetID.MatchString(s) {
		return s, nil
	}

	return "", fmt.Errorf("invalid spreadsheet '%v' - expected an ID or URL like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'", s)
}
