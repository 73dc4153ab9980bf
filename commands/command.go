package commands

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/gsheets-append/auth"
	"github.com/uhppoted/gsheets-append/config"
)

const APP = "gsheets-append"

type Options struct {
	Config string
	Env    string
	Debug  bool

	// Additional Sheets API client options e.g. an alternative endpoint
	ClientOptions []option.ClientOption
}

type command struct {
	credentials string
	spreadsheet string
	sheet       string
	debug       bool

	flags *flag.FlagSet
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Service account key file, or 'keyring:<name>' for a key stored in the keyring")
	flagset.StringVar(&c.spreadsheet, "url", c.spreadsheet, "Spreadsheet URL or ID")
	flagset.StringVar(&c.sheet, "sheet", c.sheet, "Worksheet name e.g. 'Sheet1'")

	c.flags = flagset

	return flagset
}

func (c *command) args() []string {
	if c.flags == nil {
		return nil
	}

	return c.flags.Args()
}

// configure fills in any options not set on the command line from the configuration
// file and environment.
func (c *command) configure(options *Options) (*config.Config, error) {
	c.debug = options.Debug

	if err := config.LoadEnv(options.Env); err != nil {
		return nil, err
	}

	conf := config.NewConfig()
	if err := conf.Load(options.Config); err != nil {
		return nil, fmt.Errorf("could not load configuration (%w)", err)
	}

	if strings.TrimSpace(c.credentials) == "" {
		c.credentials = conf.Credentials
	}

	if strings.TrimSpace(c.credentials) == "" {
		c.credentials = DEFAULT_CREDENTIALS
	}

	if strings.TrimSpace(c.spreadsheet) == "" {
		c.spreadsheet = conf.Spreadsheet
	}

	if strings.TrimSpace(c.sheet) == "" {
		c.sheet = conf.Sheet
	}

	return conf, nil
}

func (c *command) validate() error {
	if strings.TrimSpace(c.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(c.spreadsheet) == "" {
		return fmt.Errorf("--url is a required option")
	}

	if strings.TrimSpace(c.sheet) == "" {
		return fmt.Errorf("--sheet is a required option")
	}

	return nil
}

// connect resolves the credentials and spreadsheet and returns an authorised Sheets client.
func (c *command) connect(ctx context.Context, conf *config.Config, options *Options) (*sheets.Service, string, error) {
	spreadsheetID, err := config.SpreadsheetID(c.spreadsheet)
	if err != nil {
		return nil, "", err
	}

	credentials, err := auth.Resolve(c.credentials, keyringFor(conf))
	if err != nil {
		return nil, "", err
	}

	if c.debug {
		debugf("Spreadsheet - ID:%s  sheet:%s  credentials:%v", spreadsheetID, c.sheet, credentials)
	}

	google, err := auth.NewSheetsService(ctx, credentials, options.ClientOptions...)
	if err != nil {
		return nil, "", fmt.Errorf("authentication/authorization error (%w)", err)
	}

	return google, spreadsheetID, nil
}

func keyringFor(conf *config.Config) func() (auth.Store, error) {
	return func() (auth.Store, error) {
		dir := conf.Keyring.Dir
		if dir == "" && conf.Workdir != "" {
			dir = filepath.Join(conf.Workdir, "keyring")
		}

		return auth.OpenKeyring(auth.KeyringConfig{
			Service: APP,
			Backend: conf.Keyring.Backend,
			Dir:     dir,
		})
	}
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("    --debug         Displays internal information for diagnosing errors")
	fmt.Println("    --config <file> Configuration file path")
}

func debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

func infof(format string, args ...any) {
	log.Infof(format, args...)
}

func warnf(format string, args ...any) {
	log.Warnf(format, args...)
}
