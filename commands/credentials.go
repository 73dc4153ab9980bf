package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/uhppoted/gsheets-append/auth"
	"github.com/uhppoted/gsheets-append/config"
)

var CredentialsCmd = Credentials{
	set:    "",
	remove: "",
	list:   false,
	file:   "",
}

// Credentials manages the service account keys stored in the OS keyring.
type Credentials struct {
	set    string
	remove string
	list   bool
	file   string

	open func(*config.Config) func() (auth.Store, error)
}

func (cmd *Credentials) Name() string {
	return "credentials"
}

func (cmd *Credentials) Description() string {
	return "Stores, lists and deletes service account keys in the keyring"
}

func (cmd *Credentials) Usage() string {
	return "--set <name> --file <key.json> | --delete <name> | --list"
}

func (cmd *Credentials) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] credentials [--set <name> --file <key.json>] [--delete <name>] [--list]\n", APP)
	fmt.Println()
	fmt.Println("  Manages the Google service account keys stored in the keyring. A stored key is used by")
	fmt.Println("  setting --credentials to 'keyring:<name>'")
	fmt.Println()

	fmt.Println("  Options:")
	cmd.FlagSet().VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets-append credentials --set reports --file "reports-1234567890ab.json"`)
	fmt.Println(`    gsheets-append credentials --list`)
	fmt.Println(`    gsheets-append append --credentials keyring:reports --url 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms asd xxx`)
	fmt.Println()
}

func (cmd *Credentials) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("credentials", flag.ExitOnError)

	flagset.StringVar(&cmd.set, "set", cmd.set, "Stores the service account key from --file under this name")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Service account key file")
	flagset.StringVar(&cmd.remove, "delete", cmd.remove, "Deletes the named service account key")
	flagset.BoolVar(&cmd.list, "list", cmd.list, "Lists the stored service account keys")

	return flagset
}

func (cmd *Credentials) Execute(args ...any) error {
	options := args[0].(*Options)

	if err := config.LoadEnv(options.Env); err != nil {
		return err
	}

	conf := config.NewConfig()
	if err := conf.Load(options.Config); err != nil {
		return fmt.Errorf("could not load configuration (%w)", err)
	}

	open := keyringFor
	if cmd.open != nil {
		open = cmd.open
	}

	set := strings.TrimSpace(cmd.set)
	remove := strings.TrimSpace(cmd.remove)

	if set == "" && remove == "" && !cmd.list {
		return fmt.Errorf("one of --set, --delete or --list is required")
	}

	if set != "" && strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is required with --set")
	}

	store, err := open(conf)()
	if err != nil {
		return fmt.Errorf("unable to open keyring (%w)", err)
	}

	if set != "" {
		credentials := auth.FromFile(cmd.file)
		email, err := credentials.Email()
		if err != nil {
			return err
		}

		if err := store.Set(set, credentials); err != nil {
			return err
		}

		infof("Stored service account %v as '%v'", email, set)
	}

	if remove != "" {
		if err := store.Delete(remove); err != nil {
			return err
		}

		infof("Deleted service account '%v'", remove)
	}

	if cmd.list {
		names, err := store.List()
		if err != nil {
			return err
		}

		for _, name := range names {
			email := ""
			if credentials, err := store.Get(name); err != nil {
				warnf("%v: %v", name, err)
			} else if email, err = credentials.Email(); err != nil {
				warnf("%v: %v", name, err)
			}

			fmt.Printf("%-16v %v\n", name, email)
		}
	}

	return nil
}
