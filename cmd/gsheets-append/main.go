package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
	"github.com/uhppoted/uhppoted-lib/command"

	"github.com/uhppoted/gsheets-append/commands"
	"github.com/uhppoted/gsheets-append/errfmt"
)

var cli = []uhppoted.Command{
	&commands.AppendCmd,
	&commands.AppendRowCmd,
	&commands.ReformatCmd,
	&commands.SheetIDCmd,
	&commands.GetCmd,
	&commands.CredentialsCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Config: commands.DEFAULT_CONFIG,
	Env:    ".env",
	Debug:  false,
}

var help = uhppoted.NewHelp(commands.APP, cli, nil)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.StringVar(&options.Config, "config", options.Config, "Configuration file path")
	flag.StringVar(&options.Env, "env", options.Env, "Environment variables file")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if options.Debug {
		log.SetLevel(log.DebugLevel)
	}

	cmd, err := uhppoted.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		stderr := termenv.NewOutput(os.Stderr)
		prefix := stderr.String("ERROR").Foreground(stderr.Color("1")).Bold()

		fmt.Fprintf(os.Stderr, "\n%v %v\n\n", prefix, errfmt.Format(err))
		os.Exit(1)
	}
}
