// Command ls-sunpos computes and visualizes the position of the sun.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/litescript/ls-sunpos/internal/cli"
)

func main() {
	// set up stderr logger by default, subcommands (such as tui) may choose
	// to change this
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	parser := flags.NewParser(&cli.Opts, flags.Default)
	parser.SubcommandsOptional = true

	// Apply the global log level before any subcommand runs
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		applyLogLevel(cli.Opts.LogLevel)
		return command.Execute(args)
	}

	_, err := parser.Parse()
	if flags.WroteHelp(err) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error (e.g. flag parsing):\n > %s\n", err.Error())
		os.Exit(1)
	}

	if cli.Opts.Version {
		cmd := cli.VersionCommand{}
		if err := cmd.Execute(nil); err != nil {
			fmt.Fprintf(os.Stderr, "exited with error:\n > %s\n", err.Error())
			os.Exit(1)
		}
		return
	}

	// No subcommand given: default to the current position
	if parser.Active == nil {
		applyLogLevel(cli.Opts.LogLevel)
		cmd := cli.NowCommand{}
		if err := cmd.Execute(nil); err != nil {
			fmt.Fprintf(os.Stderr, "exited with error:\n > %s\n", err.Error())
			os.Exit(1)
		}
	}
}

func applyLogLevel(name string) {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		log.Warn().Str("level", name).Msg("unknown log level, keeping info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
