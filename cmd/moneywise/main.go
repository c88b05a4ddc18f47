// Command moneywise is a personal finance toolkit for the terminal:
// calculators, an expense tracker, a quiz and live rates.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"path"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/moneywise/internal/cli"
	"github.com/idilsaglam/moneywise/internal/config"
	"github.com/idilsaglam/moneywise/internal/logging"
	"github.com/idilsaglam/moneywise/internal/ui"
)

var (
	configPath = flag.String("config", "", "config file (default config.yaml in the data dir)")
	theme      = flag.String("theme", "", "light or dark, overrides the config")
	logLevel   = flag.String("log-level", "", "debug, info, warn or error, overrides the config")
	debug      = flag.Bool("debug", false, "log to stderr instead of the log file")
	noColor    = flag.Bool("no-color", false, "plain output")
)

func main() {
	name := path.Base(os.Args[0])
	if completing() {
		cfg, err := config.Load("")
		if err != nil {
			cfg, _ = config.Default()
		}
		cli.Completion(flag.CommandLine, cli.Commands(cli.NewApp(cfg, zerolog.Nop())), cfg.Routes).Complete(name)
		return
	}

	flag.Parse()
	cfg, err := config.Load(*configPath)
	if err == nil {
		err = override(cfg)
	}
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(int(subcommands.ExitUsageError))
	}
	ui.SetColorForcing(false, *noColor || os.Getenv("NO_COLOR") != "")
	ui.SetTheme(cfg.Theme)

	log, closer := openLog(cfg)
	log.Debug().Str("data_dir", cfg.DataDir).Str("backend", cfg.Storage.Backend).Msg("config loaded")

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cli.Commands(cli.NewApp(cfg, log)) {
		commander.Register(c, "")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	closer.Close()
	os.Exit(int(status))
}

// completing reports whether the shell asked for completions or for the
// completion script to be (un)installed.
func completing() bool {
	for _, v := range []string{"COMP_LINE", "COMP_INSTALL", "COMP_UNINSTALL"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

func override(cfg *config.Config) error {
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	return cfg.Validate()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openLog logs to stderr with --debug and to the log file otherwise. A log
// file that cannot be opened silences logging rather than failing the run.
func openLog(cfg *config.Config) (zerolog.Logger, io.Closer) {
	if *debug {
		return logging.Console(cfg.LogLevel), nopCloser{}
	}
	if err := config.EnsureDir(cfg.DataDir); err != nil {
		return zerolog.Nop(), nopCloser{}
	}
	log, c, err := logging.Open(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nopCloser{}
	}
	return log, c
}
