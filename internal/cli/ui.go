package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/idilsaglam/moneywise/internal/route"
	"github.com/idilsaglam/moneywise/internal/tui"
)

type uiCmd struct {
	app   *App
	route string
}

func (*uiCmd) Name() string     { return "ui" }
func (*uiCmd) Synopsis() string { return "open the interactive terminal UI" }
func (*uiCmd) Usage() string {
	return `ui [-route id]

Opens the pages of one route. Routes are defined under "routes:" in the
configuration; tab switches page, ctrl+t switches theme, esc quits.
`
}

func (c *uiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.route, "route", c.app.Config.DefaultRoute, "route to open")
}

func (c *uiCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := route.NewTable(c.app.Config.Routes)
	if err != nil {
		c.app.failf("routes: %v", err)
		return subcommands.ExitFailure
	}
	pages, err := table.Resolve(c.route)
	if err != nil {
		return c.app.usage(c, err.Error())
	}
	l, closeFn, err := c.app.Ledger()
	if err != nil {
		c.app.failf("open ledger: %v", err)
		return subcommands.ExitFailure
	}
	defer closeFn()
	q, err := c.app.Quiz()
	if err != nil {
		c.app.failf("quiz: %v", err)
		return subcommands.ExitFailure
	}

	c.app.Log.Info().Str("route", c.route).Int("pages", len(pages)).Msg("starting ui")
	err = tui.Run(ctx, tui.Deps{
		Config: c.app.Config,
		Ledger: l,
		Rates:  c.app.Rates(nil),
		Quiz:   q,
		Log:    c.app.Log.With().Str("component", "tui").Logger(),
	}, pages)
	if err != nil {
		c.app.failf("ui: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
