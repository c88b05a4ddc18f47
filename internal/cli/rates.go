package cli

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/google/subcommands"
)

type ratesCmd struct {
	app     *App
	timeout time.Duration
	client  *http.Client
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "print the USD and EUR to INR rates" }
func (*ratesCmd) Usage() string {
	return `rates [-timeout duration]

Fetches the rate once. When the request fails the offline rate is printed
and the cause is logged.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.timeout, "timeout", 0, "give up on the request after this long, 0 waits")
}

func (c *ratesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	fmt.Fprintln(c.app.Out, c.app.Rates(c.client).Ticker(ctx))
	return subcommands.ExitSuccess
}
