package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/idilsaglam/moneywise/internal/chart"
)

const homeMarkdown = `# MoneyWise

Plan, track and learn your money from the terminal.

* **sip**, **emi**, **tax**: calculators
* **expense**: the expense tracker
* **quiz**: five questions on personal finance
* **ui**: all of it, interactively

## Budget at a glance

Relative share of spending by head.
`

type homeCmd struct{ app *App }

func (*homeCmd) Name() string           { return "home" }
func (*homeCmd) Synopsis() string       { return "show the overview and budget chart" }
func (*homeCmd) Usage() string          { return "home\n" }
func (*homeCmd) SetFlags(*flag.FlagSet) {}

func (c *homeCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	fmt.Fprint(c.app.Out, renderMarkdown(homeMarkdown, 80))
	fmt.Fprintln(c.app.Out, chart.HomeBudget().Render(chartWidth))
	return subcommands.ExitSuccess
}
