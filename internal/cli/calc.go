package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/idilsaglam/moneywise/internal/calc"
	"github.com/idilsaglam/moneywise/internal/chart"
	"github.com/idilsaglam/moneywise/internal/inr"
	"github.com/idilsaglam/moneywise/internal/ui"
)

const chartWidth = 48

type sipCmd struct {
	app                 *App
	amount, rate, years float64
}

func (*sipCmd) Name() string     { return "sip" }
func (*sipCmd) Synopsis() string { return "project a monthly SIP" }
func (*sipCmd) Usage() string {
	return `sip [-amount rupees] [-rate percent] [-years n]

Projects the future value of a monthly investment made at the start of
each month. Missing flags take the configured defaults.
`
}

func (c *sipCmd) SetFlags(f *flag.FlagSet) {
	d := c.app.Config.Calculators.SIP
	f.Float64Var(&c.amount, "amount", d.Amount, "monthly investment")
	f.Float64Var(&c.rate, "rate", d.Rate, "expected annual return, percent")
	f.Float64Var(&c.years, "years", d.Years, "duration in years")
}

func (c *sipCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sip, ok := calc.ProjectSIP(c.amount, c.rate, c.years)
	if !ok {
		return c.app.usage(c, "sip: amount and years must be positive and the rate non-zero")
	}
	t := ui.Current()
	lines := []string{
		ui.C(t.Title, "SIP Calculator"),
		"",
		fmt.Sprintf("%s %s", ui.C(t.Accent, "Future Value "), ui.C(t.Title, inr.Rounded(sip.FutureValue))),
		fmt.Sprintf("%s %s", ui.C(t.Muted, "Invested     "), inr.Rounded(sip.Invested)),
		fmt.Sprintf("%s %s", ui.C(t.Muted, "Wealth Gained"), inr.Rounded(sip.Profit)),
	}
	ui.FPanel(c.app.Out, lines)
	fmt.Fprintln(c.app.Out, chart.SIPSplit(sip.Invested, sip.Profit).Render(chartWidth))
	return subcommands.ExitSuccess
}

type emiCmd struct {
	app                     *App
	principal, rate, months float64
}

func (*emiCmd) Name() string     { return "emi" }
func (*emiCmd) Synopsis() string { return "compute a loan EMI" }
func (*emiCmd) Usage() string {
	return `emi [-principal rupees] [-rate percent] [-months n]

Computes the equated monthly installment of a loan.
`
}

func (c *emiCmd) SetFlags(f *flag.FlagSet) {
	d := c.app.Config.Calculators.EMI
	f.Float64Var(&c.principal, "principal", d.Principal, "loan amount")
	f.Float64Var(&c.rate, "rate", d.Rate, "annual interest, percent")
	f.Float64Var(&c.months, "months", d.Months, "tenure in months")
}

func (c *emiCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	emi, ok := calc.EMI(c.principal, c.rate, c.months)
	if !ok {
		return c.app.usage(c, "emi: principal and months must be positive and the rate non-zero")
	}
	t := ui.Current()
	ui.FPanel(c.app.Out, []string{
		ui.C(t.Title, "EMI Calculator"),
		"",
		fmt.Sprintf("%s %s", ui.C(t.Accent, "Monthly EMI"), ui.C(t.Title, inr.Rounded(emi))),
		fmt.Sprintf("%s %s", ui.C(t.Muted, "Total paid "), inr.Rounded(emi*c.months)),
	})
	return subcommands.ExitSuccess
}

type taxCmd struct {
	app    *App
	income float64
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "compare income tax across regimes" }
func (*taxCmd) Usage() string {
	return `tax [-income rupees]

Prints the tax due under every configured regime.
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.income, "income", c.app.Config.Calculators.Income, "annual gross income")
}

func (c *taxCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cmp := calc.CompareTax(c.income, c.app.Config.Tax.Regimes)
	fmt.Fprint(c.app.Out, renderMarkdown(taxMarkdown(cmp), 80))
	return subcommands.ExitSuccess
}

func taxMarkdown(cmp calc.Comparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Tax Comparison\n\nAnnual income **%s**\n\n", inr.Rounded(cmp.Income))
	b.WriteString("| Regime | Tax |\n|---|---:|\n")
	for _, t := range cmp.Taxes {
		fmt.Fprintf(&b, "| %s | %s |\n", t.Regime, inr.Rounded(t.Tax))
	}
	return b.String()
}
