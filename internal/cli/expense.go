package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/idilsaglam/moneywise/internal/inr"
	"github.com/idilsaglam/moneywise/internal/ledger"
	"github.com/idilsaglam/moneywise/internal/model"
	"github.com/idilsaglam/moneywise/internal/ui"
)

type expenseCmd struct {
	app *App
	yes bool
	out string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "add, list, clear or export tracked expenses" }
func (*expenseCmd) Usage() string {
	return `expense [-yes] [-o file.pdf] <subcommand> [args]

Subcommands:
  add <description...> <amount>   Add an expense (description can be multiple words)
  ls                              List expenses with the running total
  clear                           Delete every expense after confirmation (-yes skips it)
  export                          Write the ledger as a PDF statement to -o

Examples:
  moneywise expense add Coffee 150
  moneywise expense ls
  moneywise expense -yes clear
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "clear without asking")
	f.StringVar(&c.out, "o", "expenses.pdf", "export destination")
}

func (c *expenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) == 0 {
		return c.app.usage(c, "expense: missing subcommand")
	}
	cmd, a := args[0], args[1:]

	l, closeFn, err := c.app.Ledger()
	if err != nil {
		c.app.failf("open ledger: %v", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	switch cmd {
	case "ls":
		return c.doList(ctx, l)

	case "add":
		if len(a) < 2 {
			return c.app.usage(c, "usage: moneywise expense add <description...> <amount>")
		}
		return c.doAdd(ctx, l, strings.Join(a[:len(a)-1], " "), a[len(a)-1])

	case "clear":
		return c.doClear(ctx, l)

	case "export":
		return c.doExport(ctx, l)
	}
	return c.app.usage(c, "unknown expense subcommand: "+cmd)
}

// -------------- subcommand impls ----------------

func (c *expenseCmd) doList(ctx context.Context, l *ledger.Ledger) subcommands.ExitStatus {
	v, err := l.Load(ctx)
	if err != nil {
		c.app.failf("load: %v", err)
		return subcommands.ExitFailure
	}
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d",
		ui.C(t.Title, "Expenses"),
		ui.C(t.Accent, "Entries"), len(v.Entries),
	)
	lines := []string{header, ""}
	lines = append(lines, expenseLines(v.Entries)...)
	lines = append(lines, "", fmt.Sprintf("%s %s", ui.C(t.Accent, "Total"), ui.C(t.Title, inr.Total(v.Total))))
	lines = append(lines, "", ui.C(t.Muted, "Tip: add with `moneywise expense add Coffee 150`"))
	ui.FPanel(c.app.Out, lines)
	return subcommands.ExitSuccess
}

func (c *expenseCmd) doAdd(ctx context.Context, l *ledger.Ledger, desc, amount string) subcommands.ExitStatus {
	v, err := l.Add(ctx, desc, ledger.ParseAmount(amount))
	if errors.Is(err, ledger.ErrInvalidExpense) {
		return c.app.usage(c, "add: "+err.Error())
	}
	if err != nil {
		c.app.failf("save: %v", err)
		return subcommands.ExitFailure
	}
	ui.FOK(c.app.Out, fmt.Sprintf("added, total %s", inr.Total(v.Total)))
	return subcommands.ExitSuccess
}

func (c *expenseCmd) doClear(ctx context.Context, l *ledger.Ledger) subcommands.ExitStatus {
	confirm := c.app.confirm("Are you sure you want to delete all expenses?")
	if c.yes {
		confirm = func() bool { return true }
	}
	cleared, err := l.Clear(ctx, confirm)
	if err != nil {
		c.app.failf("clear: %v", err)
		return subcommands.ExitFailure
	}
	if !cleared {
		ui.FOK(c.app.Out, "kept")
		return subcommands.ExitSuccess
	}
	ui.FOK(c.app.Out, "cleared")
	return subcommands.ExitSuccess
}

func (c *expenseCmd) doExport(ctx context.Context, l *ledger.Ledger) subcommands.ExitStatus {
	v, err := l.Load(ctx)
	if err != nil {
		c.app.failf("load: %v", err)
		return subcommands.ExitFailure
	}
	out, err := os.Create(c.out)
	if err != nil {
		c.app.failf("export: %v", err)
		return subcommands.ExitFailure
	}
	if err := ledger.WritePDF(out, v, time.Now()); err != nil {
		out.Close()
		c.app.failf("export: %v", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		c.app.failf("export: %v", err)
		return subcommands.ExitFailure
	}
	ui.FOK(c.app.Out, "exported to "+c.out)
	return subcommands.ExitSuccess
}

// -------------- rendering helpers --------------

func expenseLines(entries []model.Expense) []string {
	if len(entries) == 0 {
		return []string{ui.C(ui.Current().Muted, "no expenses")}
	}
	out := make([]string, 0, len(entries))
	for i, e := range entries {
		idx := fmt.Sprintf("%2d.", i+1)
		desc := e.Desc
		if len([]rune(desc)) > 60 {
			desc = string([]rune(desc)[:57]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %-60s %s",
			ui.C("\033[2m", idx), desc, ui.C(ui.Current().Title, inr.Amount(e.Amount))))
	}
	return out
}
