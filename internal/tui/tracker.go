package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/moneywise/internal/inr"
	"github.com/idilsaglam/moneywise/internal/ledger"
)

var (
	trackAdd    = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add"))
	trackSwitch = key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "field"))
	trackClear  = key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear all"))
	confirmYes  = key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes"))
	confirmNo   = key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no"))
)

const (
	clearPrompt  = "Are you sure you want to delete all expenses?"
	maxDescWidth = 60
)

// ledgerMsg is the view after a load, add or clear finished.
type ledgerMsg struct {
	view  ledger.View
	err   error
	added bool
}

type trackerPage struct {
	ctx    context.Context
	ledger *ledger.Ledger

	desc, amount textinput.Model
	focusAmount  bool
	confirming   bool

	view    ledger.View
	loaded  bool
	lastErr string
}

func newTrackerPage(ctx context.Context, l *ledger.Ledger) *trackerPage {
	p := &trackerPage{ctx: ctx, ledger: l}
	p.desc = textinput.New()
	p.desc.Prompt = "> "
	p.desc.Placeholder = "Description"
	p.desc.CharLimit = 120
	p.amount = textinput.New()
	p.amount.Prompt = "₹ "
	p.amount.Placeholder = "Amount"
	p.amount.CharLimit = 16
	p.desc.Focus()
	return p
}

func (p *trackerPage) Title() string   { return "Tracker" }
func (p *trackerPage) Capturing() bool { return !p.confirming }
func (p *trackerPage) Keys() []key.Binding {
	if p.confirming {
		return []key.Binding{confirmYes, confirmNo}
	}
	return []key.Binding{trackSwitch, trackAdd, trackClear}
}

// Init reloads the ledger each time the page is shown.
func (p *trackerPage) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, p.load)
}

func (p *trackerPage) load() tea.Msg {
	v, err := p.ledger.Load(p.ctx)
	return ledgerMsg{view: v, err: err}
}

func (p *trackerPage) add(desc, amount string) tea.Cmd {
	return func() tea.Msg {
		v, err := p.ledger.Add(p.ctx, desc, ledger.ParseAmount(amount))
		return ledgerMsg{view: v, err: err, added: err == nil}
	}
}

func (p *trackerPage) clear() tea.Msg {
	// the user already answered the prompt in the page
	if _, err := p.ledger.Clear(p.ctx, func() bool { return true }); err != nil {
		return ledgerMsg{view: p.view, err: err}
	}
	return p.load()
}

func (p *trackerPage) toggleField() {
	p.focusAmount = !p.focusAmount
	if p.focusAmount {
		p.desc.Blur()
		p.amount.Focus()
	} else {
		p.amount.Blur()
		p.desc.Focus()
	}
}

func (p *trackerPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case ledgerMsg:
		if msg.err != nil {
			if errors.Is(msg.err, ledger.ErrInvalidExpense) {
				p.lastErr = "Enter a description and an amount"
			} else {
				p.lastErr = msg.err.Error()
			}
			return p, nil
		}
		p.view, p.loaded, p.lastErr = msg.view, true, ""
		if msg.added {
			p.desc.SetValue("")
			p.amount.SetValue("")
			if p.focusAmount {
				p.toggleField()
			}
		}
		return p, nil

	case tea.KeyMsg:
		if p.confirming {
			switch {
			case key.Matches(msg, confirmYes):
				p.confirming = false
				return p, p.clear
			case key.Matches(msg, confirmNo):
				p.confirming = false
			}
			return p, nil
		}
		switch {
		case key.Matches(msg, trackClear):
			p.confirming = true
			return p, nil
		case key.Matches(msg, trackSwitch):
			p.toggleField()
			return p, nil
		case key.Matches(msg, trackAdd):
			if !p.focusAmount && strings.TrimSpace(p.amount.Value()) == "" {
				p.toggleField()
				return p, nil
			}
			return p, p.add(p.desc.Value(), p.amount.Value())
		}
	}
	var cmd tea.Cmd
	if p.focusAmount {
		p.amount, cmd = p.amount.Update(msg)
	} else {
		p.desc, cmd = p.desc.Update(msg)
	}
	return p, cmd
}

func (p *trackerPage) View(st styles, width int) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Expense Tracker") + "\n\n")
	b.WriteString(p.desc.View() + "\n" + p.amount.View() + "\n")
	if p.lastErr != "" {
		b.WriteString(st.danger.Render(p.lastErr) + "\n")
	}
	b.WriteString("\n")

	if p.confirming {
		b.WriteString(st.panel(st.danger.Render(clearPrompt)+"\n"+st.muted.Render("y / n")) + "\n\n")
	}

	switch {
	case !p.loaded:
		b.WriteString(st.muted.Render("loading…") + "\n")
	case len(p.view.Entries) == 0:
		b.WriteString(st.muted.Render("No expenses yet") + "\n")
	default:
		rowWidth := width - 2
		if rowWidth > maxDescWidth+20 {
			rowWidth = maxDescWidth + 20
		}
		if rowWidth < 30 {
			rowWidth = 30
		}
		for _, e := range p.view.Entries {
			desc := e.Desc
			if len([]rune(desc)) > maxDescWidth {
				desc = string([]rune(desc)[:maxDescWidth-3]) + "..."
			}
			amt := inr.Amount(e.Amount)
			b.WriteString(padRight(desc, rowWidth-len([]rune(amt))) + st.title.Render(amt) + "\n")
			b.WriteString(st.muted.Render(strings.Repeat("─", rowWidth)) + "\n")
		}
	}
	b.WriteString(fmt.Sprintf("\nTotal  %s", st.result.Render(inr.Total(p.view.Total))))
	return b.String()
}
