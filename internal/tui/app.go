// Package tui is the interactive terminal front end. It shows the pages of
// one route with the theme switch and rate ticker in a shared header.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/moneywise/internal/config"
	"github.com/idilsaglam/moneywise/internal/ledger"
	"github.com/idilsaglam/moneywise/internal/quiz"
	"github.com/idilsaglam/moneywise/internal/rates"
	"github.com/idilsaglam/moneywise/internal/route"
	"github.com/idilsaglam/moneywise/internal/ui"
)

// Deps are the components the pages drive.
type Deps struct {
	Config *config.Config
	Ledger *ledger.Ledger
	Rates  *rates.Client
	Quiz   *quiz.Quiz
	Log    zerolog.Logger
}

// page is one page module hosted by the app.
type page interface {
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) (page, tea.Cmd)
	View(st styles, width int) string
	// Capturing is true while keystrokes belong to a text field.
	Capturing() bool
	// Keys lists the page bindings for the help line.
	Keys() []key.Binding
}

type keyMap struct {
	Next, Prev, Theme, Quit key.Binding
}

var keys = keyMap{
	Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
	Prev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),
	Theme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
	Quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

// tickerMsg carries the rate line once the request resolves.
type tickerMsg string

type appModel struct {
	pages  []page
	active int

	theme  ui.Theme
	styles styles
	help   help.Model

	rates  *rates.Client
	ctx    context.Context
	ticker string

	width, height int
}

func newApp(ctx context.Context, d Deps, pages []route.Page) (appModel, error) {
	m := appModel{
		theme:  ui.Named(d.Config.Theme),
		help:   help.New(),
		rates:  d.Rates,
		ctx:    ctx,
		width:  80,
		height: 24,
	}
	m.styles = newStyles(m.theme)
	for _, p := range pages {
		switch p {
		case route.Home:
			m.pages = append(m.pages, newHomePage())
		case route.Calculators:
			m.pages = append(m.pages, newCalcPage(d.Config))
		case route.Tracker:
			m.pages = append(m.pages, newTrackerPage(ctx, d.Ledger))
		case route.Quiz:
			m.pages = append(m.pages, newQuizPage(d.Quiz))
		default:
			return m, fmt.Errorf("no page module for %q", p)
		}
	}
	if len(m.pages) == 0 {
		return m, fmt.Errorf("route activates no pages")
	}
	return m, nil
}

// Run starts the TUI on the given pages and blocks until the user quits.
func Run(ctx context.Context, d Deps, pages []route.Page) error {
	m, err := newApp(ctx, d, pages)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

func (m appModel) fetchRates() tea.Msg {
	return tickerMsg(m.rates.Ticker(m.ctx))
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.pages[m.active].Init()}
	if m.rates != nil {
		cmds = append(cmds, m.fetchRates)
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickerMsg:
		m.ticker = string(msg)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Theme):
			m.theme = m.theme.Toggle()
			m.styles = newStyles(m.theme)
			return m, nil
		case key.Matches(msg, keys.Next):
			return m.switchTo((m.active + 1) % len(m.pages))
		case key.Matches(msg, keys.Prev):
			return m.switchTo((m.active + len(m.pages) - 1) % len(m.pages))
		case msg.String() == "q" && !m.pages[m.active].Capturing():
			return m, tea.Quit
		}
	}
	// every other message belongs to the page that asked for it; pages ignore
	// messages they do not know, so broadcasting keeps async results flowing
	var cmds []tea.Cmd
	for i := range m.pages {
		if _, isKey := msg.(tea.KeyMsg); isKey && i != m.active {
			continue
		}
		var cmd tea.Cmd
		m.pages[i], cmd = m.pages[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) switchTo(i int) (tea.Model, tea.Cmd) {
	if i == m.active {
		return m, nil
	}
	m.active = i
	return m, m.pages[i].Init()
}

func (m appModel) header() string {
	var tabs []string
	for i, p := range m.pages {
		if i == m.active {
			tabs = append(tabs, m.styles.selected.Render(" "+p.Title()+" "))
		} else {
			tabs = append(tabs, m.styles.muted.Render(" "+p.Title()+" "))
		}
	}
	ticker := m.ticker
	if ticker == "" {
		ticker = "loading rates…"
	}
	mode := "☀"
	if m.theme.Name == ui.Dark {
		mode = "☾"
	}
	left := m.styles.title.Render("moneywise") + "  " + strings.Join(tabs, " ")
	right := m.styles.ticker.Render("💱 LIVE: "+ticker) + "  " + m.styles.muted.Render(mode)
	gap := m.width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return left + "\n" + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m appModel) View() string {
	w := m.width - 4
	p := m.pages[m.active]
	body := p.View(m.styles, w)
	bindings := append(p.Keys(), keys.Next, keys.Theme, keys.Quit)
	content := m.header() + "\n\n" + body + "\n\n" + m.help.ShortHelpView(bindings)
	return m.styles.panel(content)
}
