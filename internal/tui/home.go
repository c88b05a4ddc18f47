package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/moneywise/internal/chart"
)

type homePage struct {
	budget *chart.Doughnut
}

func newHomePage() *homePage { return &homePage{budget: chart.HomeBudget()} }

func (p *homePage) Title() string                      { return "Home" }
func (p *homePage) Init() tea.Cmd                      { return nil }
func (p *homePage) Capturing() bool                    { return false }
func (p *homePage) Keys() []key.Binding                { return nil }
func (p *homePage) Update(msg tea.Msg) (page, tea.Cmd) { return p, nil }

func (p *homePage) View(st styles, width int) string {
	w := width - 2
	if w > 60 {
		w = 60
	}
	return st.title.Render("Budget at a glance") + "\n" +
		st.muted.Render("Relative share of spending by head") + "\n\n" +
		p.budget.Render(w)
}
