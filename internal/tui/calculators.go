package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/moneywise/internal/calc"
	"github.com/idilsaglam/moneywise/internal/chart"
	"github.com/idilsaglam/moneywise/internal/config"
	"github.com/idilsaglam/moneywise/internal/inr"
)

// field indexes into calcPage.inputs.
const (
	fieldSIPAmount = iota
	fieldSIPRate
	fieldSIPYears
	fieldLoanP
	fieldLoanR
	fieldLoanN
	fieldIncome
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Monthly investment (₹)", "Expected return (% p.a.)", "Years",
	"Loan amount (₹)", "Interest rate (% p.a.)", "Tenure (months)",
	"Annual income (₹)",
}

var (
	calcUp      = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "field"))
	calcDown    = key.NewBinding(key.WithKeys("down"))
	calcCompute = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate"))
)

type calcPage struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	regimes []calc.Regime

	sipResult string
	canvas    *chart.Canvas
	emiResult string
	tax       *calc.Comparison
}

func fmtDefault(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func newCalcPage(c *config.Config) *calcPage {
	p := &calcPage{regimes: c.Tax.Regimes, canvas: &chart.Canvas{}}
	d := c.Calculators
	defaults := [fieldCount]float64{
		d.SIP.Amount, d.SIP.Rate, d.SIP.Years,
		d.EMI.Principal, d.EMI.Rate, d.EMI.Months,
		d.Income,
	}
	for i := range p.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 16
		ti.Width = 14
		if defaults[i] != 0 {
			ti.SetValue(fmtDefault(defaults[i]))
		}
		p.inputs[i] = ti
	}
	p.inputs[0].Focus()
	// first paint shows the defaults already computed
	p.calculateSIP()
	p.calculateEMI()
	return p
}

func (p *calcPage) Title() string   { return "Calculators" }
func (p *calcPage) Init() tea.Cmd   { return textinput.Blink }
func (p *calcPage) Capturing() bool { return true }
func (p *calcPage) Keys() []key.Binding {
	return []key.Binding{calcUp, calcCompute}
}

func (p *calcPage) value(f int) float64 { return calc.Parse(p.inputs[f].Value()) }

// calculateSIP leaves the previous result and chart alone on bad input.
func (p *calcPage) calculateSIP() {
	sip, ok := calc.ProjectSIP(p.value(fieldSIPAmount), p.value(fieldSIPRate), p.value(fieldSIPYears))
	if !ok {
		return
	}
	p.sipResult = inr.Rounded(sip.FutureValue)
	p.canvas.Replace(chart.SIPSplit(sip.Invested, sip.Profit))
}

func (p *calcPage) calculateEMI() {
	emi, ok := calc.EMI(p.value(fieldLoanP), p.value(fieldLoanR), p.value(fieldLoanN))
	if !ok {
		return
	}
	p.emiResult = inr.Rounded(emi)
}

func (p *calcPage) compareTax() {
	c := calc.CompareTax(p.value(fieldIncome), p.regimes)
	p.tax = &c
}

func (p *calcPage) setFocus(i int) {
	p.inputs[p.focus].Blur()
	p.focus = (i + fieldCount) % fieldCount
	p.inputs[p.focus].Focus()
}

func (p *calcPage) Update(msg tea.Msg) (page, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, calcUp):
			p.setFocus(p.focus - 1)
			return p, nil
		case key.Matches(k, calcDown):
			p.setFocus(p.focus + 1)
			return p, nil
		case key.Matches(k, calcCompute):
			switch {
			case p.focus <= fieldSIPYears:
				p.calculateSIP()
			case p.focus <= fieldLoanN:
				p.calculateEMI()
			default:
				p.compareTax()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p *calcPage) fields(st styles, from, to int) string {
	var lines []string
	for i := from; i <= to; i++ {
		marker := "  "
		if i == p.focus {
			marker = st.accent.Render("> ")
		}
		lines = append(lines, marker+st.muted.Render(padRight(fieldLabels[i], 26))+p.inputs[i].View())
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func (p *calcPage) View(st styles, width int) string {
	col := width/2 - 2
	if col < 36 {
		col = width
	}
	box := lipgloss.NewStyle().Width(col)

	sip := []string{st.title.Render("SIP Calculator"), p.fields(st, fieldSIPAmount, fieldSIPYears), ""}
	if p.sipResult != "" {
		sip = append(sip, "Total value  "+st.result.Render(p.sipResult), "", p.canvas.View(col-4))
	}

	emi := []string{st.title.Render("EMI Calculator"), p.fields(st, fieldLoanP, fieldLoanN), ""}
	if p.emiResult != "" {
		emi = append(emi, "Monthly EMI  "+st.result.Render(p.emiResult))
	}

	tax := []string{"", st.title.Render("Tax Comparison"), p.fields(st, fieldIncome, fieldIncome), ""}
	if p.tax != nil {
		var cells []string
		for i, t := range p.tax.Taxes {
			fig := st.result.Render(inr.Rounded(t.Tax))
			if i == len(p.tax.Taxes)-1 {
				fig = st.success.Bold(true).Render(inr.Rounded(t.Tax))
			}
			cells = append(cells, lipgloss.NewStyle().Width(22).Render(st.muted.Render(t.Regime)+"\n"+fig))
		}
		tax = append(tax, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	left := box.Render(strings.Join(sip, "\n"))
	right := box.Render(strings.Join(append(emi, tax...), "\n"))
	if col == width {
		return left + "\n\n" + right
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}
