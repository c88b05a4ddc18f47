// Package chart draws doughnut charts as coloured text.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Slice is one labelled share of a chart.
type Slice struct {
	Label string
	Value float64
	Color string // hex, e.g. "#0984e3"
}

// Doughnut is a chart of proportional slices.
type Doughnut struct {
	Title  string
	Slices []Slice
}

// New builds a doughnut from parallel label/value/color lists.
func New(title string, labels []string, values []float64, colors []string) (*Doughnut, error) {
	if len(labels) != len(values) || len(labels) != len(colors) {
		return nil, fmt.Errorf("chart %q: %d labels, %d values, %d colors", title, len(labels), len(values), len(colors))
	}
	d := &Doughnut{Title: title}
	for i := range labels {
		d.Slices = append(d.Slices, Slice{Label: labels[i], Value: values[i], Color: colors[i]})
	}
	return d, nil
}

// Total sums all slice values.
func (d *Doughnut) Total() float64 {
	var t float64
	for _, s := range d.Slices {
		t += s.Value
	}
	return t
}

// Values returns the slice values in order.
func (d *Doughnut) Values() []float64 {
	out := make([]float64, len(d.Slices))
	for i, s := range d.Slices {
		out[i] = s.Value
	}
	return out
}

// Shares returns each slice as a percentage of the positive values. A
// negative slice, such as a loss, has no share.
func (d *Doughnut) Shares() []float64 {
	out := make([]float64, len(d.Slices))
	var total float64
	for _, s := range d.Slices {
		if s.Value > 0 {
			total += s.Value
		}
	}
	if total == 0 {
		return out
	}
	for i, s := range d.Slices {
		if s.Value > 0 {
			out[i] = s.Value / total * 100
		}
	}
	return out
}

// Render draws the ring as one bar of the given width followed by a legend.
func (d *Doughnut) Render(width int) string {
	if width < 10 {
		width = 10
	}
	shares := d.Shares()
	cells := apportion(shares, width)

	var bar strings.Builder
	for i, s := range d.Slices {
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
		bar.WriteString(st.Render(strings.Repeat("█", cells[i])))
	}

	var lines []string
	if d.Title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(d.Title))
	}
	lines = append(lines, bar.String())
	for i, s := range d.Slices {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("●")
		lines = append(lines, fmt.Sprintf("%s %s %5.1f%%", dot, s.Label, shares[i]))
	}
	return strings.Join(lines, "\n")
}

// apportion splits width cells by percentage, largest remainders first, so
// the cells always add up to width when any share is positive.
func apportion(shares []float64, width int) []int {
	cells := make([]int, len(shares))
	rem := make([]float64, len(shares))
	used := 0
	for i, p := range shares {
		exact := p / 100 * float64(width)
		if exact < 0 || math.IsNaN(exact) {
			exact = 0
		}
		cells[i] = int(exact)
		rem[i] = exact - float64(cells[i])
		used += cells[i]
	}
	if used == 0 {
		return cells
	}
	for used < width {
		best := 0
		for i := range rem {
			if rem[i] > rem[best] {
				best = i
			}
		}
		cells[best]++
		rem[best] = -1
		used++
	}
	return cells
}

// Canvas holds the chart currently shown in one place on a page.
type Canvas struct {
	current *Doughnut
	drawn   int
}

// Replace discards the current chart and shows d instead.
func (c *Canvas) Replace(d *Doughnut) {
	c.current = d
	c.drawn++
}

// Current is the chart on display, nil before the first Replace.
func (c *Canvas) Current() *Doughnut { return c.current }

// Drawn counts how many charts this canvas has shown.
func (c *Canvas) Drawn() int { return c.drawn }

// View renders the current chart, or nothing.
func (c *Canvas) View(width int) string {
	if c.current == nil {
		return ""
	}
	return c.current.Render(width)
}
