package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/idilsaglam/moneywise/internal/ui"
)

func (a *App) failf(format string, args ...any) { ui.FFail(a.Err, fmt.Sprintf(format, args...)) }

// renderMarkdown styles md for the terminal with the current theme.
// Rendering problems fall back to the raw markdown.
func renderMarkdown(md string, width int) string {
	style := ui.Current().Glamour()
	if ui.Plain() {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
