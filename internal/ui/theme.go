package ui

import "strings"

// Theme bundles palette + box borders for one of the two modes.
// All CLI helpers pull from `current`.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
}

const (
	Light = "light"
	Dark  = "dark"
)

var current = Named(Light)

// Named returns the dark theme for "dark" and the light one otherwise.
func Named(name string) Theme {
	if strings.ToLower(name) == Dark {
		return Theme{
			Name:  Dark,
			Title: "\033[1;96m", // bold bright cyan
			Muted: fgGray, Accent: "\033[95m",
			Success: "\033[92m", Error: "\033[91m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	}
	return Theme{
		Name:  Light,
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed,
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
	}
}

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t.Name == Dark {
		return Named(Light)
	}
	return Named(Dark)
}

// Glamour is the markdown style matching the theme.
func (t Theme) Glamour() string { return t.Name }

func SetTheme(name string) { current = Named(name) }

// Expose what renderers need
func Current() Theme { return current }
