// Package swatch renders conversion results as colored terminal blocks.
package swatch

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MeKo-Tech/colorconv/internal/converter"
)

// MinWidth is the narrowest swatch that still fits the longest label.
const MinWidth = len("#ffffff  rgb(255,255,255)") + 2

var baseStyle = lipgloss.NewStyle().
	Padding(1, 1).
	Bold(true)

// Label returns the text shown inside the swatch.
func Label(res converter.Result) string {
	if !res.Valid {
		return "invalid"
	}
	return string(res.Hex) + "  " + res.RGB.String()
}

// Render draws res as a block painted with its background and theme text color.
func Render(res converter.Result, width int) string {
	if width < MinWidth {
		width = MinWidth
	}
	return baseStyle.
		Width(width).
		Background(lipgloss.Color(res.Background)).
		Foreground(lipgloss.Color(res.TextColor)).
		Render(Label(res))
}
