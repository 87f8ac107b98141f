package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/core"
)

// Theme contains the lipgloss styles of menus and the status bar.
type Theme struct {
	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style

	// Overlay styles
	OverlayTitle lipgloss.Style
	OverlayText  lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// NewTheme derives the styles from a palette.
func NewTheme(p config.Palette) Theme {
	accent := colorOr(p.Button, "226")
	text := colorOr(p.Text, "255")

	return Theme{
		HUDTitle:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(text),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		OverlayTitle: lipgloss.NewStyle().Foreground(accent).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(text),

		MenuTitle:       lipgloss.NewStyle().Foreground(colorOr(p.Shape, "51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// DefaultTheme returns the theme of the default palette.
func DefaultTheme() Theme {
	return NewTheme(config.DefaultPalette())
}

func colorOr(c core.Color, fallback string) lipgloss.Color {
	if c == core.ColorDefault {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(c)
}
