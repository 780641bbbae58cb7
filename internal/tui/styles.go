package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Header       lipgloss.Style
	Pane         lipgloss.Style
	PaneActive   lipgloss.Style
	Modal        lipgloss.Style
	Title        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Description  lipgloss.Style
	Date         lipgloss.Style
	BadgeGood    lipgloss.Style // pass rate at or above 80%
	BadgeBad     lipgloss.Style
	BadgeIdle    lipgloss.Style // no results yet
	Loading      lipgloss.Style
	Error        lipgloss.Style
	Message      lipgloss.Style
	Empty        lipgloss.Style
	HintKey      lipgloss.Style
	HintDesc     lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}
	danger := lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}
	good := lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			PaddingLeft(1),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),

		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Description: lipgloss.NewStyle().
			Foreground(primary).
			Italic(true),

		Date: lipgloss.NewStyle().
			Foreground(subtle),

		BadgeGood: lipgloss.NewStyle().
			Foreground(good),

		BadgeBad: lipgloss.NewStyle().
			Foreground(danger),

		BadgeIdle: lipgloss.NewStyle().
			Foreground(subtle),

		Loading: lipgloss.NewStyle().
			Foreground(accent).
			Italic(true),

		Error: lipgloss.NewStyle().
			Foreground(danger).
			Bold(true),

		Message: lipgloss.NewStyle().
			Foreground(accent),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
