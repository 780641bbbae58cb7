package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/kbtest/internal/model"
	"github.com/nikbrunner/kbtest/internal/state"
	"github.com/nikbrunner/kbtest/internal/tui/layout"
)

const (
	suiteDateFormat   = "Jan 2 15:04"
	projectDateFormat = "Jan 2, 2006"
)

// renderView creates the two-pane view, or the active modal.
func (a App) renderView() string {
	if a.mode != ModeNormal {
		return a.renderModal()
	}

	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	widths := layout.CalculatePaneWidths(a.width, a.layoutConfig.Pane)

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderProjectPane(widths.ProjectWidth, paneHeight),
		a.renderSuitePane(widths.SuiteWidth, paneHeight),
	)

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			a.styles.Header.Render("kbtest · UI test suites"),
			a.renderStatusLine(),
			columns,
			a.renderHelpBar(),
		),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderStatusLine shows loading, the store error, or the last message.
func (a App) renderStatusLine() string {
	var parts []string
	if a.snapshot.Loading {
		parts = append(parts, a.styles.Loading.Render("Loading..."))
	}
	if a.snapshot.Error != nil {
		parts = append(parts, a.styles.Error.Render("✗ "+*a.snapshot.Error))
	}
	if len(parts) == 0 && a.message != "" {
		parts = append(parts, a.styles.Message.Render(a.message))
	}
	return " " + strings.Join(parts, "  ")
}

func (a App) renderProjectPane(width, height int) string {
	var content strings.Builder

	content.WriteString(a.styles.Title.Render(fmt.Sprintf("Projects (%d)", len(a.snapshot.Projects))) + "\n\n")

	projects := a.snapshot.Projects
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	if len(projects) == 0 {
		content.WriteString(a.styles.Empty.Render("No projects yet. Create one!") + "\n")
		content.WriteString(a.styles.Empty.Render("Press n to add a project."))
	} else {
		visibleHeight := layout.CalculateVisibleHeight(height, 2)
		offset := layout.CalculateViewportOffset(a.cursors.Project, len(projects), visibleHeight)

		for i, p := range projects {
			if i < offset {
				continue
			}
			if i >= offset+visibleHeight {
				break
			}
			isCursor := a.focus == PaneProjects && i == a.cursors.Project
			content.WriteString(a.renderProjectRow(p, isCursor, itemWidth) + "\n")
		}
	}

	return a.paneStyle(PaneProjects).
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

func (a App) renderProjectRow(p model.Project, isCursor bool, maxWidth int) string {
	prefix := "  "
	if cur := a.snapshot.CurrentProject; cur != nil && cur.ID == p.ID {
		prefix = "* "
	}

	count := fmt.Sprintf(" %d", state.SuiteCount(a.snapshot, p.ID))
	name, _ := layout.TruncateWithPrefix(p.Name, maxWidth-len(count), prefix, a.layoutConfig.Text)
	line := layout.PadRight(name, maxWidth-len(count))

	if isCursor {
		return a.styles.ItemSelected.Render(line + count)
	}
	return a.styles.Item.Render(line + a.styles.Date.Render(count))
}

func (a App) renderSuitePane(width, height int) string {
	var content strings.Builder

	current := a.snapshot.CurrentProject
	if current == nil {
		content.WriteString(a.styles.Title.Render("Suites") + "\n\n")
		content.WriteString(a.styles.Empty.Render("Select a project to view suites"))
		return a.paneStyle(PaneSuites).
			Width(width).
			Height(height).
			Render(content.String())
	}

	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	suites := a.visibleSuites()

	// Project card
	name, _ := layout.TruncateText(current.Name, itemWidth, a.layoutConfig.Text)
	desc, _ := layout.TruncateText(current.Description, itemWidth, a.layoutConfig.Text)
	content.WriteString(a.styles.Title.Render(name) + "\n")
	content.WriteString(a.styles.Description.Render(desc) + "\n")
	content.WriteString(a.styles.Date.Render("Created "+current.CreatedAt.Format(projectDateFormat)) + "\n\n")
	content.WriteString(a.styles.Title.Render(fmt.Sprintf("Suites (%d)", len(suites))) + "\n")

	if len(suites) == 0 {
		content.WriteString(a.styles.Empty.Render("No suites yet. Press s to add one."))
	} else {
		visibleHeight := layout.CalculateVisibleHeight(height, a.layoutConfig.Pane.SuiteHeaderLines)
		offset := layout.CalculateViewportOffset(a.cursors.Suite, len(suites), visibleHeight)

		for i, su := range suites {
			if i < offset {
				continue
			}
			if i >= offset+visibleHeight {
				break
			}
			isCursor := a.focus == PaneSuites && i == a.cursors.Suite
			content.WriteString(a.renderSuiteRow(su, isCursor, itemWidth) + "\n")
		}
	}

	return a.paneStyle(PaneSuites).
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

func (a App) renderSuiteRow(su model.Suite, isCursor bool, maxWidth int) string {
	prefix := "  "
	if cur := a.snapshot.CurrentSuite; cur != nil && cur.ID == su.ID {
		prefix = "* "
	}

	date := su.CreatedAt.Format(suiteDateFormat)
	badge := fmt.Sprintf("%d%% Pass Rate", su.Stats.PassRate())

	// Drop the date before squeezing the name below a readable width.
	nameWidth := maxWidth - len(date) - len(badge) - 4
	if nameWidth < 8 {
		date = ""
		nameWidth = maxWidth - len(badge) - 2
	}

	name, _ := layout.TruncateWithPrefix(su.Name, nameWidth, prefix, a.layoutConfig.Text)
	name = layout.PadRight(name, nameWidth)

	if isCursor {
		return a.styles.ItemSelected.Render(joinNonEmpty(name, date, badge))
	}
	if date != "" {
		date = a.styles.Date.Render(date)
	}
	return a.styles.Item.Render(joinNonEmpty(name, date, a.badgeStyle(su.Stats).Render(badge)))
}

func (a App) badgeStyle(stats model.Stats) lipgloss.Style {
	switch {
	case stats.Passed+stats.Failed == 0:
		return a.styles.BadgeIdle
	case stats.PassRate() >= 80:
		return a.styles.BadgeGood
	default:
		return a.styles.BadgeBad
	}
}

func (a App) paneStyle(p Pane) lipgloss.Style {
	if a.focus == p {
		return a.styles.PaneActive
	}
	return a.styles.Pane
}

func (a App) renderHelpBar() string {
	return "\n" + a.renderHints(a.contextualHints())
}

// renderModal renders the active modal centered on screen.
func (a App) renderModal() string {
	var content strings.Builder
	percent := a.layoutConfig.Modal.DefaultWidthPercent

	switch a.mode {
	case ModeRename:
		content.WriteString(a.styles.Title.Render("Rename "+a.modal.Kind.String()) + "\n\n")
		content.WriteString("Name:\n")
		content.WriteString(a.modal.NameInput.View())
		if a.modal.Error != "" {
			content.WriteString("\n" + a.styles.Error.Render(a.modal.Error))
		}
		content.WriteString("\n\n")
		content.WriteString(a.renderHintsInline([]Hint{{Key: "Enter", Desc: "save"}, {Key: "Esc", Desc: "cancel"}}))

	case ModeConfirmDelete:
		content.WriteString(a.styles.Title.Render("Delete "+a.modal.Kind.String()+"?") + "\n\n")
		content.WriteString(fmt.Sprintf("%q", a.modal.TargetName))
		if a.modal.Kind == TargetProject {
			if n := state.SuiteCount(a.snapshot, a.modal.TargetID); n > 0 {
				content.WriteString(fmt.Sprintf("\nThis also removes %d suite(s).", n))
			}
		}
		content.WriteString("\n\n")
		content.WriteString(a.renderHintsInline([]Hint{{Key: "y", Desc: "confirm"}, {Key: "n", Desc: "cancel"}}))

	case ModeConfirmClear:
		content.WriteString(a.styles.Title.Render("Clear all suites?") + "\n\n")
		content.WriteString(fmt.Sprintf("Removes all %d suite(s).", len(a.snapshot.Suites)))
		content.WriteString("\n\n")
		content.WriteString(a.renderHintsInline([]Hint{{Key: "y", Desc: "confirm"}, {Key: "n", Desc: "cancel"}}))

	case ModeJump:
		percent = a.layoutConfig.Modal.LargeWidthPercent
		content.WriteString(a.picker.View())
	}

	modalWidth := layout.CalculateModalWidth(a.width, percent, a.layoutConfig.Modal)
	modal := a.styles.Modal.Width(modalWidth).Render(content.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "  ")
}
