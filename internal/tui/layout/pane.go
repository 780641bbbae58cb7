package layout

// PaneLayout holds calculated pane widths.
type PaneLayout struct {
	ProjectWidth int
	SuiteWidth   int
}

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculatePaneWidths splits the terminal width between the project pane
// and the suite pane. The suite pane takes whatever the project pane leaves.
func CalculatePaneWidths(terminalWidth int, cfg PaneConfig) PaneLayout {
	available := terminalWidth - cfg.WidthOffset

	project := available * cfg.ProjectPercent / 100
	if project < cfg.MinProjectWidth {
		project = cfg.MinProjectWidth
	}

	suite := available - project
	if suite < cfg.MinSuiteWidth {
		suite = cfg.MinSuiteWidth
	}

	return PaneLayout{ProjectWidth: project, SuiteWidth: suite}
}

// CalculateItemWidth computes the width available for item content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	return paneWidth - cfg.ContentPadding
}

// CalculateVisibleHeight computes the visible item count in a pane.
func CalculateVisibleHeight(paneHeight, headerLines int) int {
	height := paneHeight - headerLines
	if height < 1 {
		return 1
	}
	return height
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := max(selected-viewportHeight/2, 0)
	return min(offset, total-viewportHeight)
}
