package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + header (1) + status line (1) + pane borders (2) + help bar (2) = 7
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// WidthOffset is subtracted before splitting the width between the
	// project and suite panes. Accounts for app padding and pane borders.
	WidthOffset int

	// ProjectPercent is the project pane's share of the available width.
	ProjectPercent int

	// MinProjectWidth and MinSuiteWidth bound each pane from below.
	MinProjectWidth int
	MinSuiteWidth   int

	// ContentPadding is subtracted from pane width for item rendering.
	ContentPadding int

	// SuiteHeaderLines accounts for the project card above the suite list.
	SuiteHeaderLines int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// LargeWidthPercent is used by the jump overlay.
	LargeWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	NameCharLimit int
	StandardWidth int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:  7,
			MinHeight:        5,
			WidthOffset:      8, // app padding (4) + two bordered panes (4)
			ProjectPercent:   40,
			MinProjectWidth:  20,
			MinSuiteWidth:    30,
			ContentPadding:   4,
			SuiteHeaderLines: 5, // name, description, created, blank, suites header
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 40,
			LargeWidthPercent:   60,
			MinWidth:            40,
			MaxWidth:            80,
		},
		Input: InputConfig{
			NameCharLimit: 100,
			StandardWidth: 40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
