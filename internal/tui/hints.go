package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "select")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint
	Edit   []Hint
	Action []Hint
	System []Hint
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar: "j/k:move tab:pane"
func (a App) renderHints(hints HintSet) string {
	all := hints.All()
	if len(all) == 0 {
		return ""
	}

	parts := make([]string, len(all))
	for i, h := range all {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "Enter save  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// contextualHints returns the hints for the current mode.
func (a App) contextualHints() HintSet {
	switch a.mode {
	case ModeNormal:
		return a.normalModeHints()
	case ModeRename:
		return HintSet{
			Action: []Hint{{Key: "Enter", Desc: "save"}},
			System: []Hint{{Key: "Esc", Desc: "cancel"}},
		}
	case ModeJump:
		return HintSet{
			Nav:    []Hint{{Key: "↑/↓", Desc: "move"}, {Key: "type", Desc: "search"}},
			Action: []Hint{{Key: "Enter", Desc: "jump"}},
			System: []Hint{{Key: "Esc", Desc: "cancel"}},
		}
	default:
		// Confirm modals carry their own hints.
		return HintSet{}
	}
}

func (a App) normalModeHints() HintSet {
	hints := HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "tab", Desc: "pane"},
		},
		Action: []Hint{
			{Key: "enter", Desc: "select"},
			{Key: "/", Desc: "jump"},
			{Key: "Y", Desc: "yank id"},
		},
		Edit: []Hint{
			{Key: "n", Desc: "project"},
		},
		System: []Hint{
			{Key: "q", Desc: "quit"},
		},
	}

	if a.snapshot.CurrentProject != nil {
		hints.Edit = append(hints.Edit, Hint{Key: "s", Desc: "suite"})
	}
	hints.Edit = append(hints.Edit,
		Hint{Key: "e", Desc: "rename"},
		Hint{Key: "d", Desc: "del"},
		Hint{Key: "x", Desc: "clear suites"},
	)
	if a.snapshot.Error != nil {
		hints.System = append([]Hint{{Key: "esc", Desc: "dismiss"}}, hints.System...)
	}
	return hints
}
