package picker

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/kbtest/internal/search"
	"github.com/nikbrunner/kbtest/internal/state"
	"github.com/nikbrunner/kbtest/internal/tui/layout"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Underline(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)
)

// SelectedMsg is sent when a result is chosen.
type SelectedMsg struct {
	Result search.Result
}

// CancelledMsg is sent when the picker is dismissed without a choice.
type CancelledMsg struct{}

// Picker is a jump-to overlay over projects and suites. Results are
// recomputed from a state snapshot whenever the query changes.
type Picker struct {
	snapshot  state.State
	input     textinput.Model
	results   []search.Result
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a Picker over the given snapshot with an empty query.
func New(snapshot state.State) Picker {
	input := textinput.New()
	input.Placeholder = "Jump to project or suite..."
	input.CharLimit = 100
	input.Width = 40
	input.Focus()

	return Picker{
		snapshot: snapshot,
		input:    input,
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, func() tea.Msg { return CancelledMsg{} }

		case tea.KeyEnter:
			result, ok := p.Selected()
			if !ok {
				return p, nil
			}
			p.selected = true
			return p, func() tea.Msg { return SelectedMsg{Result: result} }

		case tea.KeyDown, tea.KeyCtrlN:
			if p.cursor < len(p.results)-1 {
				p.cursor++
			}
			return p, nil

		case tea.KeyUp, tea.KeyCtrlP:
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		}
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.results = search.SearchAll(p.snapshot, p.input.Value())
		p.cursor = 0
	}
	return p, cmd
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Jump (%d results)", len(p.results))))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if p.input.Value() != "" && len(p.results) == 0 {
		b.WriteString(detailStyle.Render("No matches"))
		b.WriteString("\n")
	}

	start, end := layout.CalculateVisibleListItems(p.maxVisible(), p.cursor, len(p.results))
	for i := start; i < end; i++ {
		r := p.results[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		fmt.Fprintf(&b, "%s%s\n", cursor, highlight(r.Title(), r.MatchedIndexes, style))
		fmt.Fprintf(&b, "   %s\n", detailStyle.Render(detail(r)))
	}

	b.WriteString("\n")
	b.WriteString(detailStyle.Render("↑/↓: move  Enter: jump  Esc: cancel"))

	return b.String()
}

// maxVisible is how many two-line result rows fit below the header, input
// and footer.
func (p Picker) maxVisible() int {
	return max((p.height-8)/2, 1)
}

// Selected returns the result under the cursor.
func (p Picker) Selected() (search.Result, bool) {
	if p.cursor < len(p.results) {
		return p.results[p.cursor], true
	}
	return search.Result{}, false
}

// Query returns the current query text.
func (p Picker) Query() string {
	return p.input.Value()
}

// Results returns the current matches.
func (p Picker) Results() []search.Result {
	return p.results
}

// Cancelled returns true if the user dismissed the picker.
func (p Picker) Cancelled() bool {
	return p.cancelled
}

func detail(r search.Result) string {
	if r.Kind == search.KindProject {
		return "project"
	}
	if r.Project == nil {
		return "suite (no project)"
	}
	return "suite in " + r.Project.Name
}

func highlight(title string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(title)
	}
	var b strings.Builder
	for i, r := range title {
		if slices.Contains(matched, i) {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
