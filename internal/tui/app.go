package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/kbtest/internal/config"
	"github.com/nikbrunner/kbtest/internal/model"
	"github.com/nikbrunner/kbtest/internal/picker"
	"github.com/nikbrunner/kbtest/internal/search"
	"github.com/nikbrunner/kbtest/internal/state"
	"github.com/nikbrunner/kbtest/internal/tui/layout"
)

// RefreshMsg makes the App re-read the store. Send it from a store
// subscription (in a goroutine, since listeners run inside Update) to pick up
// changes made outside the App.
type RefreshMsg struct{}

// loadedMsg reports the end of the initial load.
type loadedMsg struct {
	err error
}

// App is the main bubbletea model. It renders store snapshots and changes
// state only by dispatching actions.
type App struct {
	store        *state.Store
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	config       config.Config
	load         func(context.Context) error
	copyText     func(string) error
	now          func() time.Time
	logger       *slog.Logger

	snapshot state.State
	mode     Mode
	focus    Pane
	cursors  Cursors
	modal    ModalState
	picker   picker.Picker
	message  string

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store        *state.Store
	Config       *config.Config              // optional, uses defaults if nil
	Load         func(context.Context) error // optional, run once from Init
	Keys         *KeyMap                     // optional, uses default if nil
	Styles       *Styles                     // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig        // optional, uses default if nil
	Clipboard    func(string) error          // optional, uses the system clipboard
	Now          func() time.Time            // optional, uses time.Now
	Logger       *slog.Logger                // optional, discards if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	cfg := config.DefaultConfig()
	if params.Config != nil {
		cfg = *params.Config
	}

	copyText := params.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	now := params.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	app := App{
		store:        params.Store,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutCfg,
		config:       cfg,
		load:         params.Load,
		copyText:     copyText,
		now:          now,
		logger:       logger,
		modal:        NewModalState(layoutCfg),
		width:        80,
		height:       24,
	}

	app.refresh()
	return app
}

// WithDimensions returns a copy of the App sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Mode returns the current input mode.
func (a App) Mode() Mode { return a.mode }

// Focus returns the focused pane.
func (a App) Focus() Pane { return a.focus }

// Cursors returns the cursor position in each pane.
func (a App) Cursors() Cursors { return a.cursors }

// Snapshot returns the state the App last rendered from.
func (a App) Snapshot() state.State { return a.snapshot }

// Message returns the transient status message.
func (a App) Message() string { return a.message }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.load == nil {
		return nil
	}
	load := a.load
	return func() tea.Msg {
		return loadedMsg{err: load(context.Background())}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.mode == ModeJump {
			return a.updatePicker(msg)
		}
		return a, nil

	case RefreshMsg:
		a.refresh()
		return a, nil

	case loadedMsg:
		a.refresh()
		if msg.err != nil {
			a.logger.Warn("initial load failed", "error", msg.err)
		}
		return a, nil

	case picker.SelectedMsg:
		a.mode = ModeNormal
		a.jumpTo(msg.Result)
		return a, nil

	case picker.CancelledMsg:
		a.mode = ModeNormal
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeRename:
			return a.updateRename(msg)
		case ModeConfirmDelete, ModeConfirmClear:
			return a.updateConfirm(msg)
		case ModeJump:
			return a.updatePicker(msg)
		default:
			return a.updateNormal(msg)
		}
	}

	// Forward cursor blinks and the like to the active input.
	switch a.mode {
	case ModeJump:
		return a.updatePicker(msg)
	case ModeRename:
		var cmd tea.Cmd
		a.modal.NameInput, cmd = a.modal.NameInput.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.message = ""

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Dismiss):
		if a.snapshot.Error != nil {
			a.dispatch(state.ClearErrorAction())
		}

	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)

	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)

	case key.Matches(msg, a.keys.Top):
		a.setCursor(0)

	case key.Matches(msg, a.keys.Bottom):
		a.setCursor(a.focusedLen() - 1)

	case key.Matches(msg, a.keys.SwitchPane):
		if a.focus == PaneProjects {
			a.focus = PaneSuites
		} else {
			a.focus = PaneProjects
		}

	case key.Matches(msg, a.keys.Select):
		a.selectAtCursor()

	case key.Matches(msg, a.keys.NewProject):
		a.createProject()

	case key.Matches(msg, a.keys.NewSuite):
		a.createSuite()

	case key.Matches(msg, a.keys.Rename):
		return a.openRename()

	case key.Matches(msg, a.keys.Delete):
		a.openDelete()

	case key.Matches(msg, a.keys.ClearSuites):
		a.openClear()

	case key.Matches(msg, a.keys.YankID):
		a.yankID()

	case key.Matches(msg, a.keys.Jump):
		a.picker = picker.New(a.snapshot)
		m, _ := a.picker.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.picker = m.(picker.Picker)
		a.mode = ModeJump
		return a, a.picker.Init()
	}

	return a, nil
}

func (a App) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.closeModal()
		return a, nil

	case tea.KeyEnter:
		name := strings.TrimSpace(a.modal.NameInput.Value())
		if name == "" {
			a.modal.Error = "Name cannot be empty"
			return a, nil
		}
		a.applyRename(name)
		a.closeModal()
		return a, nil
	}

	var cmd tea.Cmd
	a.modal.NameInput, cmd = a.modal.NameInput.Update(msg)
	return a, cmd
}

func (a App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		if a.mode == ModeConfirmClear {
			a.clearSuites()
		} else {
			a.deleteTarget(a.modal.Kind, a.modal.TargetID, a.modal.TargetName)
		}
		a.closeModal()

	case key.Matches(msg, a.keys.Cancel):
		a.closeModal()
	}
	return a, nil
}

func (a App) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.picker.Update(msg)
	a.picker = m.(picker.Picker)
	return a, cmd
}

// dispatch sends an action to the store and re-reads the snapshot.
func (a *App) dispatch(action state.Action) {
	a.store.Dispatch(action)
	a.refresh()
}

func (a *App) refresh() {
	a.snapshot = a.store.State()
	a.cursors.clamp(len(a.snapshot.Projects), len(a.visibleSuites()))
}

// visibleSuites returns the current project's suites.
func (a App) visibleSuites() []model.Suite {
	if a.snapshot.CurrentProject == nil {
		return nil
	}
	return state.SuitesForProject(a.snapshot, a.snapshot.CurrentProject.ID)
}

func (a App) focusedLen() int {
	if a.focus == PaneSuites {
		return len(a.visibleSuites())
	}
	return len(a.snapshot.Projects)
}

func (a *App) moveCursor(delta int) {
	if a.focus == PaneSuites {
		a.setCursor(a.cursors.Suite + delta)
		return
	}
	a.setCursor(a.cursors.Project + delta)
}

func (a *App) setCursor(i int) {
	i = clampIndex(i, a.focusedLen())
	if a.focus == PaneSuites {
		a.cursors.Suite = i
		return
	}
	a.cursors.Project = i
}

func (a App) projectAtCursor() *model.Project {
	if a.cursors.Project < len(a.snapshot.Projects) {
		p := a.snapshot.Projects[a.cursors.Project]
		return &p
	}
	return nil
}

func (a App) suiteAtCursor() *model.Suite {
	suites := a.visibleSuites()
	if a.cursors.Suite < len(suites) {
		return &suites[a.cursors.Suite]
	}
	return nil
}

func (a *App) selectAtCursor() {
	if a.focus == PaneSuites {
		if su := a.suiteAtCursor(); su != nil {
			a.dispatch(state.SelectSuite(*su))
		}
		return
	}

	if p := a.projectAtCursor(); p != nil {
		a.selectProject(*p)
		a.focus = PaneSuites
	}
}

// selectProject makes p current. Switching projects drops the suite selection.
func (a *App) selectProject(p model.Project) {
	changed := a.snapshot.CurrentProject == nil || a.snapshot.CurrentProject.ID != p.ID
	a.dispatch(state.SelectProject(p))
	if changed {
		a.dispatch(state.SetCurrentSuite{Suite: nil})
		a.cursors.Suite = 0
	}
}

func (a *App) createProject() {
	p := model.NewProject(model.NewProjectParams{
		Name:        fmt.Sprintf("Project %d", len(a.snapshot.Projects)+1),
		Description: a.config.NewProjectDescription,
		Now:         a.now(),
	})
	a.dispatch(state.AddProject{Project: p})
	a.focus = PaneProjects
	a.cursors.Project = len(a.snapshot.Projects) - 1
	a.message = "Created " + p.Name
}

func (a *App) createSuite() {
	current := a.snapshot.CurrentProject
	if current == nil {
		a.message = "Select a project first"
		return
	}

	su := model.NewSuite(model.NewSuiteParams{
		ProjectID:   current.ID,
		Name:        fmt.Sprintf("Suite %d", state.SuiteCount(a.snapshot, current.ID)+1),
		Description: a.config.NewSuiteDescription,
		Now:         a.now(),
	})
	a.dispatch(state.AddSuite{Suite: su})
	a.focus = PaneSuites
	a.cursors.Suite = len(a.visibleSuites()) - 1
	a.message = "Created " + su.Name
}

func (a App) openRename() (tea.Model, tea.Cmd) {
	kind, id, name, ok := a.target()
	if !ok {
		return a, nil
	}

	a.modal.Open(kind, id, name)
	a.modal.NameInput.SetValue(name)
	a.modal.NameInput.Focus()
	a.mode = ModeRename
	return a, textinput.Blink
}

func (a *App) applyRename(name string) {
	switch a.modal.Kind {
	case TargetProject:
		p := state.ProjectByID(a.snapshot, a.modal.TargetID)
		if p == nil {
			return
		}
		updated := p.Touch(a.now())
		updated.Name = name
		a.dispatch(state.UpdateProject{Project: updated})
		if cur := a.snapshot.CurrentProject; cur != nil && cur.ID == updated.ID {
			a.dispatch(state.SelectProject(updated))
		}

	case TargetSuite:
		su := state.SuiteByID(a.snapshot, a.modal.TargetID)
		if su == nil {
			return
		}
		updated := su.Touch(a.now())
		updated.Name = name
		a.dispatch(state.UpdateSuite{Suite: updated})
		if cur := a.snapshot.CurrentSuite; cur != nil && cur.ID == updated.ID {
			a.dispatch(state.SelectSuite(updated))
		}
	}
	a.message = "Renamed to " + name
}

func (a *App) openDelete() {
	kind, id, name, ok := a.target()
	if !ok {
		return
	}
	if !a.config.ConfirmDelete {
		a.deleteTarget(kind, id, name)
		return
	}
	a.modal.Open(kind, id, name)
	a.mode = ModeConfirmDelete
}

func (a *App) deleteTarget(kind TargetKind, id, name string) {
	if kind == TargetSuite {
		a.dispatch(state.DeleteSuite{ID: id})
	} else {
		a.dispatch(state.DeleteProject{ID: id})
	}
	a.message = fmt.Sprintf("Deleted %s %q", kind, name)
}

func (a *App) openClear() {
	if len(a.snapshot.Suites) == 0 {
		a.message = "No suites to clear"
		return
	}
	if !a.config.ConfirmDelete {
		a.clearSuites()
		return
	}
	a.modal.Reset()
	a.mode = ModeConfirmClear
}

func (a *App) clearSuites() {
	a.dispatch(state.ClearSuites{})
	a.message = "Cleared all suites"
}

func (a *App) closeModal() {
	a.modal.Reset()
	a.mode = ModeNormal
}

// target returns the entity under the cursor in the focused pane.
func (a App) target() (kind TargetKind, id, name string, ok bool) {
	if a.focus == PaneSuites {
		if su := a.suiteAtCursor(); su != nil {
			return TargetSuite, su.ID, su.Name, true
		}
		return 0, "", "", false
	}
	if p := a.projectAtCursor(); p != nil {
		return TargetProject, p.ID, p.Name, true
	}
	return 0, "", "", false
}

func (a *App) yankID() {
	_, id, _, ok := a.target()
	if !ok {
		return
	}
	if err := a.copyText(id); err != nil {
		a.logger.Warn("clipboard write failed", "error", err)
		a.dispatch(state.SetErrorAction(fmt.Sprintf("Failed to copy ID: %v", err)))
		return
	}
	a.message = "Copied " + id
}

func (a *App) jumpTo(r search.Result) {
	projectID := ""
	switch {
	case r.Kind == search.KindProject:
		projectID = r.Project.ID
	case r.Suite != nil:
		projectID = r.Suite.ProjectID
	}

	p := state.ProjectByID(a.snapshot, projectID)
	if p == nil {
		a.message = "Project no longer exists"
		return
	}
	a.selectProject(*p)
	a.cursors.Project = max(slices.IndexFunc(a.snapshot.Projects, func(x model.Project) bool { return x.ID == p.ID }), 0)

	if r.Kind == search.KindProject {
		a.focus = PaneProjects
		return
	}

	su := state.SuiteByID(a.snapshot, r.Suite.ID)
	if su == nil {
		a.message = "Suite no longer exists"
		return
	}
	a.dispatch(state.SelectSuite(*su))
	a.focus = PaneSuites
	a.cursors.Suite = max(slices.IndexFunc(a.visibleSuites(), func(x model.Suite) bool { return x.ID == su.ID }), 0)
}
