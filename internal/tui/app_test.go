package tui_test

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/kbtest/internal/bridge"
	"github.com/nikbrunner/kbtest/internal/config"
	"github.com/nikbrunner/kbtest/internal/model"
	"github.com/nikbrunner/kbtest/internal/state"
	"github.com/nikbrunner/kbtest/internal/tui"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

var (
	created = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later   = time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
)

// testState has two projects; p1 owns two suites, p2 one.
func testState() state.State {
	s := state.InitialState()
	s.Projects = []model.Project{
		{ID: "p1", Name: "Checkout", Description: "Cart and payment flows", CreatedAt: created, UpdatedAt: created},
		{ID: "p2", Name: "Login", Description: "Auth flows", CreatedAt: created, UpdatedAt: created},
	}
	s.Suites = []model.Suite{
		{ID: "s1", ProjectID: "p1", Name: "Payment Smoke", CreatedAt: created, UpdatedAt: created,
			Stats: model.Stats{Passed: 3, Failed: 1, TotalTests: 4}},
		{ID: "s2", ProjectID: "p1", Name: "Cart Regression", CreatedAt: created, UpdatedAt: created},
		{ID: "s3", ProjectID: "p2", Name: "Password Reset", CreatedAt: created, UpdatedAt: created},
	}
	return s
}

type harness struct {
	store  *state.Store
	copied []string
}

func newApp(t *testing.T, s state.State, mutate ...func(*tui.AppParams)) (tui.App, *harness) {
	t.Helper()
	h := &harness{store: state.NewStore(state.WithInitialState(s))}
	params := tui.AppParams{
		Store: h.store,
		Now:   func() time.Time { return later },
		Clipboard: func(text string) error {
			h.copied = append(h.copied, text)
			return nil
		},
	}
	for _, m := range mutate {
		m(&params)
	}
	return tui.NewApp(params).WithDimensions(100, 30), h
}

func press(t *testing.T, app tui.App, keys ...string) tui.App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "ctrl+u":
			msg = tea.KeyMsg{Type: tea.KeyCtrlU}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := app.Update(msg)
		app = updated.(tui.App)
	}
	return app
}

func TestApp_Navigation_JK(t *testing.T) {
	app, _ := newApp(t, testState())

	assert.Equal(t, app.Cursors().Project, 0)

	app = press(t, app, "j")
	assert.Equal(t, app.Cursors().Project, 1)

	// j at bottom stays at bottom
	app = press(t, app, "j")
	assert.Equal(t, app.Cursors().Project, 1)

	app = press(t, app, "k", "k")
	assert.Equal(t, app.Cursors().Project, 0)

	app = press(t, app, "G")
	assert.Equal(t, app.Cursors().Project, 1)
	app = press(t, app, "g")
	assert.Equal(t, app.Cursors().Project, 0)
}

func TestApp_SelectProject(t *testing.T) {
	app, h := newApp(t, testState())

	app = press(t, app, "enter")

	s := h.store.State()
	assert.Assert(t, s.CurrentProject != nil)
	assert.Equal(t, s.CurrentProject.ID, "p1")
	assert.Assert(t, is.Nil(s.CurrentSuite))
	assert.Equal(t, app.Focus(), tui.PaneSuites)
}

func TestApp_SwitchingProjectClearsSuite(t *testing.T) {
	app, h := newApp(t, testState())

	// select p1, then suite s2
	app = press(t, app, "enter", "j", "enter")
	assert.Equal(t, h.store.State().CurrentSuite.ID, "s2")

	// back to projects, select p2
	app = press(t, app, "tab", "j", "enter")

	s := h.store.State()
	assert.Equal(t, s.CurrentProject.ID, "p2")
	assert.Assert(t, is.Nil(s.CurrentSuite))
	assert.Equal(t, app.Cursors().Suite, 0)
}

func TestApp_ReselectingProjectKeepsSuite(t *testing.T) {
	app, h := newApp(t, testState())

	app = press(t, app, "enter", "enter", "tab", "enter")

	s := h.store.State()
	assert.Equal(t, s.CurrentProject.ID, "p1")
	assert.Equal(t, s.CurrentSuite.ID, "s1")
	assert.Equal(t, app.Focus(), tui.PaneSuites)
}

func TestApp_CreateProject(t *testing.T) {
	app, h := newApp(t, state.InitialState())

	app = press(t, app, "n", "n")

	s := h.store.State()
	assert.Equal(t, len(s.Projects), 2)
	assert.Equal(t, s.Projects[0].Name, "Project 1")
	assert.Equal(t, s.Projects[1].Name, "Project 2")
	assert.Equal(t, s.Projects[1].Description, "A new test project")
	assert.Assert(t, s.Projects[0].ID != s.Projects[1].ID)
	assert.Assert(t, s.Projects[0].CreatedAt.Equal(later))
	assert.Equal(t, app.Cursors().Project, 1)
	assert.Equal(t, app.Message(), "Created Project 2")
}

func TestApp_CreateProject_UsesConfiguredDescription(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NewProjectDescription = "Smoke tests"
	app, h := newApp(t, state.InitialState(), func(p *tui.AppParams) { p.Config = &cfg })

	press(t, app, "n")

	assert.Equal(t, h.store.State().Projects[0].Description, "Smoke tests")
}

func TestApp_CreateSuite(t *testing.T) {
	app, h := newApp(t, testState())

	// No current project yet
	app = press(t, app, "s")
	assert.Equal(t, len(h.store.State().Suites), 3)
	assert.Equal(t, app.Message(), "Select a project first")

	app = press(t, app, "enter", "s")

	s := h.store.State()
	assert.Equal(t, len(s.Suites), 4)
	added := s.Suites[3]
	assert.Equal(t, added.Name, "Suite 3") // p1 already has two suites
	assert.Equal(t, added.ProjectID, "p1")
	assert.Equal(t, added.Description, "A new test suite")
	assert.Equal(t, app.Cursors().Suite, 2)
}

func TestApp_RenameProject(t *testing.T) {
	app, h := newApp(t, testState())

	app = press(t, app, "enter", "tab", "e")
	assert.Equal(t, app.Mode(), tui.ModeRename)

	app = press(t, app, "ctrl+u", "Storefront", "enter")
	assert.Equal(t, app.Mode(), tui.ModeNormal)

	s := h.store.State()
	assert.Equal(t, s.Projects[0].Name, "Storefront")
	assert.Assert(t, s.Projects[0].UpdatedAt.Equal(later))
	assert.Assert(t, s.Projects[0].CreatedAt.Equal(created))
	assert.Equal(t, s.CurrentProject.Name, "Storefront")
}

func TestApp_RenameSuite(t *testing.T) {
	app, h := newApp(t, testState())

	app = press(t, app, "enter", "e", "ctrl+u", "Payments", "enter")

	s := h.store.State()
	assert.Equal(t, s.Suites[0].Name, "Payments")
	assert.Assert(t, s.Suites[0].UpdatedAt.Equal(later))
	assert.Equal(t, app.Mode(), tui.ModeNormal)
}

func TestApp_RenameRejectsBlankName(t *testing.T) {
	app, h := newApp(t, testState())

	app = press(t, app, "e", "ctrl+u", "enter")

	assert.Equal(t, app.Mode(), tui.ModeRename)
	assert.Equal(t, h.store.State().Projects[0].Name, "Checkout")

	app = press(t, app, "esc")
	assert.Equal(t, app.Mode(), tui.ModeNormal)
}

func TestApp_DeleteProject_Confirmed(t *testing.T) {
	app, h := newApp(t, testState())

	app = press(t, app, "enter", "tab", "d")
	assert.Equal(t, app.Mode(), tui.ModeConfirmDelete)

	app = press(t, app, "y")
	assert.Equal(t, app.Mode(), tui.ModeNormal)

	s := h.store.State()
	assert.Equal(t, len(s.Projects), 1)
	assert.Equal(t, s.Projects[0].ID, "p2")
	assert.Equal(t, len(s.Suites), 1)
	assert.Assert(t, is.Nil(s.CurrentProject))
}

func TestApp_DeleteProject_Cancelled(t *testing.T) {
	app, h := newApp(t, testState())

	app = press(t, app, "d", "n")

	assert.Equal(t, app.Mode(), tui.ModeNormal)
	assert.Equal(t, len(h.store.State().Projects), 2)
}

func TestApp_DeleteSuite_WithoutConfirm(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ConfirmDelete = false
	app, h := newApp(t, testState(), func(p *tui.AppParams) { p.Config = &cfg })

	app = press(t, app, "enter", "enter", "d")

	s := h.store.State()
	assert.Equal(t, app.Mode(), tui.ModeNormal)
	assert.Equal(t, len(s.Suites), 2)
	assert.Assert(t, is.Nil(s.CurrentSuite))
}

func TestApp_ClearSuites(t *testing.T) {
	app, h := newApp(t, testState())

	app = press(t, app, "enter", "enter", "x")
	assert.Equal(t, app.Mode(), tui.ModeConfirmClear)

	app = press(t, app, "y")

	s := h.store.State()
	assert.Equal(t, len(s.Suites), 0)
	assert.Assert(t, is.Nil(s.CurrentSuite))
	assert.Equal(t, s.CurrentProject.ID, "p1")

	app = press(t, app, "x")
	assert.Equal(t, app.Mode(), tui.ModeNormal)
	assert.Equal(t, app.Message(), "No suites to clear")
}

func TestApp_YankID(t *testing.T) {
	app, h := newApp(t, testState())

	app = press(t, app, "j", "Y")

	assert.DeepEqual(t, h.copied, []string{"p2"})
	assert.Equal(t, app.Message(), "Copied p2")
}

func TestApp_YankID_FailureSetsError(t *testing.T) {
	app, h := newApp(t, testState(), func(p *tui.AppParams) {
		p.Clipboard = func(string) error { return errors.New("no clipboard utility") }
	})

	app = press(t, app, "Y")
	assert.Equal(t, h.store.State().ErrorMessage(), "Failed to copy ID: no clipboard utility")

	// esc dismisses the error
	app = press(t, app, "esc")
	assert.Assert(t, is.Nil(h.store.State().Error))
	assert.Assert(t, is.Nil(app.Snapshot().Error))
}

func TestApp_JumpToSuite(t *testing.T) {
	app, h := newApp(t, testState())

	app = press(t, app, "/")
	assert.Equal(t, app.Mode(), tui.ModeJump)

	app = press(t, app, "password")
	updated, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = updated.(tui.App)
	assert.Assert(t, cmd != nil)

	updated, _ = app.Update(cmd())
	app = updated.(tui.App)

	s := h.store.State()
	assert.Equal(t, app.Mode(), tui.ModeNormal)
	assert.Equal(t, s.CurrentProject.ID, "p2")
	assert.Equal(t, s.CurrentSuite.ID, "s3")
	assert.Equal(t, app.Focus(), tui.PaneSuites)
	assert.Equal(t, app.Cursors().Project, 1)
}

func TestApp_JumpCancelled(t *testing.T) {
	app, h := newApp(t, testState())

	app = press(t, app, "/")
	updated, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = updated.(tui.App)
	updated, _ = app.Update(cmd())
	app = updated.(tui.App)

	assert.Equal(t, app.Mode(), tui.ModeNormal)
	assert.Assert(t, is.Nil(h.store.State().CurrentProject))
}

func TestApp_RefreshPicksUpExternalDispatch(t *testing.T) {
	app, h := newApp(t, testState())
	app = press(t, app, "j")

	h.store.Dispatch(state.DeleteProject{ID: "p2"})
	assert.Equal(t, len(app.Snapshot().Projects), 2, "snapshot is stale until refreshed")

	updated, _ := app.Update(tui.RefreshMsg{})
	app = updated.(tui.App)

	assert.Equal(t, len(app.Snapshot().Projects), 1)
	assert.Equal(t, app.Cursors().Project, 0)
}

func TestApp_InitLoadsThroughController(t *testing.T) {
	store := state.NewStore()
	controller := bridge.NewController(bridge.Nop{}, store, nil)
	app := tui.NewApp(tui.AppParams{Store: store, Load: controller.LoadProjects})

	cmd := app.Init()
	assert.Assert(t, cmd != nil)

	updated, _ := app.Update(cmd())
	app = updated.(tui.App)

	assert.Assert(t, is.Contains(app.Snapshot().ErrorMessage(), "Failed to load projects"))
	assert.Assert(t, !app.Snapshot().Loading)
}

func TestApp_InitWithoutLoader(t *testing.T) {
	app, _ := newApp(t, testState())
	assert.Assert(t, app.Init() == nil)
}

func TestApp_Quit(t *testing.T) {
	app, _ := newApp(t, testState())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.Assert(t, cmd != nil)
	_, ok := cmd().(tea.QuitMsg)
	assert.Assert(t, ok)
}
