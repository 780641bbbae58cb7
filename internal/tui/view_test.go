package tui_test

import (
	"testing"

	"github.com/nikbrunner/kbtest/internal/state"
	"github.com/nikbrunner/kbtest/internal/tui"
	"github.com/nikbrunner/kbtest/internal/tui/layout"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func render(app tui.App) string {
	return layout.StripANSI(app.View())
}

func TestView_EmptyState(t *testing.T) {
	app, _ := newApp(t, state.InitialState())

	out := render(app)

	assert.Assert(t, is.Contains(out, "Projects (0)"))
	assert.Assert(t, is.Contains(out, "No projects yet. Create one!"))
	assert.Assert(t, is.Contains(out, "Select a project to view suites"))
	assert.Assert(t, is.Contains(out, "n:project"))
	assert.Assert(t, !contains(out, "s:suite"), "suite hint needs a current project")
}

func TestView_ProjectCardAndSuites(t *testing.T) {
	app, _ := newApp(t, testState())
	app = press(t, app, "enter")

	out := render(app)

	assert.Assert(t, is.Contains(out, "* Checkout"))
	assert.Assert(t, is.Contains(out, "Cart and payment flows"))
	assert.Assert(t, is.Contains(out, "Created Jan 1, 2024"))
	assert.Assert(t, is.Contains(out, "Suites (2)"))
	assert.Assert(t, is.Contains(out, "Payment Smoke"))
	assert.Assert(t, is.Contains(out, "Jan 1 00:00"))
	assert.Assert(t, is.Contains(out, "75% Pass Rate"))
	assert.Assert(t, is.Contains(out, "0% Pass Rate"))
	assert.Assert(t, !contains(out, "Password Reset"), "suites of other projects are hidden")
}

func TestView_ProjectWithoutSuites(t *testing.T) {
	s := testState()
	s.Suites = nil
	app, _ := newApp(t, s)
	app = press(t, app, "enter")

	assert.Assert(t, is.Contains(render(app), "No suites yet. Press s to add one."))
}

func TestView_LoadingAndError(t *testing.T) {
	s := state.InitialState()
	s.Loading = true
	msg := "Failed to load projects: not implemented"
	s.Error = &msg
	app, _ := newApp(t, s)

	out := render(app)

	assert.Assert(t, is.Contains(out, "Loading..."))
	assert.Assert(t, is.Contains(out, "✗ Failed to load projects: not implemented"))
	assert.Assert(t, is.Contains(out, "esc:dismiss"))
}

func TestView_MessageLine(t *testing.T) {
	app, _ := newApp(t, state.InitialState())
	app = press(t, app, "n")

	assert.Assert(t, is.Contains(render(app), "Created Project 1"))
}

func TestView_RenameModal(t *testing.T) {
	app, _ := newApp(t, testState())
	app = press(t, app, "e")

	out := render(app)
	assert.Assert(t, is.Contains(out, "Rename project"))
	assert.Assert(t, is.Contains(out, "Checkout"))

	app = press(t, app, "ctrl+u", "enter")
	assert.Assert(t, is.Contains(render(app), "Name cannot be empty"))
}

func TestView_ConfirmDeleteModal(t *testing.T) {
	app, _ := newApp(t, testState())
	app = press(t, app, "d")

	out := render(app)
	assert.Assert(t, is.Contains(out, "Delete project?"))
	assert.Assert(t, is.Contains(out, `"Checkout"`))
	assert.Assert(t, is.Contains(out, "This also removes 2 suite(s)."))
}

func TestView_ConfirmClearModal(t *testing.T) {
	app, _ := newApp(t, testState())
	app = press(t, app, "x")

	assert.Assert(t, is.Contains(render(app), "Removes all 3 suite(s)."))
}

func TestView_JumpOverlay(t *testing.T) {
	app, _ := newApp(t, testState())
	app = press(t, app, "/", "login")

	out := render(app)
	assert.Assert(t, is.Contains(out, "Jump (1 results)"))
	assert.Assert(t, is.Contains(out, "project"))
}

func TestView_Dimensions(t *testing.T) {
	app, _ := newApp(t, testState())

	lines := 0
	for _, r := range render(app) {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, lines+1, 30)
}

func contains(s, sub string) bool {
	return is.Contains(s, sub)().Success()
}
