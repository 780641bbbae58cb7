package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/kbtest/internal/tui/layout"
)

// Mode is the App's input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeRename
	ModeConfirmDelete
	ModeConfirmClear
	ModeJump
)

// Pane identifies which list has focus.
type Pane int

const (
	PaneProjects Pane = iota
	PaneSuites
)

// TargetKind says what a modal acts on.
type TargetKind int

const (
	TargetProject TargetKind = iota
	TargetSuite
)

func (k TargetKind) String() string {
	if k == TargetSuite {
		return "suite"
	}
	return "project"
}

// ModalState holds state for the rename and confirm modals.
type ModalState struct {
	NameInput  textinput.Model
	Kind       TargetKind
	TargetID   string
	TargetName string
	Error      string // validation message shown inside the modal
}

// NewModalState creates a new ModalState with an initialized input.
func NewModalState(cfg layout.LayoutConfig) ModalState {
	input := textinput.New()
	input.Placeholder = "Name"
	input.CharLimit = cfg.Input.NameCharLimit
	input.Width = cfg.Input.StandardWidth

	return ModalState{NameInput: input}
}

// Open prepares the modal for a target.
func (m *ModalState) Open(kind TargetKind, id, name string) {
	m.Reset()
	m.Kind = kind
	m.TargetID = id
	m.TargetName = name
}

// Reset clears the modal for a new session.
func (m *ModalState) Reset() {
	m.NameInput.Reset()
	m.NameInput.Blur()
	m.Kind = TargetProject
	m.TargetID = ""
	m.TargetName = ""
	m.Error = ""
}

// Cursors tracks the selected row in each pane.
type Cursors struct {
	Project int
	Suite   int
}

// clamp keeps both cursors inside their lists.
func (c *Cursors) clamp(projects, suites int) {
	c.Project = clampIndex(c.Project, projects)
	c.Suite = clampIndex(c.Suite, suites)
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
