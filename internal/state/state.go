// Package state holds the canonical project/suite state and the pure reducer
// that is the only place it changes.
package state

import (
	"slices"

	"github.com/nikbrunner/kbtest/internal/model"
)

// State is the complete store value. Consumers receive clones and must not
// assume edits to a clone reach the store.
type State struct {
	Projects       []model.Project `json:"projects" yaml:"projects"`
	Suites         []model.Suite   `json:"suites" yaml:"suites"`
	CurrentProject *model.Project  `json:"currentProject" yaml:"currentProject"` // snapshot, not a live reference
	CurrentSuite   *model.Suite    `json:"currentSuite" yaml:"currentSuite"`     // snapshot, not a live reference
	Loading        bool            `json:"loading" yaml:"loading"`
	Error          *string         `json:"error" yaml:"error"`
}

// InitialState returns the empty state.
func InitialState() State {
	return State{
		Projects: []model.Project{},
		Suites:   []model.Suite{},
	}
}

// Clone returns a deep copy that shares no memory with s.
func (s State) Clone() State {
	c := State{
		Projects: cloneSlice(s.Projects),
		Suites:   cloneSlice(s.Suites),
		Loading:  s.Loading,
	}
	if s.CurrentProject != nil {
		p := *s.CurrentProject
		c.CurrentProject = &p
	}
	if s.CurrentSuite != nil {
		su := cloneSuite(*s.CurrentSuite)
		c.CurrentSuite = &su
	}
	if s.Error != nil {
		msg := *s.Error
		c.Error = &msg
	}
	for i := range c.Suites {
		c.Suites[i] = cloneSuite(c.Suites[i])
	}
	return c
}

// ErrorMessage returns the stored error or "" when there is none.
func (s State) ErrorMessage() string {
	if s.Error == nil {
		return ""
	}
	return *s.Error
}

// cloneSlice copies a slice, turning nil into an empty slice.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}

func cloneSuite(s model.Suite) model.Suite {
	if s.Stats.LastRun != nil {
		t := *s.Stats.LastRun
		s.Stats.LastRun = &t
	}
	return s
}
