package state

import (
	"slices"

	"github.com/nikbrunner/kbtest/internal/model"
)

// Reduce applies a to s and returns the resulting state. It never mutates s
// and never reads the clock; unknown actions return s unchanged.
//
// Ids are not checked for uniqueness on add, and a suite's ProjectID is not
// checked against projects. Deleting a project is the only place the
// suite/project link is enforced.
func Reduce(s State, a Action) State {
	s, _ = reduce(s, a)
	return s
}

// reduce reports whether a was recognized.
func reduce(s State, a Action) (State, bool) {
	switch a := a.(type) {
	case SetLoading:
		s.Loading = a.Loading

	case SetError:
		if a.Message == nil {
			s.Error = nil
		} else {
			msg := *a.Message
			s.Error = &msg
		}

	case AddProject:
		s.Projects = append(slices.Clip(s.Projects), a.Project)

	case SetProjects:
		s.Projects = cloneSlice(a.Projects)

	case SetCurrentProject:
		if a.Project == nil {
			s.CurrentProject = nil
		} else {
			p := *a.Project
			s.CurrentProject = &p
		}

	case UpdateProject:
		i := slices.IndexFunc(s.Projects, func(p model.Project) bool { return p.ID == a.Project.ID })
		if i == -1 {
			return s, true
		}
		s.Projects = slices.Clone(s.Projects)
		s.Projects[i] = a.Project

	case DeleteProject:
		if !slices.ContainsFunc(s.Projects, func(p model.Project) bool { return p.ID == a.ID }) {
			return s, true
		}
		s.Projects = slices.DeleteFunc(slices.Clone(s.Projects), func(p model.Project) bool { return p.ID == a.ID })
		if s.CurrentProject != nil && s.CurrentProject.ID == a.ID {
			s.CurrentProject = nil
		}
		s.Suites = slices.DeleteFunc(cloneSlice(s.Suites), func(su model.Suite) bool { return su.ProjectID == a.ID })
		if s.CurrentSuite != nil && s.CurrentSuite.ProjectID == a.ID {
			s.CurrentSuite = nil
		}

	case AddSuite:
		s.Suites = append(slices.Clip(s.Suites), a.Suite)

	case SetSuites:
		s.Suites = cloneSlice(a.Suites)

	case SetCurrentSuite:
		if a.Suite == nil {
			s.CurrentSuite = nil
		} else {
			su := *a.Suite
			s.CurrentSuite = &su
		}

	case UpdateSuite:
		i := slices.IndexFunc(s.Suites, func(su model.Suite) bool { return su.ID == a.Suite.ID })
		if i == -1 {
			return s, true
		}
		s.Suites = slices.Clone(s.Suites)
		s.Suites[i] = a.Suite

	case DeleteSuite:
		if !slices.ContainsFunc(s.Suites, func(su model.Suite) bool { return su.ID == a.ID }) {
			return s, true
		}
		s.Suites = slices.DeleteFunc(slices.Clone(s.Suites), func(su model.Suite) bool { return su.ID == a.ID })
		if s.CurrentSuite != nil && s.CurrentSuite.ID == a.ID {
			s.CurrentSuite = nil
		}

	case ClearSuites:
		s.Suites = []model.Suite{}
		s.CurrentSuite = nil

	case SetSuiteStats:
		i := slices.IndexFunc(s.Suites, func(su model.Suite) bool { return su.ID == a.ID })
		if i == -1 {
			return s, true
		}
		s.Suites = slices.Clone(s.Suites)
		s.Suites[i].Stats = a.Stats
		if a.Stats.LastRun != nil {
			last := *a.Stats.LastRun
			s.Suites[i].Stats.LastRun = &last
		}
		if !a.UpdatedAt.IsZero() {
			s.Suites[i].UpdatedAt = a.UpdatedAt
		}

	default:
		return s, false
	}

	return s, true
}
