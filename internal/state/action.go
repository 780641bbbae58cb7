package state

import (
	"time"

	"github.com/nikbrunner/kbtest/internal/model"
)

// ActionType names an action. Values match the "projects/<name>" action
// strings used by script files.
type ActionType string

const (
	TypeSetLoading        ActionType = "projects/setLoading"
	TypeSetError          ActionType = "projects/setError"
	TypeAddProject        ActionType = "projects/addProject"
	TypeSetProjects       ActionType = "projects/setProjects"
	TypeSetCurrentProject ActionType = "projects/setCurrentProject"
	TypeUpdateProject     ActionType = "projects/updateProject"
	TypeDeleteProject     ActionType = "projects/deleteProject"
	TypeAddSuite          ActionType = "projects/addSuite"
	TypeSetSuites         ActionType = "projects/setSuites"
	TypeSetCurrentSuite   ActionType = "projects/setCurrentSuite"
	TypeUpdateSuite       ActionType = "projects/updateSuite"
	TypeDeleteSuite       ActionType = "projects/deleteSuite"
	TypeClearSuites       ActionType = "projects/clearSuites"
	TypeSetSuiteStats     ActionType = "projects/setSuiteStats"
)

// Action is a request to transform State. Reduce matches on the value types
// below; pointers to them satisfy the interface but are not applied.
type Action interface {
	Type() ActionType
}

type (
	SetLoading        struct{ Loading bool }
	SetError          struct{ Message *string } // nil clears
	AddProject        struct{ Project model.Project }
	SetProjects       struct{ Projects []model.Project }
	SetCurrentProject struct{ Project *model.Project } // nil clears
	UpdateProject     struct{ Project model.Project }
	DeleteProject     struct{ ID string }
	AddSuite          struct{ Suite model.Suite }
	SetSuites         struct{ Suites []model.Suite }
	SetCurrentSuite   struct{ Suite *model.Suite } // nil clears
	UpdateSuite       struct{ Suite model.Suite }
	DeleteSuite       struct{ ID string }
	ClearSuites       struct{}

	// SetSuiteStats replaces only the run stats of a suite, leaving the
	// rest of the stored suite as it is. A zero UpdatedAt keeps the old one.
	SetSuiteStats struct {
		ID        string
		Stats     model.Stats
		UpdatedAt time.Time
	}
)

func (SetLoading) Type() ActionType        { return TypeSetLoading }
func (SetError) Type() ActionType          { return TypeSetError }
func (AddProject) Type() ActionType        { return TypeAddProject }
func (SetProjects) Type() ActionType       { return TypeSetProjects }
func (SetCurrentProject) Type() ActionType { return TypeSetCurrentProject }
func (UpdateProject) Type() ActionType     { return TypeUpdateProject }
func (DeleteProject) Type() ActionType     { return TypeDeleteProject }
func (AddSuite) Type() ActionType          { return TypeAddSuite }
func (SetSuites) Type() ActionType         { return TypeSetSuites }
func (SetCurrentSuite) Type() ActionType   { return TypeSetCurrentSuite }
func (UpdateSuite) Type() ActionType       { return TypeUpdateSuite }
func (DeleteSuite) Type() ActionType       { return TypeDeleteSuite }
func (ClearSuites) Type() ActionType       { return TypeClearSuites }
func (SetSuiteStats) Type() ActionType     { return TypeSetSuiteStats }

// SetErrorAction stores msg as the user-visible error.
func SetErrorAction(msg string) SetError {
	return SetError{Message: &msg}
}

// ClearErrorAction removes the user-visible error.
func ClearErrorAction() SetError {
	return SetError{}
}

// SelectProject makes a snapshot of p the current project.
func SelectProject(p model.Project) SetCurrentProject {
	return SetCurrentProject{Project: &p}
}

// SelectSuite makes a snapshot of s the current suite.
func SelectSuite(s model.Suite) SetCurrentSuite {
	return SetCurrentSuite{Suite: &s}
}
