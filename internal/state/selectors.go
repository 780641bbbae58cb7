package state

import "github.com/nikbrunner/kbtest/internal/model"

// SuitesForProject returns the suites whose ProjectID is projectID, in
// insertion order. The result is a fresh slice on every call.
func SuitesForProject(s State, projectID string) []model.Suite {
	var result []model.Suite
	for _, su := range s.Suites {
		if su.ProjectID == projectID {
			result = append(result, su)
		}
	}
	return result
}

// SuiteCount returns how many suites belong to projectID.
func SuiteCount(s State, projectID string) int {
	n := 0
	for _, su := range s.Suites {
		if su.ProjectID == projectID {
			n++
		}
	}
	return n
}

// ProjectByID finds a project by ID, returns nil if not found.
func ProjectByID(s State, id string) *model.Project {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			p := s.Projects[i]
			return &p
		}
	}
	return nil
}

// SuiteByID finds a suite by ID, returns nil if not found.
func SuiteByID(s State, id string) *model.Suite {
	for i := range s.Suites {
		if s.Suites[i].ID == id {
			su := s.Suites[i]
			return &su
		}
	}
	return nil
}

// OrphanSuites returns suites whose project is not in s.Projects.
func OrphanSuites(s State) []model.Suite {
	known := make(map[string]bool, len(s.Projects))
	for _, p := range s.Projects {
		known[p.ID] = true
	}

	var result []model.Suite
	for _, su := range s.Suites {
		if !known[su.ProjectID] {
			result = append(result, su)
		}
	}
	return result
}
