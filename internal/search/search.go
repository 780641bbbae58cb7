package search

import (
	"sort"

	"github.com/nikbrunner/kbtest/internal/model"
	"github.com/nikbrunner/kbtest/internal/state"
	"github.com/sahilm/fuzzy"
)

// Kind distinguishes project and suite matches.
type Kind int

const (
	KindProject Kind = iota
	KindSuite
)

// Result represents a fuzzy search match.
type Result struct {
	Kind           Kind
	Project        *model.Project // owning project for suite matches, nil if orphaned
	Suite          *model.Suite   // nil for project matches
	MatchedIndexes []int
	Score          int
}

// Title returns the matched name.
func (r Result) Title() string {
	if r.Kind == KindSuite {
		return r.Suite.Name
	}
	return r.Project.Name
}

// ID returns the matched entity's ID.
func (r Result) ID() string {
	if r.Kind == KindSuite {
		return r.Suite.ID
	}
	return r.Project.ID
}

// projectNames implements fuzzy.Source for a project slice.
type projectNames []model.Project

func (p projectNames) String(i int) string { return p[i].Name }
func (p projectNames) Len() int            { return len(p) }

// suiteNames implements fuzzy.Source for a suite slice.
type suiteNames []model.Suite

func (s suiteNames) String(i int) string { return s[i].Name }
func (s suiteNames) Len() int            { return len(s) }

// SearchProjects searches project names using fuzzy matching.
// Returns results sorted by match score (best first).
func SearchProjects(s state.State, query string) []Result {
	if query == "" {
		return nil
	}

	projects := projectNames(s.Projects)
	matches := fuzzy.FindFrom(query, projects)

	results := make([]Result, len(matches))
	for i, m := range matches {
		p := projects[m.Index]
		results[i] = Result{
			Kind:           KindProject,
			Project:        &p,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

// SearchSuites searches suite names of one project, or of all projects when
// projectID is empty.
func SearchSuites(s state.State, projectID, query string) []Result {
	if query == "" {
		return nil
	}

	candidates := s.Suites
	if projectID != "" {
		candidates = state.SuitesForProject(s, projectID)
	}

	suites := suiteNames(candidates)
	matches := fuzzy.FindFrom(query, suites)

	results := make([]Result, len(matches))
	for i, m := range matches {
		su := suites[m.Index]
		results[i] = Result{
			Kind:           KindSuite,
			Project:        state.ProjectByID(s, su.ProjectID),
			Suite:          &su,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

// SearchAll merges project and suite matches, best score first. Projects
// win ties.
func SearchAll(s state.State, query string) []Result {
	results := append(SearchProjects(s, query), SearchSuites(s, "", query)...)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
