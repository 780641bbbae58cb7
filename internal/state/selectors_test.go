package state_test

import (
	"testing"

	"github.com/nikbrunner/kbtest/internal/state"
)

func TestSuitesForProject(t *testing.T) {
	s := populated()

	got := state.SuitesForProject(s, "1")
	if len(got) != 2 || got[0].ID != "s1" || got[1].ID != "s3" {
		t.Errorf("expected [s1 s3], got %+v", got)
	}

	if got := state.SuitesForProject(s, "missing"); len(got) != 0 {
		t.Errorf("expected no suites, got %d", len(got))
	}
}

func TestSuitesForProject_IsAFreshProjection(t *testing.T) {
	s := populated()

	first := state.SuitesForProject(s, "1")
	first[0].Name = "changed"

	second := state.SuitesForProject(s, "1")
	if second[0].Name != "Suite A" {
		t.Error("editing a projection should not affect later reads")
	}
	if s.Suites[0].Name != "Suite A" {
		t.Error("editing a projection should not affect the state")
	}
}

func TestSuiteCount(t *testing.T) {
	s := populated()

	if got := state.SuiteCount(s, "1"); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := state.SuiteCount(s, "2"); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestProjectByID(t *testing.T) {
	s := populated()

	p := state.ProjectByID(s, "2")
	if p == nil || p.Name != "Beta" {
		t.Fatalf("expected Beta, got %v", p)
	}

	p.Name = "changed"
	if s.Projects[1].Name != "Beta" {
		t.Error("returned project should be a copy")
	}

	if state.ProjectByID(s, "nonexistent") != nil {
		t.Error("expected nil for nonexistent project")
	}
}

func TestSuiteByID(t *testing.T) {
	s := populated()

	if su := state.SuiteByID(s, "s2"); su == nil || su.ProjectID != "2" {
		t.Errorf("expected suite s2 of project 2, got %v", su)
	}
	if state.SuiteByID(s, "nonexistent") != nil {
		t.Error("expected nil for nonexistent suite")
	}
}

func TestOrphanSuites(t *testing.T) {
	s := populated()
	if got := state.OrphanSuites(s); len(got) != 0 {
		t.Errorf("expected no orphans, got %+v", got)
	}

	// setProjects does not cascade, so it can leave suites behind.
	s = state.Reduce(s, state.SetProjects{Projects: s.Projects[:1]})
	got := state.OrphanSuites(s)
	if len(got) != 1 || got[0].ID != "s2" {
		t.Errorf("expected s2 orphaned, got %+v", got)
	}
}
