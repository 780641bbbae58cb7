package model_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nikbrunner/kbtest/internal/model"
)

var day = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func sampleProject() model.Project {
	return model.Project{
		ID:          "1",
		Name:        "Test Project",
		Description: "A test project",
		CreatedAt:   day,
		UpdatedAt:   day,
	}
}

func sampleSuite() model.Suite {
	return model.Suite{
		ID:          "s1",
		ProjectID:   "1",
		Name:        "Suite A",
		Description: "d",
		CreatedAt:   day,
		UpdatedAt:   day,
	}
}

func TestNewProject_GeneratesIDAndTimestamps(t *testing.T) {
	p := model.NewProject(model.NewProjectParams{
		Name:        "Project 1",
		Description: "A new test project",
		Now:         day,
	})

	if p.ID == "" {
		t.Error("expected generated ID")
	}
	if !p.CreatedAt.Equal(day) || !p.UpdatedAt.Equal(day) {
		t.Errorf("expected timestamps %v, got %v / %v", day, p.CreatedAt, p.UpdatedAt)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("expected new project to validate, got %v", err)
	}

	other := model.NewProject(model.NewProjectParams{Name: "Project 2"})
	if other.ID == p.ID {
		t.Error("expected distinct IDs for separate projects")
	}
	if other.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to default to now")
	}
}

func TestNewSuite_CarriesProjectID(t *testing.T) {
	s := model.NewSuite(model.NewSuiteParams{
		ProjectID: "p1",
		Name:      "Suite 1",
		Now:       day,
	})

	if s.ProjectID != "p1" {
		t.Errorf("expected projectId p1, got %q", s.ProjectID)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("expected new suite to validate, got %v", err)
	}
}

func TestTouch_OnlyChangesUpdatedAt(t *testing.T) {
	later := day.Add(time.Hour)

	p := sampleProject().Touch(later)
	if !p.UpdatedAt.Equal(later) {
		t.Errorf("expected UpdatedAt %v, got %v", later, p.UpdatedAt)
	}
	if !p.CreatedAt.Equal(day) {
		t.Errorf("CreatedAt should not change, got %v", p.CreatedAt)
	}

	s := sampleSuite().Touch(later)
	if !s.UpdatedAt.Equal(later) || !s.CreatedAt.Equal(day) {
		t.Errorf("unexpected suite timestamps %v / %v", s.CreatedAt, s.UpdatedAt)
	}
}

func TestProject_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *model.Project)
		want   error
	}{
		{name: "valid", mutate: func(p *model.Project) {}, want: nil},
		{name: "blank id", mutate: func(p *model.Project) { p.ID = "  " }, want: model.ErrMissingID},
		{name: "blank name", mutate: func(p *model.Project) { p.Name = "" }, want: model.ErrMissingName},
		{name: "zero createdAt", mutate: func(p *model.Project) { p.CreatedAt = time.Time{} }, want: model.ErrMissingTimestamp},
		{name: "zero updatedAt", mutate: func(p *model.Project) { p.UpdatedAt = time.Time{} }, want: model.ErrMissingTimestamp},
		{name: "updated before created", mutate: func(p *model.Project) { p.UpdatedAt = day.Add(-time.Second) }, want: model.ErrTimestampOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sampleProject()
			tt.mutate(&p)
			err := p.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSuite_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *model.Suite)
		want   error
	}{
		{name: "valid", mutate: func(s *model.Suite) {}, want: nil},
		{name: "blank id", mutate: func(s *model.Suite) { s.ID = "" }, want: model.ErrMissingID},
		{name: "blank project id", mutate: func(s *model.Suite) { s.ProjectID = "" }, want: model.ErrMissingProjectID},
		{name: "blank name", mutate: func(s *model.Suite) { s.Name = "\t" }, want: model.ErrMissingName},
		{name: "zero createdAt", mutate: func(s *model.Suite) { s.CreatedAt = time.Time{} }, want: model.ErrMissingTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleSuite()
			tt.mutate(&s)
			err := s.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestStats_PassRate(t *testing.T) {
	tests := []struct {
		name  string
		stats model.Stats
		want  int
	}{
		{name: "nothing ran", stats: model.Stats{}, want: 0},
		{name: "pending only", stats: model.Stats{Pending: 3, TotalTests: 3}, want: 0},
		{name: "all passed", stats: model.Stats{Passed: 4, TotalTests: 4}, want: 100},
		{name: "mixed", stats: model.Stats{Passed: 3, Failed: 1, TotalTests: 4}, want: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.PassRate(); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestProject_JSONUsesISOTimestamps(t *testing.T) {
	data, err := json.Marshal(sampleProject())
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	want := `{"id":"1","name":"Test Project","description":"A test project","createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"}`
	if string(data) != want {
		t.Errorf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}
