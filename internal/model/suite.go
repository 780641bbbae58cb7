package model

import (
	"strings"
	"time"
)

// Suite is a group of tests scoped to exactly one project.
type Suite struct {
	ID          string    `json:"id" yaml:"id"`
	ProjectID   string    `json:"projectId" yaml:"projectId"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
	Stats       Stats     `json:"stats,omitzero" yaml:"stats,omitempty"`
}

// Stats is display-only run information for a suite.
type Stats struct {
	Passed     int        `json:"passed" yaml:"passed"`
	Failed     int        `json:"failed" yaml:"failed"`
	Pending    int        `json:"pending" yaml:"pending"`
	TotalTests int        `json:"totalTests" yaml:"totalTests"`
	LastRun    *time.Time `json:"lastRun,omitempty" yaml:"lastRun,omitempty"`
}

// PassRate returns the percentage of passed tests, 0 when nothing ran.
func (s Stats) PassRate() int {
	ran := s.Passed + s.Failed
	if ran == 0 {
		return 0
	}
	return s.Passed * 100 / ran
}

// NewSuiteParams holds parameters for creating a new Suite.
type NewSuiteParams struct {
	ProjectID   string
	Name        string
	Description string
	Now         time.Time // zero = time.Now()
}

// NewSuite creates a Suite with a generated ID and timestamps.
func NewSuite(params NewSuiteParams) Suite {
	now := params.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	return Suite{
		ID:          GenerateID(),
		ProjectID:   params.ProjectID,
		Name:        params.Name,
		Description: params.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Touch returns a copy of the suite with UpdatedAt set to now.
func (s Suite) Touch(now time.Time) Suite {
	s.UpdatedAt = now
	return s
}

// Validate checks the fields every dispatched suite must carry.
// It does not check that ProjectID refers to an existing project.
func (s Suite) Validate() error {
	if err := requireID(s.ID); err != nil {
		return err
	}
	if strings.TrimSpace(s.ProjectID) == "" {
		return ErrMissingProjectID
	}
	if err := requireName(s.Name); err != nil {
		return err
	}
	return checkTimestamps(s.CreatedAt, s.UpdatedAt)
}
