package model

import "time"

// Project is the top-level container that owns zero or more suites.
type Project struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// NewProjectParams holds parameters for creating a new Project.
type NewProjectParams struct {
	Name        string
	Description string
	Now         time.Time // zero = time.Now()
}

// NewProject creates a Project with a generated ID and timestamps.
func NewProject(params NewProjectParams) Project {
	now := params.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	return Project{
		ID:          GenerateID(),
		Name:        params.Name,
		Description: params.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Touch returns a copy of the project with UpdatedAt set to now.
func (p Project) Touch(now time.Time) Project {
	p.UpdatedAt = now
	return p
}

// Validate checks the fields every dispatched project must carry.
func (p Project) Validate() error {
	if err := requireID(p.ID); err != nil {
		return err
	}
	if err := requireName(p.Name); err != nil {
		return err
	}
	return checkTimestamps(p.CreatedAt, p.UpdatedAt)
}
