package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nikbrunner/kbtest/internal/model"
	"github.com/nikbrunner/kbtest/internal/state"
)

// Controller runs bridge operations and dispatches their outcome. Each call
// is bracketed by SetLoading, failures land in the store's error field, and
// nothing is retried.
type Controller struct {
	bridge Bridge
	store  *state.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewController creates a Controller. A nil logger discards output.
func NewController(b Bridge, store *state.Store, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		bridge: b,
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// LoadProjects replaces the store's projects with the host's list.
func (c *Controller) LoadProjects(ctx context.Context) error {
	return c.run("Failed to load projects", func() error {
		projects, err := c.bridge.GetProjects(ctx)
		if err != nil {
			return err
		}
		for i, p := range projects {
			if err := p.Validate(); err != nil {
				return fmt.Errorf("project %d: %w", i, err)
			}
		}
		c.store.Dispatch(state.SetProjects{Projects: projects})
		return nil
	})
}

// CreateProject asks the host to create a project and adds the result.
func (c *Controller) CreateProject(ctx context.Context, in ProjectInput) (model.Project, error) {
	var created model.Project
	err := c.run("Failed to create project", func() error {
		p, err := c.bridge.CreateProject(ctx, in)
		if err != nil {
			return err
		}
		if err := p.Validate(); err != nil {
			return err
		}
		c.store.Dispatch(state.AddProject{Project: p})
		created = p
		return nil
	})
	return created, err
}

// DeleteProject asks the host to delete a project and cascades locally.
func (c *Controller) DeleteProject(ctx context.Context, projectID string) error {
	return c.run("Failed to delete project", func() error {
		if err := c.bridge.DeleteProject(ctx, projectID); err != nil {
			return err
		}
		c.store.Dispatch(state.DeleteProject{ID: projectID})
		return nil
	})
}

// WatchCompletions records finished suite executions on the matching suite's
// stats. Only the stats are dispatched, so edits made to the suite while the
// run was in flight are kept. Completions for unknown suites are ignored.
func (c *Controller) WatchCompletions() (unsubscribe func()) {
	return c.bridge.OnTestComplete(func(done Completion) {
		suiteID := done.Execution.SuiteID
		if suiteID == "" {
			return
		}
		su := state.SuiteByID(c.store.State(), suiteID)
		if su == nil {
			c.logger.Debug("completion for unknown suite", "suite", suiteID)
			return
		}

		stats := model.Stats{TotalTests: len(done.Results)}
		for _, r := range done.Results {
			switch r.Status {
			case StatusPassed:
				stats.Passed++
			case StatusFailed:
				stats.Failed++
			default:
				stats.Pending++
			}
		}
		finished := c.now()
		if done.Execution.FinishedAt != nil {
			finished = *done.Execution.FinishedAt
		}
		stats.LastRun = &finished

		c.store.Dispatch(state.SetSuiteStats{ID: su.ID, Stats: stats, UpdatedAt: c.now()})
	})
}

func (c *Controller) run(failure string, op func() error) error {
	c.store.Dispatch(state.SetLoading{Loading: true})
	defer c.store.Dispatch(state.SetLoading{Loading: false})

	if err := op(); err != nil {
		c.logger.Error(failure, "error", err)
		c.store.Dispatch(state.SetErrorAction(fmt.Sprintf("%s: %v", failure, err)))
		return fmt.Errorf("%s: %w", failure, err)
	}
	c.store.Dispatch(state.ClearErrorAction())
	return nil
}
