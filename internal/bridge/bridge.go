// Package bridge describes the operations a host shell is expected to expose
// (project and test case management, test execution, results) and feeds
// their outcomes into the state store. No real host ships with this module.
package bridge

import (
	"context"
	"errors"
	"time"

	"github.com/nikbrunner/kbtest/internal/model"
)

// ErrNotImplemented is returned by hosts that do not provide an operation.
var ErrNotImplemented = errors.New("bridge operation not implemented")

// Bridge is the host capability surface.
type Bridge interface {
	CreateProject(ctx context.Context, in ProjectInput) (model.Project, error)
	GetProjects(ctx context.Context) ([]model.Project, error)
	DeleteProject(ctx context.Context, projectID string) error

	CreateTestCase(ctx context.Context, tc TestCase) (TestCase, error)
	GetTestCases(ctx context.Context, projectID string) ([]TestCase, error)
	UpdateTestCase(ctx context.Context, tc TestCase) (TestCase, error)
	DeleteTestCase(ctx context.Context, testCaseID string) error

	ExecuteTest(ctx context.Context, testCaseID string) (Execution, error)
	ExecuteSuite(ctx context.Context, suiteID string) (Execution, error)

	GetTestResults(ctx context.Context, executionID string) ([]TestResult, error)
	GetExecutionHistory(ctx context.Context, projectID string) ([]Execution, error)

	// OnTestProgress and OnTestComplete register push listeners. The returned
	// function removes the listener.
	OnTestProgress(fn func(Progress)) (unsubscribe func())
	OnTestComplete(fn func(Completion)) (unsubscribe func())
}

// ProjectInput holds the caller-supplied fields of a new project.
type ProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TestCase is a single test belonging to a project and optionally a suite.
type TestCase struct {
	ID          string   `json:"id"`
	ProjectID   string   `json:"projectId"`
	SuiteID     string   `json:"suiteId,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// Status is the outcome of an execution or a single test.
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
)

// Execution is one run of a test or suite.
type Execution struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"projectId"`
	SuiteID    string     `json:"suiteId,omitempty"`
	TestCaseID string     `json:"testCaseId,omitempty"`
	Status     Status     `json:"status"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// TestResult is the outcome of one test case within an execution.
type TestResult struct {
	ExecutionID string        `json:"executionId"`
	TestCaseID  string        `json:"testCaseId"`
	Status      Status        `json:"status"`
	Duration    time.Duration `json:"duration"`
	Message     string        `json:"message,omitempty"`
}

// Progress is pushed while an execution runs.
type Progress struct {
	ExecutionID string `json:"executionId"`
	Completed   int    `json:"completed"`
	Total       int    `json:"total"`
	Current     string `json:"current,omitempty"` // test case being run
}

// Completion is pushed when an execution finishes.
type Completion struct {
	Execution Execution    `json:"execution"`
	Results   []TestResult `json:"results"`
}
