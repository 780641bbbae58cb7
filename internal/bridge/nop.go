package bridge

import (
	"context"

	"github.com/nikbrunner/kbtest/internal/model"
)

// Nop is a Bridge whose operations all fail with ErrNotImplemented.
type Nop struct{}

var _ Bridge = Nop{}

func (Nop) CreateProject(context.Context, ProjectInput) (model.Project, error) {
	return model.Project{}, ErrNotImplemented
}

func (Nop) GetProjects(context.Context) ([]model.Project, error) {
	return nil, ErrNotImplemented
}

func (Nop) DeleteProject(context.Context, string) error {
	return ErrNotImplemented
}

func (Nop) CreateTestCase(context.Context, TestCase) (TestCase, error) {
	return TestCase{}, ErrNotImplemented
}

func (Nop) GetTestCases(context.Context, string) ([]TestCase, error) {
	return nil, ErrNotImplemented
}

func (Nop) UpdateTestCase(context.Context, TestCase) (TestCase, error) {
	return TestCase{}, ErrNotImplemented
}

func (Nop) DeleteTestCase(context.Context, string) error {
	return ErrNotImplemented
}

func (Nop) ExecuteTest(context.Context, string) (Execution, error) {
	return Execution{}, ErrNotImplemented
}

func (Nop) ExecuteSuite(context.Context, string) (Execution, error) {
	return Execution{}, ErrNotImplemented
}

func (Nop) GetTestResults(context.Context, string) ([]TestResult, error) {
	return nil, ErrNotImplemented
}

func (Nop) GetExecutionHistory(context.Context, string) ([]Execution, error) {
	return nil, ErrNotImplemented
}

func (Nop) OnTestProgress(func(Progress)) func() { return func() {} }

func (Nop) OnTestComplete(func(Completion)) func() { return func() {} }
