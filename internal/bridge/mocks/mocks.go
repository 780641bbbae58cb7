package mocks

import (
	"context"

	"github.com/nikbrunner/kbtest/internal/bridge"
	"github.com/nikbrunner/kbtest/internal/model"
	"github.com/stretchr/testify/mock"
)

// Bridge is a mock for bridge.Bridge.
type Bridge struct {
	mock.Mock
}

var _ bridge.Bridge = (*Bridge)(nil)

func (m *Bridge) CreateProject(ctx context.Context, in bridge.ProjectInput) (model.Project, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *Bridge) GetProjects(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]model.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Bridge) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *Bridge) CreateTestCase(ctx context.Context, tc bridge.TestCase) (bridge.TestCase, error) {
	args := m.Called(ctx, tc)
	return args.Get(0).(bridge.TestCase), args.Error(1)
}

func (m *Bridge) GetTestCases(ctx context.Context, projectID string) ([]bridge.TestCase, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]bridge.TestCase); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Bridge) UpdateTestCase(ctx context.Context, tc bridge.TestCase) (bridge.TestCase, error) {
	args := m.Called(ctx, tc)
	return args.Get(0).(bridge.TestCase), args.Error(1)
}

func (m *Bridge) DeleteTestCase(ctx context.Context, testCaseID string) error {
	args := m.Called(ctx, testCaseID)
	return args.Error(0)
}

func (m *Bridge) ExecuteTest(ctx context.Context, testCaseID string) (bridge.Execution, error) {
	args := m.Called(ctx, testCaseID)
	return args.Get(0).(bridge.Execution), args.Error(1)
}

func (m *Bridge) ExecuteSuite(ctx context.Context, suiteID string) (bridge.Execution, error) {
	args := m.Called(ctx, suiteID)
	return args.Get(0).(bridge.Execution), args.Error(1)
}

func (m *Bridge) GetTestResults(ctx context.Context, executionID string) ([]bridge.TestResult, error) {
	args := m.Called(ctx, executionID)
	if list, ok := args.Get(0).([]bridge.TestResult); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Bridge) GetExecutionHistory(ctx context.Context, projectID string) ([]bridge.Execution, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]bridge.Execution); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Bridge) OnTestProgress(fn func(bridge.Progress)) func() {
	args := m.Called(fn)
	if unsubscribe, ok := args.Get(0).(func()); ok {
		return unsubscribe
	}
	return func() {}
}

func (m *Bridge) OnTestComplete(fn func(bridge.Completion)) func() {
	args := m.Called(fn)
	if unsubscribe, ok := args.Get(0).(func()); ok {
		return unsubscribe
	}
	return func() {}
}
