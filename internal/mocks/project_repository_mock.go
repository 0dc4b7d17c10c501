package mocks

import (
	"context"
	"time"

	"origo-server/internal/models"
	"origo-server/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockProjectRepository is a mock type for the ProjectRepository type
type MockProjectRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, tree, req
func (_m *MockProjectRepository) Create(ctx context.Context, tree *models.FileTreeResult, req models.GenerationRequest) (string, error) {
	ret := _m.Called(ctx, tree, req)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, *models.FileTreeResult, models.GenerationRequest) string); ok {
		r0 = rf(ctx, tree, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *models.FileTreeResult, models.GenerationRequest) error); ok {
		r1 = rf(ctx, tree, req)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// Get provides a mock function with given fields: ctx, projectID
func (_m *MockProjectRepository) Get(ctx context.Context, projectID string) (*models.ProjectArtifact, error) {
	ret := _m.Called(ctx, projectID)

	var r0 *models.ProjectArtifact
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.ProjectArtifact); ok {
		r0 = rf(ctx, projectID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.ProjectArtifact)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, projectID)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// List provides a mock function with given fields: ctx
func (_m *MockProjectRepository) List(ctx context.Context) ([]models.ProjectSummary, error) {
	ret := _m.Called(ctx)

	var r0 []models.ProjectSummary
	if rf, ok := ret.Get(0).(func(context.Context) []models.ProjectSummary); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.ProjectSummary)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, projectID
func (_m *MockProjectRepository) Delete(ctx context.Context, projectID string) error {
	ret := _m.Called(ctx, projectID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, projectID)
	} else {
		err := ret.Error(0)
		if err != nil {
			r0 = err
		}
	}

	return r0
}

// DeleteOlderThan provides a mock function with given fields: ctx, threshold, dryRun
func (_m *MockProjectRepository) DeleteOlderThan(ctx context.Context, threshold time.Time, dryRun bool) ([]string, error) {
	ret := _m.Called(ctx, threshold, dryRun)

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, bool) []string); ok {
		r0 = rf(ctx, threshold, dryRun)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, time.Time, bool) error); ok {
		r1 = rf(ctx, threshold, dryRun)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// NewMockProjectRepository creates a new instance of MockProjectRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProjectRepository(t interface {
	mock.TestingT
	Helper()
}) *MockProjectRepository {
	m := &MockProjectRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.ProjectRepository = (*MockProjectRepository)(nil)
