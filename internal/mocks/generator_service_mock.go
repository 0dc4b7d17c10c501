package mocks

import (
	"context"

	"origo-server/internal/models"
	"origo-server/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockGeneratorService is a mock type for the GeneratorService type
type MockGeneratorService struct {
	mock.Mock
}

// GenerateProject provides a mock function with given fields: ctx, req
func (_m *MockGeneratorService) GenerateProject(ctx context.Context, req *models.GenerationRequest) (*models.ProjectArtifact, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.ProjectArtifact
	if rf, ok := ret.Get(0).(func(context.Context, *models.GenerationRequest) *models.ProjectArtifact); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.ProjectArtifact)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *models.GenerationRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// GenerateComponent provides a mock function with given fields: ctx, req
func (_m *MockGeneratorService) GenerateComponent(ctx context.Context, req *models.GenerationRequest) (*models.FileTreeResult, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.FileTreeResult
	if rf, ok := ret.Get(0).(func(context.Context, *models.GenerationRequest) *models.FileTreeResult); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.FileTreeResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *models.GenerationRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// GeneratePreview provides a mock function with given fields: ctx, req
func (_m *MockGeneratorService) GeneratePreview(ctx context.Context, req *models.GenerationRequest) (*models.FileTreeResult, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.FileTreeResult
	if rf, ok := ret.Get(0).(func(context.Context, *models.GenerationRequest) *models.FileTreeResult); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.FileTreeResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *models.GenerationRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// GetProject provides a mock function with given fields: ctx, projectID
func (_m *MockGeneratorService) GetProject(ctx context.Context, projectID string) (*models.ProjectArtifact, error) {
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

// ListProjects provides a mock function with given fields: ctx
func (_m *MockGeneratorService) ListProjects(ctx context.Context) ([]models.ProjectSummary, error) {
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

// DeleteProject provides a mock function with given fields: ctx, projectID
func (_m *MockGeneratorService) DeleteProject(ctx context.Context, projectID string) error {
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

// Cleanup provides a mock function with given fields: ctx, olderThanDays, dryRun
func (_m *MockGeneratorService) Cleanup(ctx context.Context, olderThanDays int, dryRun bool) (*service.CleanupReport, error) {
	ret := _m.Called(ctx, olderThanDays, dryRun)

	var r0 *service.CleanupReport
	if rf, ok := ret.Get(0).(func(context.Context, int, bool) *service.CleanupReport); ok {
		r0 = rf(ctx, olderThanDays, dryRun)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.CleanupReport)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, bool) error); ok {
		r1 = rf(ctx, olderThanDays, dryRun)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// NewMockGeneratorService creates a new instance of MockGeneratorService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGeneratorService(t interface {
	mock.TestingT
	Helper()
}) *MockGeneratorService {
	m := &MockGeneratorService{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.GeneratorService = (*MockGeneratorService)(nil)
