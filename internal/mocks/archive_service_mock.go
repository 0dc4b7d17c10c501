package mocks

import (
	"context"
	"io"

	"origo-server/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockArchiveService is a mock type for the ArchiveService type
type MockArchiveService struct {
	mock.Mock
}

// WriteArchive provides a mock function with given fields: ctx, projectID, w
func (_m *MockArchiveService) WriteArchive(ctx context.Context, projectID string, w io.Writer) error {
	ret := _m.Called(ctx, projectID, w)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, io.Writer) error); ok {
		r0 = rf(ctx, projectID, w)
	} else {
		err := ret.Error(0)
		if err != nil {
			r0 = err
		}
	}

	return r0
}

// NewMockArchiveService creates a new instance of MockArchiveService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockArchiveService(t interface {
	mock.TestingT
	Helper()
}) *MockArchiveService {
	m := &MockArchiveService{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.ArchiveService = (*MockArchiveService)(nil)
