package mocks

import (
	"context"

	"origo-server/internal/models"
	"origo-server/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockSynthesizer is a mock type for the Synthesizer type
type MockSynthesizer struct {
	mock.Mock
}

// Synthesize provides a mock function with given fields: ctx, req, mode
func (_m *MockSynthesizer) Synthesize(ctx context.Context, req *models.GenerationRequest, mode models.GenerationMode) (*models.FileTreeResult, error) {
	ret := _m.Called(ctx, req, mode)

	var r0 *models.FileTreeResult
	if rf, ok := ret.Get(0).(func(context.Context, *models.GenerationRequest, models.GenerationMode) *models.FileTreeResult); ok {
		r0 = rf(ctx, req, mode)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.FileTreeResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *models.GenerationRequest, models.GenerationMode) error); ok {
		r1 = rf(ctx, req, mode)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// NewMockSynthesizer creates a new instance of MockSynthesizer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSynthesizer(t interface {
	mock.TestingT
	Helper()
}) *MockSynthesizer {
	m := &MockSynthesizer{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.Synthesizer = (*MockSynthesizer)(nil)
