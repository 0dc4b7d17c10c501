package mocks

import (
	"context"

	"origo-server/internal/models"
	"origo-server/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockItemRepository is a mock type for the ItemRepository type
type MockItemRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, text
func (_m *MockItemRepository) Create(ctx context.Context, text string) (*models.Item, error) {
	ret := _m.Called(ctx, text)

	var r0 *models.Item
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.Item); ok {
		r0 = rf(ctx, text)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Item)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, text)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Item
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Item); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Item)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// List provides a mock function with given fields: ctx
func (_m *MockItemRepository) List(ctx context.Context) ([]models.Item, error) {
	ret := _m.Called(ctx)

	var r0 []models.Item
	if rf, ok := ret.Get(0).(func(context.Context) []models.Item); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.Item)
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

// Update provides a mock function with given fields: ctx, id, text
func (_m *MockItemRepository) Update(ctx context.Context, id int64, text string) (*models.Item, error) {
	ret := _m.Called(ctx, id, text)

	var r0 *models.Item
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) *models.Item); ok {
		r0 = rf(ctx, id, text)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Item)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, string) error); ok {
		r1 = rf(ctx, id, text)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockItemRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		err := ret.Error(0)
		if err != nil {
			r0 = err
		}
	}

	return r0
}

// NewMockItemRepository creates a new instance of MockItemRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockItemRepository(t interface {
	mock.TestingT
	Helper()
}) *MockItemRepository {
	m := &MockItemRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.ItemRepository = (*MockItemRepository)(nil)
