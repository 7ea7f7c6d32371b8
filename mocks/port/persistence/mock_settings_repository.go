package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockSettingsRepository is a testify mock for persistence.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

// NewMockSettingsRepository creates a mock and registers expectation checks on cleanup
func NewMockSettingsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSettingsRepository {
	m := &MockSettingsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Get provides a mock function
func (m *MockSettingsRepository) Get(ctx context.Context) (*entity.SystemSettings, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).(*entity.SystemSettings); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// Save provides a mock function
func (m *MockSettingsRepository) Save(ctx context.Context, settings *entity.SystemSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}
