package usecase

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockSettingsProvider is a testify mock for usecase.SettingsProvider
type MockSettingsProvider struct {
	mock.Mock
}

// NewMockSettingsProvider creates a mock and registers expectation checks on cleanup
func NewMockSettingsProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSettingsProvider {
	m := &MockSettingsProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Current provides a mock function
func (m *MockSettingsProvider) Current(ctx context.Context) (entity.SystemSettings, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(entity.SystemSettings)
	return r0, args.Error(1)
}

// Update provides a mock function
func (m *MockSettingsProvider) Update(ctx context.Context, settings entity.SystemSettings) (entity.SystemSettings, error) {
	args := m.Called(ctx, settings)
	r0, _ := args.Get(0).(entity.SystemSettings)
	return r0, args.Error(1)
}
