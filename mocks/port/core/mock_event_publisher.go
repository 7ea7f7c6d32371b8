package core

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a testify mock for core.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock and registers expectation checks on cleanup
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Publish provides a mock function
func (m *MockEventPublisher) Publish(ctx context.Context, subject string, payload map[string]any) error {
	args := m.Called(ctx, subject, payload)
	return args.Error(0)
}
