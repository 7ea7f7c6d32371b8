package core

import (
	"github.com/stretchr/testify/mock"
)

// MockMetrics is a testify mock for core.Metrics
type MockMetrics struct {
	mock.Mock
}

// NewMockMetrics creates a mock and registers expectation checks on cleanup
func NewMockMetrics(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMetrics {
	m := &MockMetrics{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// RegistrationCompleted provides a mock function
func (m *MockMetrics) RegistrationCompleted(paymentMethod, result string) {
	m.Called(paymentMethod, result)
}

// LoginAttempted provides a mock function
func (m *MockMetrics) LoginAttempted(result string) {
	m.Called(result)
}

// PaymentProcessed provides a mock function
func (m *MockMetrics) PaymentProcessed(kind, result string) {
	m.Called(kind, result)
}

// FollowUpFinished provides a mock function
func (m *MockMetrics) FollowUpFinished(name, result string) {
	m.Called(name, result)
}

// AllowAll accepts any metric call
func (m *MockMetrics) AllowAll() *MockMetrics {
	m.On("RegistrationCompleted", mock.Anything, mock.Anything).Maybe()
	m.On("LoginAttempted", mock.Anything).Maybe()
	m.On("PaymentProcessed", mock.Anything, mock.Anything).Maybe()
	m.On("FollowUpFinished", mock.Anything, mock.Anything).Maybe()
	return m
}
