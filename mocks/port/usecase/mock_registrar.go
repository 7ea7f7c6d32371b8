package usecase

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockRegistrar is a testify mock for usecase.Registrar
type MockRegistrar struct {
	mock.Mock
}

// NewMockRegistrar creates a mock and registers expectation checks on cleanup
func NewMockRegistrar(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRegistrar {
	m := &MockRegistrar{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Register provides a mock function
func (m *MockRegistrar) Register(ctx context.Context, req usecase.RegistrationRequest) (*usecase.RegistrationResult, error) {
	args := m.Called(ctx, req)
	var r0 *usecase.RegistrationResult
	if v, ok := args.Get(0).(*usecase.RegistrationResult); ok {
		r0 = v
	}
	return r0, args.Error(1)
}
