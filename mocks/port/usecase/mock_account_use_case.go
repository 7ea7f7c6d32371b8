package usecase

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockAccountUseCase is a testify mock for usecase.AccountUseCase
type MockAccountUseCase struct {
	mock.Mock
}

// NewMockAccountUseCase creates a mock and registers expectation checks on cleanup
func NewMockAccountUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUseCase {
	m := &MockAccountUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Register provides a mock function
func (m *MockAccountUseCase) Register(ctx context.Context, req usecase.RegistrationRequest) (*usecase.RegistrationResult, error) {
	args := m.Called(ctx, req)
	var r0 *usecase.RegistrationResult
	if v, ok := args.Get(0).(*usecase.RegistrationResult); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// Login provides a mock function
func (m *MockAccountUseCase) Login(ctx context.Context, email string, password string) (*usecase.LoginResult, error) {
	args := m.Called(ctx, email, password)
	var r0 *usecase.LoginResult
	if v, ok := args.Get(0).(*usecase.LoginResult); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// Logout provides a mock function
func (m *MockAccountUseCase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// SessionActive provides a mock function
func (m *MockAccountUseCase) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

// GetBalance provides a mock function
func (m *MockAccountUseCase) GetBalance(ctx context.Context, userID string) (*usecase.BalanceView, error) {
	args := m.Called(ctx, userID)
	var r0 *usecase.BalanceView
	if v, ok := args.Get(0).(*usecase.BalanceView); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// RequestWithdrawal provides a mock function
func (m *MockAccountUseCase) RequestWithdrawal(ctx context.Context, req usecase.WithdrawalRequest) (*entity.Withdrawal, error) {
	args := m.Called(ctx, req)
	var r0 *entity.Withdrawal
	if v, ok := args.Get(0).(*entity.Withdrawal); ok {
		r0 = v
	}
	return r0, args.Error(1)
}
