package usecase

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockAdminUseCase is a testify mock for usecase.AdminUseCase
type MockAdminUseCase struct {
	mock.Mock
}

// NewMockAdminUseCase creates a mock and registers expectation checks on cleanup
func NewMockAdminUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAdminUseCase {
	m := &MockAdminUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// UpdatePaymentStatus provides a mock function
func (m *MockAdminUseCase) UpdatePaymentStatus(ctx context.Context, paymentID string, status entity.ProofStatus, adminID string) (*usecase.PaymentReviewResult, error) {
	args := m.Called(ctx, paymentID, status, adminID)
	var r0 *usecase.PaymentReviewResult
	if v, ok := args.Get(0).(*usecase.PaymentReviewResult); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// UpdateWithdrawalStatus provides a mock function
func (m *MockAdminUseCase) UpdateWithdrawalStatus(ctx context.Context, withdrawalID string, status entity.WithdrawalStatus, adminID string) (*usecase.WithdrawalUpdateResult, error) {
	args := m.Called(ctx, withdrawalID, status, adminID)
	var r0 *usecase.WithdrawalUpdateResult
	if v, ok := args.Get(0).(*usecase.WithdrawalUpdateResult); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// UpdateUserBalance provides a mock function
func (m *MockAdminUseCase) UpdateUserBalance(ctx context.Context, userID string, amount string, adminID string) (*entity.Balance, error) {
	args := m.Called(ctx, userID, amount, adminID)
	var r0 *entity.Balance
	if v, ok := args.Get(0).(*entity.Balance); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// GetSettings provides a mock function
func (m *MockAdminUseCase) GetSettings(ctx context.Context) (entity.SystemSettings, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(entity.SystemSettings)
	return r0, args.Error(1)
}

// UpdateSettings provides a mock function
func (m *MockAdminUseCase) UpdateSettings(ctx context.Context, settings entity.SystemSettings) (entity.SystemSettings, error) {
	args := m.Called(ctx, settings)
	r0, _ := args.Get(0).(entity.SystemSettings)
	return r0, args.Error(1)
}
