package usecase

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockCryptoPaymentUseCase is a testify mock for usecase.CryptoPaymentUseCase
type MockCryptoPaymentUseCase struct {
	mock.Mock
}

// NewMockCryptoPaymentUseCase creates a mock and registers expectation checks on cleanup
func NewMockCryptoPaymentUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCryptoPaymentUseCase {
	m := &MockCryptoPaymentUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// SubmitProof provides a mock function
func (m *MockCryptoPaymentUseCase) SubmitProof(ctx context.Context, submission usecase.CryptoSubmission) (*usecase.ProofSubmission, error) {
	args := m.Called(ctx, submission)
	var r0 *usecase.ProofSubmission
	if v, ok := args.Get(0).(*usecase.ProofSubmission); ok {
		r0 = v
	}
	return r0, args.Error(1)
}
