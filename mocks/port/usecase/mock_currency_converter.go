package usecase

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCurrencyConverter is a testify mock for usecase.CurrencyConverter
type MockCurrencyConverter struct {
	mock.Mock
}

// NewMockCurrencyConverter creates a mock and registers expectation checks on cleanup
func NewMockCurrencyConverter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCurrencyConverter {
	m := &MockCurrencyConverter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Convert provides a mock function
func (m *MockCurrencyConverter) Convert(ctx context.Context, amount decimal.Decimal, from string, to string) usecase.Conversion {
	args := m.Called(ctx, amount, from, to)
	r0, _ := args.Get(0).(usecase.Conversion)
	return r0
}

// Rates provides a mock function
func (m *MockCurrencyConverter) Rates(ctx context.Context) usecase.RateSnapshot {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(usecase.RateSnapshot)
	return r0
}
