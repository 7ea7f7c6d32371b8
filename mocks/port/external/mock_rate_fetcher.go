package external

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockRateFetcher is a testify mock for external.RateFetcher
type MockRateFetcher struct {
	mock.Mock
}

// NewMockRateFetcher creates a mock and registers expectation checks on cleanup
func NewMockRateFetcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRateFetcher {
	m := &MockRateFetcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Latest provides a mock function
func (m *MockRateFetcher) Latest(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, base)
	var r0 map[string]decimal.Decimal
	if v, ok := args.Get(0).(map[string]decimal.Decimal); ok {
		r0 = v
	}
	return r0, args.Error(1)
}
