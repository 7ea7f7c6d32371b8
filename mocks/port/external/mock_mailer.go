package external

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/external"
	"github.com/stretchr/testify/mock"
)

// MockMailer is a testify mock for external.Mailer
type MockMailer struct {
	mock.Mock
}

// NewMockMailer creates a mock and registers expectation checks on cleanup
func NewMockMailer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMailer {
	m := &MockMailer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Send provides a mock function
func (m *MockMailer) Send(ctx context.Context, settings entity.SystemSettings, mail external.Mail) error {
	args := m.Called(ctx, settings, mail)
	return args.Error(0)
}
