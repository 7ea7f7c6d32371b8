package external

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockIdentityProvider is a testify mock for external.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

// NewMockIdentityProvider creates a mock and registers expectation checks on cleanup
func NewMockIdentityProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityProvider {
	m := &MockIdentityProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// SignUp provides a mock function
func (m *MockIdentityProvider) SignUp(ctx context.Context, email string, password string, metadata map[string]string) (*entity.Identity, *entity.Session, error) {
	args := m.Called(ctx, email, password, metadata)
	var r0 *entity.Identity
	if v, ok := args.Get(0).(*entity.Identity); ok {
		r0 = v
	}
	var r1 *entity.Session
	if v, ok := args.Get(1).(*entity.Session); ok {
		r1 = v
	}
	return r0, r1, args.Error(2)
}

// SignInWithPassword provides a mock function
func (m *MockIdentityProvider) SignInWithPassword(ctx context.Context, email string, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	var r0 *entity.Session
	if v, ok := args.Get(0).(*entity.Session); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// SignOut provides a mock function
func (m *MockIdentityProvider) SignOut(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// SessionActive provides a mock function
func (m *MockIdentityProvider) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

// Authenticate provides a mock function
func (m *MockIdentityProvider) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	var r0 *entity.Session
	if v, ok := args.Get(0).(*entity.Session); ok {
		r0 = v
	}
	return r0, args.Error(1)
}
