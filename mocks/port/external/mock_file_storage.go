package external

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockFileStorage is a testify mock for external.FileStorage
type MockFileStorage struct {
	mock.Mock
}

// NewMockFileStorage creates a mock and registers expectation checks on cleanup
func NewMockFileStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFileStorage {
	m := &MockFileStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Upload provides a mock function
func (m *MockFileStorage) Upload(ctx context.Context, objectPath string, content io.Reader) (string, error) {
	args := m.Called(ctx, objectPath, content)
	return args.String(0), args.Error(1)
}
