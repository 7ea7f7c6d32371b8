package account

import (
	"context"
	"errors"
	"testing"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	session := &entity.Session{ID: "sess-1", UserID: "u-1", Email: "ada@example.com"}

	t.Run("Paid account keeps the session", func(t *testing.T) {
		f := newFixture(t)
		f.identity.On("SignInWithPassword", mock.Anything, "ada@example.com", "pw").Return(session, nil).Once()
		f.accounts.On("GetByID", mock.Anything, "u-1").Return(&entity.Account{ID: "u-1", Paid: true, FullName: "Ada"}, nil).Once()

		result, err := f.useCase.Login(ctx, " ADA@example.com", "pw")

		require.NoError(t, err)
		assert.Equal(t, session, result.Session)
		assert.Equal(t, "Ada", result.Account.FullName)
		f.identity.AssertNotCalled(t, "SignOut", mock.Anything, mock.Anything)
	})

	t.Run("Invalid credentials propagate unchanged", func(t *testing.T) {
		f := newFixture(t)
		f.identity.On("SignInWithPassword", mock.Anything, mock.Anything, mock.Anything).Return(nil, errs.ErrInvalidCredentials).Once()

		_, err := f.useCase.Login(ctx, "ada@example.com", "bad")

		assert.Equal(t, errs.ErrInvalidCredentials, err)
	})

	t.Run("Unpaid account is signed out", func(t *testing.T) {
		f := newFixture(t)
		f.identity.On("SignInWithPassword", mock.Anything, mock.Anything, mock.Anything).Return(session, nil).Once()
		f.accounts.On("GetByID", mock.Anything, "u-1").Return(&entity.Account{ID: "u-1", Paid: false}, nil).Once()
		f.identity.On("SignOut", mock.Anything, "sess-1").Return(nil).Once()

		result, err := f.useCase.Login(ctx, "ada@example.com", "pw")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUnpaidAccount)
		assert.Contains(t, err.Error(), "24-48 hours")
	})

	t.Run("Unpaid account error survives a failing sign out", func(t *testing.T) {
		f := newFixture(t)
		f.identity.On("SignInWithPassword", mock.Anything, mock.Anything, mock.Anything).Return(session, nil).Once()
		f.accounts.On("GetByID", mock.Anything, "u-1").Return(&entity.Account{ID: "u-1"}, nil).Once()
		f.identity.On("SignOut", mock.Anything, "sess-1").Return(errors.New("redis down")).Once()

		_, err := f.useCase.Login(ctx, "ada@example.com", "pw")

		assert.ErrorIs(t, err, errs.ErrUnpaidAccount)
	})

	t.Run("Profile lookup failure signs out", func(t *testing.T) {
		f := newFixture(t)
		f.identity.On("SignInWithPassword", mock.Anything, mock.Anything, mock.Anything).Return(session, nil).Once()
		f.accounts.On("GetByID", mock.Anything, "u-1").Return(nil, errs.ErrDatabaseConnection).Once()
		f.identity.On("SignOut", mock.Anything, "sess-1").Return(nil).Once()

		_, err := f.useCase.Login(ctx, "ada@example.com", "pw")

		assert.ErrorIs(t, err, errs.ErrProfileUnavailable)
	})
}

func TestLogoutAndSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.identity.On("SignOut", mock.Anything, "sess-1").Return(nil).Once()
	f.identity.On("SessionActive", mock.Anything, "sess-1").Return(false, nil).Once()

	require.NoError(t, f.useCase.Logout(ctx, "sess-1"))
	active, err := f.useCase.SessionActive(ctx, "sess-1")

	require.NoError(t, err)
	assert.False(t, active)
}
