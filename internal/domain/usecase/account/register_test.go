package account

import (
	"context"
	"errors"
	"testing"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	usecasemocks "github.com/johnjerry8749/Affiliate-Academy-sub000/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates unpaid profile and empty ledger", func(t *testing.T) {
		f := newFixture(t)
		identity, session := signupSession("u-1")
		f.identity.On("SignUp", mock.Anything, "ada@example.com", "s3cret-pass", mock.Anything).Return(identity, session, nil).Once()
		f.accounts.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.ID == "u-1" && !a.Paid && a.Currency == "NGN" && a.Role == entity.RoleUser
		})).Return(nil).Once()
		f.balances.On("Create", mock.Anything, mock.MatchedBy(func(b *entity.Balance) bool {
			return b.UserID == "u-1" && b.Available == 0 && b.Currency == "NGN"
		})).Return(nil).Once()
		f.events.On("Publish", mock.Anything, coreport.SubjectAccountRegistered, mock.Anything).Return(nil).Once()

		result, err := f.useCase.Register(ctx, validRegistration())

		require.NoError(t, err)
		assert.Equal(t, "u-1", result.Account.ID)
		assert.Equal(t, session, result.Session)
		assert.Nil(t, result.Referral)
		assert.Equal(t, 1, f.uow.Commits)
	})

	t.Run("Validation failure makes no provider call", func(t *testing.T) {
		f := newFixture(t)
		req := validRegistration()
		req.AgreedToTerms = false
		req.Email = "nope"

		_, err := f.useCase.Register(ctx, req)

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "agreed_to_terms")
		assert.Contains(t, validationErr.Fields, "email")
		f.identity.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Duplicate email is returned unchanged", func(t *testing.T) {
		f := newFixture(t)
		f.identity.On("SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil, errs.ErrEmailTaken).Once()

		_, err := f.useCase.Register(ctx, validRegistration())

		assert.ErrorIs(t, err, errs.ErrEmailTaken)
		assert.Equal(t, 0, f.uow.Calls)
	})

	t.Run("Profile insert failure revokes the signup session", func(t *testing.T) {
		f := newFixture(t)
		identity, session := signupSession("u-1")
		f.identity.On("SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(identity, session, nil).Once()
		f.accounts.On("Create", mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		f.identity.On("SignOut", mock.Anything, session.ID).Return(nil).Once()

		_, err := f.useCase.Register(ctx, validRegistration())

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Equal(t, 1, f.uow.Rollbacks)
	})

	t.Run("Referral credits exactly 500.00 and records the commission", func(t *testing.T) {
		f := newFixture(t)
		f.allowEvents()
		identity, session := signupSession("u-2")
		f.identity.On("SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(identity, session, nil).Once()
		f.accounts.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.balances.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		f.accounts.On("GetByID", mock.Anything, "ref-1").Return(&entity.Account{ID: "ref-1", Paid: true}, nil).Once()
		f.referrals.On("CreateEdge", mock.Anything, mock.MatchedBy(func(e *entity.ReferralEdge) bool {
			return e.ReferrerID == "ref-1" && e.ReferredID == "u-2" && e.IsActive
		})).Return(nil).Once()
		f.referrals.On("CreateCommission", mock.Anything, mock.MatchedBy(func(c *entity.CommissionRecord) bool {
			return c.Amount == 50000 && c.CommissionType == "referral" && c.ReferrerID == "ref-1"
		})).Return(nil).Once()
		f.balances.On("Increment", mock.Anything, "ref-1", int64(50000), int64(50000)).
			Return(&entity.Balance{UserID: "ref-1", Available: 50000, TotalEarned: 50000}, nil).Once()
		f.adjustments.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.BalanceAdjustment) bool {
			return a.UserID == "ref-1" && a.Delta == 50000 && a.Reason == entity.AdjustmentReferralCommission && a.Reference == "u-2"
		})).Return(nil).Once()
		f.accounts.On("Update", mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.ID == "u-2" && a.ReferredBy == "ref-1"
		})).Return(nil).Once()

		req := validRegistration()
		req.ReferralCode = " ref-1 "
		result, err := f.useCase.Register(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, result.Referral)
		assert.False(t, result.Referral.Failed())
		assert.Equal(t, "ref-1", result.Account.ReferredBy)
		assert.Equal(t, 2, f.uow.Commits)
	})

	t.Run("Failing referral still registers the account", func(t *testing.T) {
		f := newFixture(t)
		f.allowEvents()
		identity, session := signupSession("u-3")
		f.identity.On("SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(identity, session, nil).Once()
		f.accounts.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.balances.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.accounts.On("GetByID", mock.Anything, "ghost").Return(nil, errs.ErrAccountNotFound).Once()

		req := validRegistration()
		req.ReferralCode = "ghost"
		result, err := f.useCase.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "u-3", result.Account.ID)
		require.NotNil(t, result.Referral)
		assert.True(t, result.Referral.Failed())
		assert.ErrorIs(t, result.Referral.Err, errs.ErrAccountNotFound)
		assert.Empty(t, result.Account.ReferredBy)
		assert.Equal(t, 1, f.uow.Rollbacks)
	})

	t.Run("Commission insert failure rolls back the whole credit", func(t *testing.T) {
		f := newFixture(t)
		f.allowEvents()
		identity, session := signupSession("u-4")
		f.identity.On("SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(identity, session, nil).Once()
		f.accounts.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.balances.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.accounts.On("GetByID", mock.Anything, "ref-1").Return(&entity.Account{ID: "ref-1"}, nil).Once()
		f.referrals.On("CreateEdge", mock.Anything, mock.Anything).Return(nil).Once()
		f.referrals.On("CreateCommission", mock.Anything, mock.Anything).Return(errors.New("deadlock")).Once()

		req := validRegistration()
		req.ReferralCode = "ref-1"
		result, err := f.useCase.Register(ctx, req)

		require.NoError(t, err)
		assert.True(t, result.Referral.Failed())
		f.balances.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Event publish failure is not surfaced", func(t *testing.T) {
		f := newFixture(t)
		identity, session := signupSession("u-5")
		f.identity.On("SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(identity, session, nil).Once()
		f.accounts.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.balances.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.events.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("nats down")).Once()

		_, err := f.useCase.Register(ctx, validRegistration())

		assert.NoError(t, err)
	})
}

func TestCommissionPolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("Fixed source", func(t *testing.T) {
		amount, err := NewCommissionPolicy(CommissionSourceFixed, 0, nil).Amount(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(50000), amount)
	})

	t.Run("Settings source", func(t *testing.T) {
		settings := usecasemocks.NewMockSettingsProvider(t)
		settings.On("Current", mock.Anything).Return(entity.SystemSettings{ReferralCommission: 75000}, nil).Once()

		amount, err := NewCommissionPolicy(CommissionSourceSettings, 50000, settings).Amount(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(75000), amount)
	})

	t.Run("Settings source without a configured value", func(t *testing.T) {
		settings := usecasemocks.NewMockSettingsProvider(t)
		settings.On("Current", mock.Anything).Return(entity.SystemSettings{}, nil).Once()

		amount, err := NewCommissionPolicy(CommissionSourceSettings, 50000, settings).Amount(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(50000), amount)
	})

	t.Run("Settings unavailable", func(t *testing.T) {
		settings := usecasemocks.NewMockSettingsProvider(t)
		settings.On("Current", mock.Anything).Return(entity.SystemSettings{}, errs.ErrSettingsNotFound).Once()

		_, err := NewCommissionPolicy(CommissionSourceSettings, 50000, settings).Amount(ctx)

		assert.ErrorIs(t, err, errs.ErrSettingsNotFound)
	})
}
