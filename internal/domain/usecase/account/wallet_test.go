package account

import (
	"context"
	"errors"
	"testing"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns ledger with history", func(t *testing.T) {
		f := newFixture(t)
		f.balances.On("GetByUserID", mock.Anything, "u-1").Return(&entity.Balance{UserID: "u-1", Available: 50000}, nil).Once()
		f.adjustments.On("ListByUser", mock.Anything, "u-1", recentAdjustmentsLimit).
			Return([]*entity.BalanceAdjustment{{ID: "a-1", Delta: 50000}}, nil).Once()

		view, err := f.useCase.GetBalance(ctx, "u-1")

		require.NoError(t, err)
		assert.Equal(t, int64(50000), view.Balance.Available)
		assert.Len(t, view.Recent, 1)
	})

	t.Run("History failure still returns the ledger", func(t *testing.T) {
		f := newFixture(t)
		f.balances.On("GetByUserID", mock.Anything, "u-1").Return(&entity.Balance{UserID: "u-1"}, nil).Once()
		f.adjustments.On("ListByUser", mock.Anything, "u-1", recentAdjustmentsLimit).Return(nil, errors.New("timeout")).Once()

		view, err := f.useCase.GetBalance(ctx, "u-1")

		require.NoError(t, err)
		assert.Empty(t, view.Recent)
	})

	t.Run("Unknown account", func(t *testing.T) {
		f := newFixture(t)
		f.balances.On("GetByUserID", mock.Anything, "u-9").Return(nil, errs.ErrAccountNotFound).Once()

		_, err := f.useCase.GetBalance(ctx, "u-9")

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestRequestWithdrawal(t *testing.T) {
	ctx := context.Background()

	t.Run("Reserves funds and files a pending withdrawal", func(t *testing.T) {
		f := newFixture(t)
		f.balances.On("GetForUpdate", mock.Anything, "u-1").Return(&entity.Balance{UserID: "u-1", Available: 50000, Currency: "NGN"}, nil).Once()
		f.balances.On("Update", mock.Anything, mock.MatchedBy(func(b *entity.Balance) bool {
			return b.Available == 30000 && b.Pending == 20000
		})).Return(nil).Once()
		f.withdrawals.On("Create", mock.Anything, mock.MatchedBy(func(w *entity.Withdrawal) bool {
			return w.Amount == 20000 && w.Currency == "NGN" && w.Status == entity.WithdrawalPending
		})).Return(nil).Once()
		f.adjustments.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.BalanceAdjustment) bool {
			return a.Delta == -20000 && a.AvailableAfter == 30000 && a.Reason == entity.AdjustmentWithdrawalRequest
		})).Return(nil).Once()
		f.events.On("Publish", mock.Anything, coreport.SubjectWithdrawalUpdated, mock.Anything).Return(nil).Once()

		withdrawal, err := f.useCase.RequestWithdrawal(ctx, usecase.WithdrawalRequest{
			UserID:         "u-1",
			Amount:         "200.00",
			AccountDetails: "GTBank 0123456789",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(20000), withdrawal.Amount)
		assert.Equal(t, 1, f.uow.Commits)
	})

	t.Run("Insufficient balance rolls back", func(t *testing.T) {
		f := newFixture(t)
		f.balances.On("GetForUpdate", mock.Anything, "u-1").Return(&entity.Balance{UserID: "u-1", Available: 100}, nil).Once()

		_, err := f.useCase.RequestWithdrawal(ctx, usecase.WithdrawalRequest{
			UserID:         "u-1",
			Amount:         "5.00",
			AccountDetails: "bank",
		})

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, 1, f.uow.Rollbacks)
	})

	t.Run("Malformed amount", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.useCase.RequestWithdrawal(ctx, usecase.WithdrawalRequest{
			UserID:         "u-1",
			Amount:         "1.234",
			AccountDetails: "bank",
		})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, 0, f.uow.Calls)
	})
}
