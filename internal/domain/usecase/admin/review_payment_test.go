package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingProof() *entity.PaymentProof {
	return &entity.PaymentProof{
		ID:            "proof-1",
		UserID:        "user-1",
		WalletName:    "USDT (TRC20)",
		WalletAddress: "TXabc",
		ProofURL:      "https://files.example/payment-proofs/pending/user-1/a.png",
		Status:        entity.ProofStatusPending,
	}
}

func TestAdminUseCase_UpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Approval marks the account paid", func(t *testing.T) {
		f := newFixture(t)
		account := &entity.Account{ID: "user-1", NeedsReview: true}
		f.proofs.On("GetForUpdate", mock.Anything, "proof-1").Return(pendingProof(), nil).Once()
		f.proofs.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.PaymentProof) bool {
			return p.Status == entity.ProofStatusApproved && p.ReviewedBy == "admin-1"
		})).Return(nil).Once()
		f.accounts.On("GetByID", mock.Anything, "user-1").Return(account, nil).Once()
		f.accounts.On("Update", mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Paid && !a.NeedsReview
		})).Return(nil).Once()
		f.events.On("Publish", mock.Anything, coreport.SubjectPaymentReviewed, mock.Anything).Return(nil).Once()

		result, err := f.useCase.UpdatePaymentStatus(ctx, "proof-1", entity.ProofStatusApproved, "admin-1")

		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.Equal(t, entity.ProofStatusApproved, result.Proof.Status)
		assert.Equal(t, 1, f.uow.Commits)
	})

	t.Run("Rejection leaves the account untouched", func(t *testing.T) {
		f := newFixture(t)
		f.proofs.On("GetForUpdate", mock.Anything, "proof-1").Return(pendingProof(), nil).Once()
		f.proofs.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		f.events.On("Publish", mock.Anything, coreport.SubjectPaymentReviewed, mock.Anything).Return(nil).Once()

		result, err := f.useCase.UpdatePaymentStatus(ctx, "proof-1", entity.ProofStatusRejected, "admin-1")

		require.NoError(t, err)
		assert.True(t, result.Changed)
		f.accounts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Repeating the same decision is a no-op", func(t *testing.T) {
		f := newFixture(t)
		proof := pendingProof()
		proof.Status = entity.ProofStatusApproved
		f.proofs.On("GetForUpdate", mock.Anything, "proof-1").Return(proof, nil).Once()

		result, err := f.useCase.UpdatePaymentStatus(ctx, "proof-1", entity.ProofStatusApproved, "admin-1")

		require.NoError(t, err)
		assert.False(t, result.Changed)
		f.proofs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Reversing a decision is refused", func(t *testing.T) {
		f := newFixture(t)
		proof := pendingProof()
		proof.Status = entity.ProofStatusRejected
		f.proofs.On("GetForUpdate", mock.Anything, "proof-1").Return(proof, nil).Once()

		_, err := f.useCase.UpdatePaymentStatus(ctx, "proof-1", entity.ProofStatusApproved, "admin-1")

		assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, 1, f.uow.Rollbacks)
	})

	t.Run("Unknown status", func(t *testing.T) {
		f := newFixture(t)
		f.proofs.On("GetForUpdate", mock.Anything, "proof-1").Return(pendingProof(), nil).Once()

		_, err := f.useCase.UpdatePaymentStatus(ctx, "proof-1", entity.ProofStatus("pending"), "admin-1")

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Missing proof", func(t *testing.T) {
		f := newFixture(t)
		f.proofs.On("GetForUpdate", mock.Anything, "nope").Return(nil, errs.ErrPaymentNotFound).Once()

		_, err := f.useCase.UpdatePaymentStatus(ctx, "nope", entity.ProofStatusApproved, "admin-1")

		assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
	})

	t.Run("Account update failure rolls back", func(t *testing.T) {
		f := newFixture(t)
		f.proofs.On("GetForUpdate", mock.Anything, "proof-1").Return(pendingProof(), nil).Once()
		f.proofs.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		f.accounts.On("GetByID", mock.Anything, "user-1").Return(&entity.Account{ID: "user-1"}, nil).Once()
		f.accounts.On("Update", mock.Anything, mock.Anything).Return(errors.New("deadlock")).Once()

		_, err := f.useCase.UpdatePaymentStatus(ctx, "proof-1", entity.ProofStatusApproved, "admin-1")

		require.Error(t, err)
		assert.Equal(t, 1, f.uow.Rollbacks)
		f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}
