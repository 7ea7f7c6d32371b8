package usecase

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// PaymentReviewResult is a proof after an admin decision
type PaymentReviewResult struct {
	Proof   *entity.PaymentProof
	Changed bool
}

// WithdrawalUpdateResult is a withdrawal after an admin status change
type WithdrawalUpdateResult struct {
	Withdrawal *entity.Withdrawal
	Changed    bool
}

// AdminUseCase groups back-office operations
type AdminUseCase interface {
	UpdatePaymentStatus(ctx context.Context, paymentID string, status entity.ProofStatus, adminID string) (*PaymentReviewResult, error)
	UpdateWithdrawalStatus(ctx context.Context, withdrawalID string, status entity.WithdrawalStatus, adminID string) (*WithdrawalUpdateResult, error)

	// UpdateUserBalance overwrites the available balance
	UpdateUserBalance(ctx context.Context, userID string, amount string, adminID string) (*entity.Balance, error)

	// GetSettings returns settings with secrets masked
	GetSettings(ctx context.Context) (entity.SystemSettings, error)
	UpdateSettings(ctx context.Context, settings entity.SystemSettings) (entity.SystemSettings, error)
}
