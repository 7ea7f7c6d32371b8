package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// WithdrawalRepository stores payout requests
type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *entity.Withdrawal) error

	// GetForUpdate retrieves a withdrawal and locks the row
	//
	// Possible errors:
	// - ErrWithdrawalNotFound: If the withdrawal doesn't exist
	GetForUpdate(ctx context.Context, id string) (*entity.Withdrawal, error)

	Update(ctx context.Context, withdrawal *entity.Withdrawal) error
}
