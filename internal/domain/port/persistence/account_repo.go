package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// AccountRepository stores account profiles
type AccountRepository interface {
	// Create inserts a profile keyed by the identity id
	//
	// Possible errors:
	// - ErrDuplicateRecord: If a profile with the same id already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// GetByID retrieves a profile
	//
	// Possible errors:
	// - ErrAccountNotFound: If the profile doesn't exist
	GetByID(ctx context.Context, id string) (*entity.Account, error)

	// Update saves the mutable profile flags (paid, needs_review, role)
	Update(ctx context.Context, account *entity.Account) error
}
