package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// ReferralRepository stores referral edges and the commissions they produce
type ReferralRepository interface {
	// CreateEdge inserts a referral edge
	//
	// Possible errors:
	// - ErrDuplicateRecord: If the referred account already has a referrer
	// - ErrConstraintViolation: If the referrer doesn't exist
	CreateEdge(ctx context.Context, edge *entity.ReferralEdge) error

	// CreateCommission inserts an immutable commission record
	CreateCommission(ctx context.Context, record *entity.CommissionRecord) error
}
