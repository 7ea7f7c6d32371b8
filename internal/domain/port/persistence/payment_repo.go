package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// PaymentProofRepository stores crypto payment proofs
type PaymentProofRepository interface {
	Create(ctx context.Context, proof *entity.PaymentProof) error

	// GetForUpdate retrieves a proof and locks the row
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the proof doesn't exist
	GetForUpdate(ctx context.Context, id string) (*entity.PaymentProof, error)

	Update(ctx context.Context, proof *entity.PaymentProof) error
}

// GatewayPaymentRepository stores hosted checkout references
type GatewayPaymentRepository interface {
	// Create inserts an initiated checkout
	//
	// Possible errors:
	// - ErrDuplicateRecord: If the reference already exists
	Create(ctx context.Context, payment *entity.GatewayPayment) error

	// GetByReference retrieves a checkout
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the reference is unknown
	GetByReference(ctx context.Context, reference string) (*entity.GatewayPayment, error)

	// GetForUpdate retrieves a checkout and locks the row
	GetForUpdate(ctx context.Context, reference string) (*entity.GatewayPayment, error)

	Update(ctx context.Context, payment *entity.GatewayPayment) error
}
