package external

import "context"

// Verification is the gateway's view of a charge
type Verification struct {
	Reference string
	Status    string
	Amount    int64 // Minor units
	Currency  string
}

// PaymentGateway is a hosted card-payment checkout
type PaymentGateway interface {
	// Initialize opens a hosted checkout and returns the URL the payer is sent to
	Initialize(ctx context.Context, secretKey, email string, amount int64, currency, reference string) (string, error)

	// Verify asks the gateway for the current state of a reference
	Verify(ctx context.Context, secretKey, reference string) (*Verification, error)
}
