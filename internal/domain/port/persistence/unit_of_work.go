package persistence

import (
	"context"
)

// Repositories groups the repositories that take part in a unit of work.
// Outside a transaction the same struct gives plain access to storage.
type Repositories struct {
	Accounts        AccountRepository
	Balances        BalanceRepository
	Adjustments     BalanceAdjustmentRepository
	Referrals       ReferralRepository
	Proofs          PaymentProofRepository
	GatewayPayments GatewayPaymentRepository
	Withdrawals     WithdrawalRepository
}

// UnitOfWork coordinates operations across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Within runs fn inside a database transaction. Repositories handed to fn are
	// bound to that transaction. The transaction is committed when fn returns nil
	// and rolled back otherwise.
	Within(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
