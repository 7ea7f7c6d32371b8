package repository

import (
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewRepositories builds every repository over the same connection or transaction
func NewRepositories(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) persistence.Repositories {
	return persistence.Repositories{
		Accounts:        NewAccountRepository(db, logger),
		Balances:        NewBalanceRepository(db, timeProvider, logger),
		Adjustments:     NewBalanceAdjustmentRepository(db, logger),
		Referrals:       NewReferralRepository(db, logger),
		Proofs:          NewPaymentProofRepository(db, logger),
		GatewayPayments: NewGatewayPaymentRepository(db, logger),
		Withdrawals:     NewWithdrawalRepository(db, logger),
	}
}

// forUpdate locks selected rows until the surrounding transaction ends
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
