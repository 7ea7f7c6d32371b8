package migration

import (
	"context"

	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes that struct tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// Review queue of the back-office
		name: "idx_payment_proofs_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_payment_proofs_pending
			ON payment_proofs (created_at) WHERE status = 'pending'`,
	},
	{
		name: "idx_withdrawals_open",
		sql: `CREATE INDEX IF NOT EXISTS idx_withdrawals_open
			ON withdrawals (request_date) WHERE status IN ('pending', 'approved')`,
	},
	{
		name: "idx_accounts_needs_review",
		sql: `CREATE INDEX IF NOT EXISTS idx_accounts_needs_review
			ON accounts (created_at) WHERE needs_review = TRUE`,
	},
	{
		// One verified checkout per account
		name: "idx_gateway_payments_verified_user",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_gateway_payments_verified_user
			ON gateway_payments (user_id) WHERE status = 'verified'`,
	},
	{
		name: "idx_accounts_email_lower",
		sql:  `CREATE INDEX IF NOT EXISTS idx_accounts_email_lower ON accounts (LOWER(email))`,
	},
	{
		name: "idx_commissions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_commissions_created_at_brin
			ON commissions USING BRIN (created_at) WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates partial and expression indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, index := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(index.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": index.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}
