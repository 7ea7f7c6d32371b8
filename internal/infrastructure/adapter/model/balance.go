package model

import (
	"time"
)

// Balance represents the per-account ledger row. Amounts are in cents.
type Balance struct {
	UserID           string    `gorm:"primaryKey;type:varchar(36)"`
	AvailableBalance int64     `gorm:"not null;default:0;check:chk_balances_available,available_balance >= 0"`
	PendingBalance   int64     `gorm:"not null;default:0;check:chk_balances_pending,pending_balance >= 0"`
	TotalEarned      int64     `gorm:"not null;default:0"`
	TotalWithdrawn   int64     `gorm:"not null;default:0"`
	Currency         string    `gorm:"size:3"`
	UpdatedAt        time.Time `gorm:"not null"`

	Account Account `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Balance
func (Balance) TableName() string {
	return "balances"
}

// BalanceAdjustment is an append-only history row of signed balance changes
type BalanceAdjustment struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	UserID         string    `gorm:"not null;type:varchar(36);index:idx_adjustments_user_created,priority:1"`
	Delta          int64     `gorm:"not null"`
	AvailableAfter int64     `gorm:"not null"`
	Reason         string    `gorm:"not null;size:50"`
	Reference      string    `gorm:"size:255"`
	ActorID        string    `gorm:"type:varchar(36)"`
	CreatedAt      time.Time `gorm:"not null;index:idx_adjustments_user_created,priority:2,sort:desc"`
}

// TableName specifies the table name for BalanceAdjustment
func (BalanceAdjustment) TableName() string {
	return "balance_adjustments"
}
