package model

import (
	"time"
)

// Withdrawal represents a payout request
type Withdrawal struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	UserID         string    `gorm:"not null;type:varchar(36);index"`
	Amount         int64     `gorm:"not null"`
	Currency       string    `gorm:"size:3"`
	Status         string    `gorm:"not null;size:20;index"`
	AccountDetails string    `gorm:"not null;type:text"`
	RequestDate    time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Withdrawal
func (Withdrawal) TableName() string {
	return "withdrawals"
}
