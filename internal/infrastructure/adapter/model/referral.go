package model

import (
	"time"
)

// Referral is the edge between a referrer and the account it brought in
type Referral struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	ReferrerID string    `gorm:"not null;type:varchar(36);index"`
	ReferredID string    `gorm:"not null;type:varchar(36);uniqueIndex"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"not null"`

	Referrer Account `gorm:"foreignKey:ReferrerID;references:ID"`
}

// TableName specifies the table name for Referral
func (Referral) TableName() string {
	return "referrals"
}

// Commission is an immutable commission earned by a referrer
type Commission struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	ReferrerID     string    `gorm:"not null;type:varchar(36);index"`
	ReferredID     string    `gorm:"not null;type:varchar(36)"`
	Amount         int64     `gorm:"not null"`
	CommissionType string    `gorm:"not null;size:50"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Commission
func (Commission) TableName() string {
	return "commissions"
}
