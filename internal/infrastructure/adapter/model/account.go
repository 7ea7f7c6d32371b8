package model

import (
	"time"
)

// Account represents the database model for user profiles
type Account struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)"`
	Email         string    `gorm:"not null;size:255;index"`
	FullName      string    `gorm:"not null;size:255"`
	PhoneNumber   string    `gorm:"size:50"`
	Country       string    `gorm:"size:100"`
	Currency      string    `gorm:"size:3"`
	PaymentMethod string    `gorm:"not null;size:20"`
	Paid          bool      `gorm:"not null;default:false"`
	Role          string    `gorm:"not null;size:20;default:user"`
	AgreedToTerms bool      `gorm:"not null;default:false"`
	ReferredBy    *string   `gorm:"type:varchar(36);index"`
	NeedsReview   bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
