package model

import (
	"time"
)

// PaymentProof is a crypto transfer awaiting admin review
type PaymentProof struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	UserID          string    `gorm:"not null;type:varchar(36);index"`
	WalletName      string    `gorm:"size:100"`
	WalletAddress   string    `gorm:"size:255"`
	PaymentProofURL string    `gorm:"not null;type:text"`
	Status          string    `gorm:"not null;size:20;index"`
	ReviewedBy      string    `gorm:"type:varchar(36)"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for PaymentProof
func (PaymentProof) TableName() string {
	return "payment_proofs"
}

// GatewayPayment is the idempotency record of a hosted checkout
type GatewayPayment struct {
	Reference     string `gorm:"primaryKey;size:255"`
	Email         string `gorm:"not null;size:255"`
	UserID        string `gorm:"type:varchar(36);index"`
	ReferrerID    string `gorm:"type:varchar(36)"`
	Amount        int64  `gorm:"not null"`
	Currency      string `gorm:"not null;size:3"`
	Status        string `gorm:"not null;size:20;index"`
	GatewayStatus string `gorm:"size:50"`
	FailureReason string `gorm:"type:text"`
	VerifiedAt    *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GatewayPayment
func (GatewayPayment) TableName() string {
	return "gateway_payments"
}
