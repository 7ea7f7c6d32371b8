package model

import (
	"time"
)

// Credential is the identity provider's login record
type Credential struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"not null;size:255"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Credential
func (Credential) TableName() string {
	return "credentials"
}
