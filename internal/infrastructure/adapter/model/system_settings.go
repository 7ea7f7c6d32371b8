package model

import (
	"time"
)

// SystemSettingsID is the primary key of the singleton settings row
const SystemSettingsID = 1

// SystemSettings is the singleton row of admin-editable configuration
type SystemSettings struct {
	ID                   uint   `gorm:"primaryKey"`
	ReferralCommission   int64  `gorm:"not null;default:50000"`
	RegistrationFee      int64  `gorm:"not null"`
	RegistrationCurrency string `gorm:"not null;size:3"`
	GatewayPublicKey     string `gorm:"size:255"`
	GatewaySecretKey     string `gorm:"size:255"`
	WalletName           string `gorm:"size:100"`
	WalletAddress        string `gorm:"size:255"`
	WalletAmount         string `gorm:"size:50"`
	SMTPHost             string `gorm:"column:smtp_host;size:255"`
	SMTPPort             int    `gorm:"column:smtp_port"`
	SMTPUser             string `gorm:"column:smtp_user;size:255"`
	SMTPPassword         string `gorm:"column:smtp_password;size:255"`
	SMTPFrom             string `gorm:"column:smtp_from;size:255"`
	AdminEmail           string `gorm:"size:255"`
	UpdatedAt            time.Time
}

// TableName specifies the table name for SystemSettings
func (SystemSettings) TableName() string {
	return "system_settings"
}
