package entity

import (
	"strings"
	"time"
)

const maskedSecret = "********"

// SystemSettings is the singleton configuration row edited from the back-office
type SystemSettings struct {
	ReferralCommission   int64
	RegistrationFee      int64
	RegistrationCurrency string
	GatewayPublicKey     string
	GatewaySecretKey     string
	WalletName           string
	WalletAddress        string
	WalletAmount         string
	SMTPHost             string
	SMTPPort             int
	SMTPUser             string
	SMTPPassword         string
	SMTPFrom             string
	AdminEmail           string
	UpdatedAt            time.Time
}

// Masked returns a copy safe to send to clients
func (s SystemSettings) Masked() SystemSettings {
	s.GatewaySecretKey = maskSecret(s.GatewaySecretKey)
	s.SMTPPassword = maskSecret(s.SMTPPassword)
	return s
}

// MergeSecrets keeps stored secrets when an update carries the masked placeholder or nothing
func (s SystemSettings) MergeSecrets(stored SystemSettings) SystemSettings {
	if s.GatewaySecretKey == "" || s.GatewaySecretKey == maskedSecret {
		s.GatewaySecretKey = stored.GatewaySecretKey
	}
	if s.SMTPPassword == "" || s.SMTPPassword == maskedSecret {
		s.SMTPPassword = stored.SMTPPassword
	}
	return s
}

// MailConfigured reports whether enough SMTP settings exist to send mail
func (s SystemSettings) MailConfigured() bool {
	return strings.TrimSpace(s.SMTPHost) != "" && s.SMTPPort > 0 && strings.TrimSpace(s.AdminEmail) != ""
}

func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	return maskedSecret
}
