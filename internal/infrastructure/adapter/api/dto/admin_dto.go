package dto

import (
	"time"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
)

// StatusUpdateRequest changes the status of a proof or withdrawal
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// BalanceUpdateRequest overwrites a user's available balance
type BalanceUpdateRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// SettingsPayload represents the system settings. Money fields are decimal strings.
type SettingsPayload struct {
	ReferralCommission   string    `json:"referralCommission"`
	RegistrationFee      string    `json:"registrationFee"`
	RegistrationCurrency string    `json:"registrationCurrency"`
	GatewayPublicKey     string    `json:"gatewayPublicKey"`
	GatewaySecretKey     string    `json:"gatewaySecretKey"`
	WalletName           string    `json:"walletName"`
	WalletAddress        string    `json:"walletAddress"`
	WalletAmount         string    `json:"walletAmount"`
	SMTPHost             string    `json:"smtpHost"`
	SMTPPort             int       `json:"smtpPort"`
	SMTPUser             string    `json:"smtpUser"`
	SMTPPassword         string    `json:"smtpPassword"`
	SMTPFrom             string    `json:"smtpFrom"`
	AdminEmail           string    `json:"adminEmail"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// NewSettingsPayload converts settings
func NewSettingsPayload(s entity.SystemSettings) SettingsPayload {
	return SettingsPayload{
		ReferralCommission:   entity.FormatAmount(s.ReferralCommission),
		RegistrationFee:      entity.FormatAmount(s.RegistrationFee),
		RegistrationCurrency: s.RegistrationCurrency,
		GatewayPublicKey:     s.GatewayPublicKey,
		GatewaySecretKey:     s.GatewaySecretKey,
		WalletName:           s.WalletName,
		WalletAddress:        s.WalletAddress,
		WalletAmount:         s.WalletAmount,
		SMTPHost:             s.SMTPHost,
		SMTPPort:             s.SMTPPort,
		SMTPUser:             s.SMTPUser,
		SMTPPassword:         s.SMTPPassword,
		SMTPFrom:             s.SMTPFrom,
		AdminEmail:           s.AdminEmail,
		UpdatedAt:            s.UpdatedAt,
	}
}

// ToEntity parses the money fields
func (p SettingsPayload) ToEntity() (entity.SystemSettings, error) {
	commission, err := entity.ParseAmount(p.ReferralCommission)
	if err != nil {
		return entity.SystemSettings{}, errs.NewValidationError("referralCommission", err.Error())
	}
	fee, err := entity.ParseAmount(p.RegistrationFee)
	if err != nil {
		return entity.SystemSettings{}, errs.NewValidationError("registrationFee", err.Error())
	}

	return entity.SystemSettings{
		ReferralCommission:   commission,
		RegistrationFee:      fee,
		RegistrationCurrency: p.RegistrationCurrency,
		GatewayPublicKey:     p.GatewayPublicKey,
		GatewaySecretKey:     p.GatewaySecretKey,
		WalletName:           p.WalletName,
		WalletAddress:        p.WalletAddress,
		WalletAmount:         p.WalletAmount,
		SMTPHost:             p.SMTPHost,
		SMTPPort:             p.SMTPPort,
		SMTPUser:             p.SMTPUser,
		SMTPPassword:         p.SMTPPassword,
		SMTPFrom:             p.SMTPFrom,
		AdminEmail:           p.AdminEmail,
	}, nil
}
