package repository

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository implements persistence.SettingsRepository using GORM
type SettingsRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewSettingsRepository creates a new SettingsRepository instance
func NewSettingsRepository(db *gorm.DB, logger coreport.Logger) *SettingsRepository {
	return &SettingsRepository{db: db, logger: logger, errorMapper: NewErrorMapper()}
}

// settingsToModel converts settings to the singleton row
func settingsToModel(s *entity.SystemSettings) *model.SystemSettings {
	return &model.SystemSettings{
		ID:                   model.SystemSettingsID,
		ReferralCommission:   s.ReferralCommission,
		RegistrationFee:      s.RegistrationFee,
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

func settingsToEntity(m *model.SystemSettings) *entity.SystemSettings {
	return &entity.SystemSettings{
		ReferralCommission:   m.ReferralCommission,
		RegistrationFee:      m.RegistrationFee,
		RegistrationCurrency: m.RegistrationCurrency,
		GatewayPublicKey:     m.GatewayPublicKey,
		GatewaySecretKey:     m.GatewaySecretKey,
		WalletName:           m.WalletName,
		WalletAddress:        m.WalletAddress,
		WalletAmount:         m.WalletAmount,
		SMTPHost:             m.SMTPHost,
		SMTPPort:             m.SMTPPort,
		SMTPUser:             m.SMTPUser,
		SMTPPassword:         m.SMTPPassword,
		SMTPFrom:             m.SMTPFrom,
		AdminEmail:           m.AdminEmail,
		UpdatedAt:            m.UpdatedAt,
	}
}

// Get returns the settings row
func (r *SettingsRepository) Get(ctx context.Context) (*entity.SystemSettings, error) {
	var m model.SystemSettings
	if err := r.db.WithContext(ctx).First(&m, "id = ?", model.SystemSettingsID).Error; err != nil {
		mapped := r.errorMapper.MapError(err, EntityTypeSettings)
		r.logger.Warn("Failed to load system settings", map[string]any{"error": err.Error()})
		return nil, mapped
	}
	return settingsToEntity(&m), nil
}

// Save upserts the settings row
func (r *SettingsRepository) Save(ctx context.Context, settings *entity.SystemSettings) error {
	row := settingsToModel(settings)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(row).Error
	if err != nil {
		r.logger.Error("Database error when saving system settings", map[string]any{"error": err.Error()})
		return r.errorMapper.MapError(err, EntityTypeSettings)
	}

	r.logger.Info("System settings saved", map[string]any{
		"registration_fee":      entity.FormatAmount(settings.RegistrationFee),
		"registration_currency": settings.RegistrationCurrency,
		"referral_commission":   entity.FormatAmount(settings.ReferralCommission),
	})
	return nil
}
