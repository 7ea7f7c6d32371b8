package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PasswordHasher turns a plaintext password into a stored hash
type PasswordHasher func(password string) (string, error)

// SeedData is written on first boot and never overwrites existing rows
type SeedData struct {
	AdminEmail    string
	AdminPassword string
	Settings      entity.SystemSettings
}

// Seeder writes first-boot data
type Seeder struct {
	db           *gorm.DB
	hash         PasswordHasher
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewSeeder creates a new seeder
func NewSeeder(db *gorm.DB, hash PasswordHasher, logger coreport.Logger, timeProvider coreport.TimeProvider) *Seeder {
	return &Seeder{db: db, hash: hash, logger: logger, timeProvider: timeProvider}
}

// Seed creates the settings row and the first admin account when missing
func (s *Seeder) Seed(ctx context.Context, data SeedData) error {
	if err := s.seedSettings(ctx, data.Settings); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if data.AdminEmail == "" {
		return nil
	}
	if err := s.seedAdmin(ctx, data.AdminEmail, data.AdminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func (s *Seeder) seedSettings(ctx context.Context, settings entity.SystemSettings) error {
	row := model.SystemSettings{
		ID:                   model.SystemSettingsID,
		ReferralCommission:   settings.ReferralCommission,
		RegistrationFee:      settings.RegistrationFee,
		RegistrationCurrency: settings.RegistrationCurrency,
		WalletName:           settings.WalletName,
		WalletAddress:        settings.WalletAddress,
		AdminEmail:           settings.AdminEmail,
		UpdatedAt:            s.timeProvider.Now(),
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		s.logger.Info("System settings seeded", map[string]any{
			"registration_fee":      entity.FormatAmount(settings.RegistrationFee),
			"registration_currency": settings.RegistrationCurrency,
		})
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, email, password string) error {
	email = entity.NormalizeEmail(email)

	var existing model.Credential
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if len(password) < 8 {
		return errors.New("admin password must be at least 8 characters")
	}

	hash, err := s.hash(password)
	if err != nil {
		return err
	}

	now := s.timeProvider.Now()
	id := uuid.NewString()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.Credential{ID: id, Email: email, PasswordHash: hash, CreatedAt: now}).Error; err != nil {
			return err
		}
		account := model.Account{
			ID:            id,
			Email:         email,
			FullName:      "Administrator",
			PaymentMethod: string(entity.PaymentMethodGateway),
			Paid:          true,
			Role:          string(entity.RoleAdmin),
			AgreedToTerms: true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&model.Balance{UserID: id, UpdatedAt: now}).Error; err != nil {
			return err
		}

		s.logger.Info("Admin account seeded", map[string]any{"email": email, "user_id": id})
		return nil
	})
}
