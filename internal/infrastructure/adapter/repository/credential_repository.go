package repository

import (
	"context"
	"errors"
	"time"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Credential is a stored login record
type Credential struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// CredentialRepository stores identity provider credentials
type CredentialRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewCredentialRepository creates a new CredentialRepository instance
func NewCredentialRepository(db *gorm.DB, logger coreport.Logger) *CredentialRepository {
	return &CredentialRepository{db: db, logger: logger, errorMapper: NewErrorMapper()}
}

// Create inserts a credential. Emails are stored normalized.
//
// Possible errors:
// - ErrEmailTaken: If the email is already registered
func (r *CredentialRepository) Create(ctx context.Context, c *Credential) error {
	row := model.Credential{
		ID:           c.ID,
		Email:        entity.NormalizeEmail(c.Email),
		PasswordHash: c.PasswordHash,
		CreatedAt:    c.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		mapped := r.errorMapper.MapError(err, EntityTypeCredential)
		if errors.Is(mapped, errs.ErrDuplicateRecord) {
			return errs.ErrEmailTaken
		}
		r.logger.Error("Database error when creating credential", map[string]any{"error": err.Error()})
		return mapped
	}
	return nil
}

// GetByEmail looks a credential up case-insensitively
//
// Possible errors:
// - ErrNotFound: If no credential has the email
func (r *CredentialRepository) GetByEmail(ctx context.Context, email string) (*Credential, error) {
	var m model.Credential
	if err := r.db.WithContext(ctx).First(&m, "email = ?", entity.NormalizeEmail(email)).Error; err != nil {
		return nil, r.errorMapper.MapError(err, EntityTypeCredential)
	}
	return &Credential{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}, nil
}
