package repository

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

func accountToModel(account *entity.Account) *model.Account {
	var referredBy *string
	if account.ReferredBy != "" {
		ref := account.ReferredBy
		referredBy = &ref
	}
	return &model.Account{
		ID:            account.ID,
		Email:         account.Email,
		FullName:      account.FullName,
		PhoneNumber:   account.PhoneNumber,
		Country:       account.Country,
		Currency:      account.Currency,
		PaymentMethod: string(account.PaymentMethod),
		Paid:          account.Paid,
		Role:          string(account.Role),
		AgreedToTerms: account.AgreedToTerms,
		ReferredBy:    referredBy,
		NeedsReview:   account.NeedsReview,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}

func accountToEntity(m *model.Account) *entity.Account {
	account := &entity.Account{
		ID:            m.ID,
		Email:         m.Email,
		FullName:      m.FullName,
		PhoneNumber:   m.PhoneNumber,
		Country:       m.Country,
		Currency:      m.Currency,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Paid:          m.Paid,
		Role:          entity.Role(m.Role),
		AgreedToTerms: m.AgreedToTerms,
		NeedsReview:   m.NeedsReview,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.ReferredBy != nil {
		account.ReferredBy = *m.ReferredBy
	}
	return account
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, accountID string) error {
	mapped := r.errorMapper.MapError(err, EntityTypeAccount)
	if errs.IsNotFoundError(mapped) {
		r.logger.Debug("Account not found", map[string]any{"user_id": accountID})
		return mapped
	}

	r.logger.Error("Database error when "+operation, map[string]any{
		"user_id": accountID,
		"error":   err.Error(),
	})
	return mapped
}

// Create inserts a profile
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).Create(accountToModel(account))
	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, account.ID)
	}

	r.logger.Debug("Account created", map[string]any{
		"user_id":        account.ID,
		"payment_method": string(account.PaymentMethod),
	})
	return nil
}

// GetByID retrieves a profile
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	var m model.Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, r.handleDatabaseError("getting account", err, id)
	}
	return accountToEntity(&m), nil
}

// Update saves the mutable profile flags
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	var referredBy any
	if account.ReferredBy != "" {
		referredBy = account.ReferredBy
	}

	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"paid":         account.Paid,
			"needs_review": account.NeedsReview,
			"role":         string(account.Role),
			"referred_by":  referredBy,
			"updated_at":   account.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating account", result.Error, account.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Account not found during update", map[string]any{"user_id": account.ID})
		return errs.ErrAccountNotFound
	}
	return nil
}
