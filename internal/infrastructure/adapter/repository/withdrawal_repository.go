package repository

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// WithdrawalRepository implements persistence.WithdrawalRepository using GORM
type WithdrawalRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewWithdrawalRepository creates a new WithdrawalRepository instance
func NewWithdrawalRepository(db *gorm.DB, logger coreport.Logger) *WithdrawalRepository {
	return &WithdrawalRepository{db: db, logger: logger, errorMapper: NewErrorMapper()}
}

func withdrawalToEntity(m *model.Withdrawal) *entity.Withdrawal {
	return &entity.Withdrawal{
		ID:             m.ID,
		UserID:         m.UserID,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Status:         entity.WithdrawalStatus(m.Status),
		AccountDetails: m.AccountDetails,
		RequestDate:    m.RequestDate,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *WithdrawalRepository) handleDatabaseError(operation string, err error, id string) error {
	mapped := r.errorMapper.MapError(err, EntityTypeWithdrawal)
	if !errs.IsNotFoundError(mapped) {
		r.logger.Error("Database error when "+operation, map[string]any{
			"withdrawal_id": id,
			"error":         err.Error(),
		})
	}
	return mapped
}

// Create inserts a pending withdrawal
func (r *WithdrawalRepository) Create(ctx context.Context, w *entity.Withdrawal) error {
	row := model.Withdrawal{
		ID:             w.ID,
		UserID:         w.UserID,
		Amount:         w.Amount,
		Currency:       w.Currency,
		Status:         string(w.Status),
		AccountDetails: w.AccountDetails,
		RequestDate:    w.RequestDate,
		UpdatedAt:      w.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.handleDatabaseError("creating withdrawal", err, w.ID)
	}
	return nil
}

// GetForUpdate retrieves a withdrawal and locks the row
func (r *WithdrawalRepository) GetForUpdate(ctx context.Context, id string) (*entity.Withdrawal, error) {
	var m model.Withdrawal
	if err := forUpdate(r.db.WithContext(ctx)).First(&m, "id = ?", id).Error; err != nil {
		return nil, r.handleDatabaseError("locking withdrawal", err, id)
	}
	return withdrawalToEntity(&m), nil
}

// Update saves the status
func (r *WithdrawalRepository) Update(ctx context.Context, w *entity.Withdrawal) error {
	result := r.db.WithContext(ctx).Model(&model.Withdrawal{}).
		Where("id = ?", w.ID).
		Updates(map[string]any{
			"status":     string(w.Status),
			"updated_at": w.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating withdrawal", result.Error, w.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrWithdrawalNotFound
	}
	return nil
}
