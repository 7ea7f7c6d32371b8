package repository

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceRepository implements persistence.BalanceRepository using GORM
type BalanceRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

// NewBalanceRepository creates a new BalanceRepository instance
func NewBalanceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

func balanceToEntity(m *model.Balance) *entity.Balance {
	return &entity.Balance{
		UserID:         m.UserID,
		Available:      m.AvailableBalance,
		Pending:        m.PendingBalance,
		TotalEarned:    m.TotalEarned,
		TotalWithdrawn: m.TotalWithdrawn,
		Currency:       m.Currency,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *BalanceRepository) handleDatabaseError(operation string, err error, userID string) error {
	mapped := r.errorMapper.MapError(err, EntityTypeBalance)
	if !errs.IsNotFoundError(mapped) {
		r.logger.Error("Database error when "+operation, map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
	return mapped
}

// Create inserts the ledger row for a new account
func (r *BalanceRepository) Create(ctx context.Context, balance *entity.Balance) error {
	row := model.Balance{
		UserID:           balance.UserID,
		AvailableBalance: balance.Available,
		PendingBalance:   balance.Pending,
		TotalEarned:      balance.TotalEarned,
		TotalWithdrawn:   balance.TotalWithdrawn,
		Currency:         balance.Currency,
		UpdatedAt:        balance.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return r.handleDatabaseError("creating balance", err, balance.UserID)
	}
	return nil
}

// GetByUserID retrieves a ledger
func (r *BalanceRepository) GetByUserID(ctx context.Context, userID string) (*entity.Balance, error) {
	var m model.Balance
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		return nil, r.handleDatabaseError("getting balance", err, userID)
	}
	return balanceToEntity(&m), nil
}

// GetForUpdate retrieves a ledger and locks the row
func (r *BalanceRepository) GetForUpdate(ctx context.Context, userID string) (*entity.Balance, error) {
	var m model.Balance
	if err := forUpdate(r.db.WithContext(ctx)).First(&m, "user_id = ?", userID).Error; err != nil {
		return nil, r.handleDatabaseError("locking balance", err, userID)
	}
	return balanceToEntity(&m), nil
}

// Update saves all ledger buckets
func (r *BalanceRepository) Update(ctx context.Context, balance *entity.Balance) error {
	result := r.db.WithContext(ctx).Model(&model.Balance{}).
		Where("user_id = ?", balance.UserID).
		Updates(map[string]any{
			"available_balance": balance.Available,
			"pending_balance":   balance.Pending,
			"total_earned":      balance.TotalEarned,
			"total_withdrawn":   balance.TotalWithdrawn,
			"updated_at":        balance.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating balance", result.Error, balance.UserID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}

	r.logger.Debug("Balance updated", map[string]any{
		"user_id":   balance.UserID,
		"available": entity.FormatAmount(balance.Available),
		"pending":   entity.FormatAmount(balance.Pending),
	})
	return nil
}

// Increment adds to available_balance and total_earned in a single statement
// so concurrent credits never lose an update
func (r *BalanceRepository) Increment(ctx context.Context, userID string, availableDelta, earnedDelta int64) (*entity.Balance, error) {
	var m model.Balance
	result := r.db.WithContext(ctx).Model(&m).
		Clauses(clause.Returning{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"available_balance": gorm.Expr("available_balance + ?", availableDelta),
			"total_earned":      gorm.Expr("total_earned + ?", earnedDelta),
			"updated_at":        r.timeProvider.Now(),
		})

	if result.Error != nil {
		return nil, r.handleDatabaseError("incrementing balance", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Balance not found during increment", map[string]any{"user_id": userID})
		return nil, errs.ErrAccountNotFound
	}

	r.logger.Debug("Balance incremented", map[string]any{
		"user_id":         userID,
		"available_delta": entity.FormatAmount(availableDelta),
		"available":       entity.FormatAmount(m.AvailableBalance),
	})
	return balanceToEntity(&m), nil
}

// BalanceAdjustmentRepository implements persistence.BalanceAdjustmentRepository using GORM
type BalanceAdjustmentRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewBalanceAdjustmentRepository creates a new BalanceAdjustmentRepository instance
func NewBalanceAdjustmentRepository(db *gorm.DB, logger coreport.Logger) *BalanceAdjustmentRepository {
	return &BalanceAdjustmentRepository{db: db, logger: logger, errorMapper: NewErrorMapper()}
}

// Create appends a history row
func (r *BalanceAdjustmentRepository) Create(ctx context.Context, adjustment *entity.BalanceAdjustment) error {
	row := model.BalanceAdjustment{
		ID:             adjustment.ID,
		UserID:         adjustment.UserID,
		Delta:          adjustment.Delta,
		AvailableAfter: adjustment.AvailableAfter,
		Reason:         string(adjustment.Reason),
		Reference:      adjustment.Reference,
		ActorID:        adjustment.ActorID,
		CreatedAt:      adjustment.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error("Database error when creating balance adjustment", map[string]any{
			"user_id": adjustment.UserID,
			"reason":  string(adjustment.Reason),
			"error":   err.Error(),
		})
		return r.errorMapper.MapError(err, EntityTypeBalance)
	}
	return nil
}

// ListByUser returns the newest adjustments first
func (r *BalanceAdjustmentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.BalanceAdjustment, error) {
	var rows []model.BalanceAdjustment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, EntityTypeBalance)
	}

	adjustments := make([]*entity.BalanceAdjustment, 0, len(rows))
	for i := range rows {
		adjustments = append(adjustments, &entity.BalanceAdjustment{
			ID:             rows[i].ID,
			UserID:         rows[i].UserID,
			Delta:          rows[i].Delta,
			AvailableAfter: rows[i].AvailableAfter,
			Reason:         entity.AdjustmentReason(rows[i].Reason),
			Reference:      rows[i].Reference,
			ActorID:        rows[i].ActorID,
			CreatedAt:      rows[i].CreatedAt,
		})
	}
	return adjustments, nil
}
