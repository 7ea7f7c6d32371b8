package repository

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReferralRepository implements persistence.ReferralRepository using GORM
type ReferralRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewReferralRepository creates a new ReferralRepository instance
func NewReferralRepository(db *gorm.DB, logger coreport.Logger) *ReferralRepository {
	return &ReferralRepository{db: db, logger: logger, errorMapper: NewErrorMapper()}
}

// CreateEdge inserts a referral edge. referred_id is unique so an account is referred at most once.
func (r *ReferralRepository) CreateEdge(ctx context.Context, edge *entity.ReferralEdge) error {
	row := model.Referral{
		ReferrerID: edge.ReferrerID,
		ReferredID: edge.ReferredID,
		IsActive:   edge.IsActive,
		CreatedAt:  edge.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		r.logger.Warn("Failed to create referral edge", map[string]any{
			"referrer_id": edge.ReferrerID,
			"referred_id": edge.ReferredID,
			"error":       err.Error(),
		})
		return r.errorMapper.MapError(err, EntityTypeReferral)
	}
	return nil
}

// CreateCommission inserts an immutable commission record
func (r *ReferralRepository) CreateCommission(ctx context.Context, record *entity.CommissionRecord) error {
	row := model.Commission{
		ReferrerID:     record.ReferrerID,
		ReferredID:     record.ReferredID,
		Amount:         record.Amount,
		CommissionType: record.CommissionType,
		CreatedAt:      record.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error("Database error when creating commission", map[string]any{
			"referrer_id": record.ReferrerID,
			"error":       err.Error(),
		})
		return r.errorMapper.MapError(err, EntityTypeReferral)
	}

	record.ID = row.ID
	return nil
}
