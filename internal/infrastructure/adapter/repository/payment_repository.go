package repository

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PaymentProofRepository implements persistence.PaymentProofRepository using GORM
type PaymentProofRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewPaymentProofRepository creates a new PaymentProofRepository instance
func NewPaymentProofRepository(db *gorm.DB, logger coreport.Logger) *PaymentProofRepository {
	return &PaymentProofRepository{db: db, logger: logger, errorMapper: NewErrorMapper()}
}

func proofToEntity(m *model.PaymentProof) *entity.PaymentProof {
	return &entity.PaymentProof{
		ID:            m.ID,
		UserID:        m.UserID,
		WalletName:    m.WalletName,
		WalletAddress: m.WalletAddress,
		ProofURL:      m.PaymentProofURL,
		Status:        entity.ProofStatus(m.Status),
		ReviewedBy:    m.ReviewedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *PaymentProofRepository) handleDatabaseError(operation string, err error, proofID string) error {
	mapped := r.errorMapper.MapError(err, EntityTypePayment)
	if !errs.IsNotFoundError(mapped) {
		r.logger.Error("Database error when "+operation, map[string]any{
			"proof_id": proofID,
			"error":    err.Error(),
		})
	}
	return mapped
}

// Create inserts a pending proof
func (r *PaymentProofRepository) Create(ctx context.Context, proof *entity.PaymentProof) error {
	row := model.PaymentProof{
		ID:              proof.ID,
		UserID:          proof.UserID,
		WalletName:      proof.WalletName,
		WalletAddress:   proof.WalletAddress,
		PaymentProofURL: proof.ProofURL,
		Status:          string(proof.Status),
		ReviewedBy:      proof.ReviewedBy,
		CreatedAt:       proof.CreatedAt,
		UpdatedAt:       proof.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.handleDatabaseError("creating payment proof", err, proof.ID)
	}
	return nil
}

// GetForUpdate retrieves a proof and locks the row
func (r *PaymentProofRepository) GetForUpdate(ctx context.Context, id string) (*entity.PaymentProof, error) {
	var m model.PaymentProof
	if err := forUpdate(r.db.WithContext(ctx)).First(&m, "id = ?", id).Error; err != nil {
		return nil, r.handleDatabaseError("locking payment proof", err, id)
	}
	return proofToEntity(&m), nil
}

// Update saves the review outcome
func (r *PaymentProofRepository) Update(ctx context.Context, proof *entity.PaymentProof) error {
	result := r.db.WithContext(ctx).Model(&model.PaymentProof{}).
		Where("id = ?", proof.ID).
		Updates(map[string]any{
			"status":      string(proof.Status),
			"reviewed_by": proof.ReviewedBy,
			"updated_at":  proof.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating payment proof", result.Error, proof.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPaymentNotFound
	}
	return nil
}

// GatewayPaymentRepository implements persistence.GatewayPaymentRepository using GORM
type GatewayPaymentRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewGatewayPaymentRepository creates a new GatewayPaymentRepository instance
func NewGatewayPaymentRepository(db *gorm.DB, logger coreport.Logger) *GatewayPaymentRepository {
	return &GatewayPaymentRepository{db: db, logger: logger, errorMapper: NewErrorMapper()}
}

func gatewayPaymentToEntity(m *model.GatewayPayment) *entity.GatewayPayment {
	return &entity.GatewayPayment{
		Reference:     m.Reference,
		Email:         m.Email,
		UserID:        m.UserID,
		ReferrerID:    m.ReferrerID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Status:        entity.GatewayPaymentStatus(m.Status),
		GatewayStatus: m.GatewayStatus,
		FailureReason: m.FailureReason,
		VerifiedAt:    m.VerifiedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *GatewayPaymentRepository) handleDatabaseError(operation string, err error, reference string) error {
	mapped := r.errorMapper.MapError(err, EntityTypePayment)
	if !errs.IsNotFoundError(mapped) {
		r.logger.Error("Database error when "+operation, map[string]any{
			"reference": reference,
			"error":     err.Error(),
		})
	}
	return mapped
}

// Create inserts an initiated checkout
func (r *GatewayPaymentRepository) Create(ctx context.Context, payment *entity.GatewayPayment) error {
	row := model.GatewayPayment{
		Reference:     payment.Reference,
		Email:         payment.Email,
		UserID:        payment.UserID,
		ReferrerID:    payment.ReferrerID,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Status:        string(payment.Status),
		GatewayStatus: payment.GatewayStatus,
		FailureReason: payment.FailureReason,
		VerifiedAt:    payment.VerifiedAt,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.handleDatabaseError("creating gateway payment", err, payment.Reference)
	}

	r.logger.Debug("Gateway payment recorded", map[string]any{
		"reference": payment.Reference,
		"amount":    entity.FormatAmount(payment.Amount),
		"currency":  payment.Currency,
	})
	return nil
}

// GetByReference retrieves a checkout
func (r *GatewayPaymentRepository) GetByReference(ctx context.Context, reference string) (*entity.GatewayPayment, error) {
	var m model.GatewayPayment
	if err := r.db.WithContext(ctx).First(&m, "reference = ?", reference).Error; err != nil {
		return nil, r.handleDatabaseError("getting gateway payment", err, reference)
	}
	return gatewayPaymentToEntity(&m), nil
}

// GetForUpdate retrieves a checkout and locks the row
func (r *GatewayPaymentRepository) GetForUpdate(ctx context.Context, reference string) (*entity.GatewayPayment, error) {
	var m model.GatewayPayment
	if err := forUpdate(r.db.WithContext(ctx)).First(&m, "reference = ?", reference).Error; err != nil {
		return nil, r.handleDatabaseError("locking gateway payment", err, reference)
	}
	return gatewayPaymentToEntity(&m), nil
}

// Update saves the verification outcome
func (r *GatewayPaymentRepository) Update(ctx context.Context, payment *entity.GatewayPayment) error {
	result := r.db.WithContext(ctx).Model(&model.GatewayPayment{}).
		Where("reference = ?", payment.Reference).
		Updates(map[string]any{
			"user_id":        payment.UserID,
			"status":         string(payment.Status),
			"gateway_status": payment.GatewayStatus,
			"failure_reason": payment.FailureReason,
			"verified_at":    payment.VerifiedAt,
			"updated_at":     payment.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating gateway payment", result.Error, payment.Reference)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPaymentNotFound
	}
	return nil
}
