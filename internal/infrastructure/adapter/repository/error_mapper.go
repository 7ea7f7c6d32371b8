package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

// Entity types
const (
	EntityTypeAccount    EntityType = "account"
	EntityTypeBalance    EntityType = "balance"
	EntityTypeReferral   EntityType = "referral"
	EntityTypePayment    EntityType = "payment"
	EntityTypeWithdrawal EntityType = "withdrawal"
	EntityTypeSettings   EntityType = "settings"
	EntityTypeCredential EntityType = "credential"
)

// Postgres integrity error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// ErrorMapper maps database errors to domain errors. The original error stays
// in the chain so callers can still inspect driver codes.
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error for the given entity
func (m *ErrorMapper) MapError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundFor(entityType)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", errs.ErrDuplicateRecord, err)
		case pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
			return fmt.Errorf("%w: %w", errs.ErrConstraintViolation, err)
		}
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "duplicate key"):
		return fmt.Errorf("%w: %w", errs.ErrDuplicateRecord, err)
	case strings.Contains(errMsg, "connection refused"),
		strings.Contains(errMsg, "no connection"),
		strings.Contains(errMsg, "connection reset"),
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	default:
		return fmt.Errorf("%w: %w", errs.ErrInternalServer, err)
	}
}

func notFoundFor(entityType EntityType) error {
	switch entityType {
	case EntityTypeAccount, EntityTypeBalance:
		return errs.ErrAccountNotFound
	case EntityTypePayment:
		return errs.ErrPaymentNotFound
	case EntityTypeWithdrawal:
		return errs.ErrWithdrawalNotFound
	case EntityTypeSettings:
		return errs.ErrSettingsNotFound
	default:
		return errs.ErrNotFound
	}
}
