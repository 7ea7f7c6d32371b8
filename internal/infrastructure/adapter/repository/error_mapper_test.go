package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name       string
		err        error
		entityType EntityType
		expected   error
	}{
		{"nil", nil, EntityTypeAccount, nil},
		{"account not found", gorm.ErrRecordNotFound, EntityTypeAccount, errs.ErrAccountNotFound},
		{"balance not found", gorm.ErrRecordNotFound, EntityTypeBalance, errs.ErrAccountNotFound},
		{"payment not found", gorm.ErrRecordNotFound, EntityTypePayment, errs.ErrPaymentNotFound},
		{"withdrawal not found", gorm.ErrRecordNotFound, EntityTypeWithdrawal, errs.ErrWithdrawalNotFound},
		{"settings not found", gorm.ErrRecordNotFound, EntityTypeSettings, errs.ErrSettingsNotFound},
		{"credential not found", gorm.ErrRecordNotFound, EntityTypeCredential, errs.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, EntityTypeReferral, errs.ErrDuplicateRecord},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, EntityTypeReferral, errs.ErrConstraintViolation},
		{"check violation", &pgconn.PgError{Code: "23514"}, EntityTypeBalance, errs.ErrConstraintViolation},
		{"duplicate key text", errors.New("ERROR: duplicate key value violates unique constraint"), EntityTypeAccount, errs.ErrDuplicateRecord},
		{"connection refused", errors.New("dial tcp: connection refused"), EntityTypeAccount, errs.ErrDatabaseConnection},
		{"unknown", errors.New("boom"), EntityTypeAccount, errs.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapper.MapError(tt.err, tt.entityType)
			if tt.expected == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tt.expected)
		})
	}
}

func TestErrorMapper_KeepsDriverError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "40001"}
	mapped := NewErrorMapper().MapError(fmt.Errorf("exec: %w", pgErr), EntityTypeBalance)

	assert.ErrorIs(t, mapped, errs.ErrInternalServer)

	var target *pgconn.PgError
	assert.True(t, errors.As(mapped, &target))
	assert.Equal(t, "40001", target.Code)
}
