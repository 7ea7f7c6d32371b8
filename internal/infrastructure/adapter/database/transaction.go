package database

import (
	"context"
	"database/sql"

	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// UnitOfWork runs a function in a gorm transaction with repositories bound to it
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	retry        RetryConfig
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, retry RetryConfig) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		retry:        retry,
	}
}

// Within implements persistence.UnitOfWork. Deadlocks and serialization
// failures restart the whole function.
func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, repos persistence.Repositories) error) error {
	return RetryOnTransientError(ctx, u.retry, func() error {
		u.logger.Debug("Beginning database transaction", nil)

		err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			repos := repository.NewRepositories(tx, u.timeProvider, u.logger)
			return fn(ctx, repos)
		}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})

		if err != nil {
			u.logger.Debug("Database transaction rolled back", map[string]any{"error": err.Error()})
			return err
		}
		u.logger.Debug("Database transaction committed", nil)
		return nil
	}, u.logger)
}
