package database

import (
	"fmt"
	"sync"
	"time"

	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"gorm.io/gorm"
)

// exhaustionRatio is the in-use share of max open connections that triggers a warning
const exhaustionRatio = 0.8

// PoolMonitor periodically inspects the connection pool and warns when it runs dry
type PoolMonitor struct {
	db       *gorm.DB
	logger   coreport.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewPoolMonitor creates a new connection pool monitor
func NewPoolMonitor(db *gorm.DB, logger coreport.Logger) *PoolMonitor {
	return &PoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins monitoring the connection pool
func (m *PoolMonitor) Start(interval time.Duration) error {
	if err := m.check(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.check(); err != nil {
					m.logger.Error("Failed to collect connection pool stats", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()
	return nil
}

// Stop stops the monitoring
func (m *PoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// check logs when too many connections are in use
func (m *PoolMonitor) check() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()
	if stats.MaxOpenConnections == 0 {
		return nil
	}

	threshold := float64(stats.MaxOpenConnections) * exhaustionRatio
	if float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
	return nil
}
