package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// SettingsRepository stores the singleton system settings row
type SettingsRepository interface {
	// Get returns the settings row
	//
	// Possible errors:
	// - ErrSettingsNotFound: If the row has not been seeded
	Get(ctx context.Context) (*entity.SystemSettings, error)

	// Save upserts the settings row
	Save(ctx context.Context, settings *entity.SystemSettings) error
}
