package usecase

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// SettingsProvider gives use cases the system settings in effect for a request
type SettingsProvider interface {
	// Current returns the stored settings
	Current(ctx context.Context) (entity.SystemSettings, error)

	// Update replaces the stored settings and returns what was saved
	Update(ctx context.Context, settings entity.SystemSettings) (entity.SystemSettings, error)
}
