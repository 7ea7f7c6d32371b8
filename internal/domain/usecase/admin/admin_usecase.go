package admin

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
)

// Names of the follow-ups started by admin actions
const (
	FollowUpPublishReviewed   = "events.payment_reviewed"
	FollowUpPublishWithdrawal = "events.withdrawal_updated"
)

// AdminUseCase handles back-office actions
type AdminUseCase struct {
	uow          persistence.UnitOfWork
	settings     usecase.SettingsProvider
	followUps    usecase.FollowUpDispatcher
	events       coreport.EventPublisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
}

// NewAdminUseCase creates a new AdminUseCase
func NewAdminUseCase(
	uow persistence.UnitOfWork,
	settings usecase.SettingsProvider,
	followUps usecase.FollowUpDispatcher,
	events coreport.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) *AdminUseCase {
	return &AdminUseCase{
		uow:          uow,
		settings:     settings,
		followUps:    followUps,
		events:       events,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

var _ usecase.AdminUseCase = (*AdminUseCase)(nil)

// GetSettings returns settings with secrets masked
func (u *AdminUseCase) GetSettings(ctx context.Context) (entity.SystemSettings, error) {
	settings, err := u.settings.Current(ctx)
	if err != nil {
		return entity.SystemSettings{}, err
	}
	return settings.Masked(), nil
}

// UpdateSettings stores new settings and returns them masked
func (u *AdminUseCase) UpdateSettings(ctx context.Context, settings entity.SystemSettings) (entity.SystemSettings, error) {
	saved, err := u.settings.Update(ctx, settings)
	if err != nil {
		return entity.SystemSettings{}, err
	}
	return saved.Masked(), nil
}

// publish queues a best-effort event
func (u *AdminUseCase) publish(name, subject string, payload map[string]any) {
	u.followUps.Go(usecase.FollowUp{
		Name: name,
		Run: func(ctx context.Context) error {
			return u.events.Publish(ctx, subject, payload)
		},
	})
}
