package settings

import (
	"context"
	"strings"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
)

// Provider reads and writes the system settings row
type Provider struct {
	repo         persistence.SettingsRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewProvider creates a settings provider
func NewProvider(
	repo persistence.SettingsRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Provider {
	return &Provider{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Current returns the stored settings
func (p *Provider) Current(ctx context.Context) (entity.SystemSettings, error) {
	settings, err := p.repo.Get(ctx)
	if err != nil {
		p.logger.Error("Failed to load system settings", map[string]any{
			"error": err.Error(),
		})
		return entity.SystemSettings{}, err
	}
	return *settings, nil
}

// Update validates and stores new settings. Masked or empty secrets keep their stored values.
func (p *Provider) Update(ctx context.Context, settings entity.SystemSettings) (entity.SystemSettings, error) {
	if err := validate(settings); err != nil {
		return entity.SystemSettings{}, err
	}

	stored, err := p.repo.Get(ctx)
	switch {
	case err == nil:
		settings = settings.MergeSecrets(*stored)
	case errs.IsNotFoundError(err):
	default:
		return entity.SystemSettings{}, err
	}

	settings.RegistrationCurrency = strings.ToUpper(strings.TrimSpace(settings.RegistrationCurrency))
	settings.UpdatedAt = p.timeProvider.Now()

	if err := p.repo.Save(ctx, &settings); err != nil {
		p.logger.Error("Failed to save system settings", map[string]any{
			"error": err.Error(),
		})
		return entity.SystemSettings{}, err
	}

	p.logger.Info("System settings updated", map[string]any{
		"referral_commission": entity.FormatAmount(settings.ReferralCommission),
		"registration_fee":    entity.FormatAmount(settings.RegistrationFee),
	})
	return settings, nil
}

func validate(settings entity.SystemSettings) error {
	fields := map[string]string{}
	if settings.ReferralCommission < 0 {
		fields["referral_commission"] = "cannot be negative"
	}
	if settings.RegistrationFee <= 0 {
		fields["registration_fee"] = "must be positive"
	}
	if len(strings.TrimSpace(settings.RegistrationCurrency)) != 3 {
		fields["registration_currency"] = "must be a 3 letter code"
	}
	if settings.SMTPPort < 0 || settings.SMTPPort > 65535 {
		fields["smtp_port"] = "must be a valid port"
	}

	if len(fields) > 0 {
		return &errs.ValidationError{Fields: fields}
	}
	return nil
}
