package account

import (
	"context"
	"fmt"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
)

// Commission sources
const (
	CommissionSourceFixed    = "fixed"
	CommissionSourceSettings = "settings"
)

// CommissionPolicy decides the referral commission credited per registration
type CommissionPolicy struct {
	source   string
	fixed    int64
	settings usecase.SettingsProvider
}

// NewCommissionPolicy creates a policy. The settings source reads the
// referral_commission setting; any other source pays the fixed amount.
func NewCommissionPolicy(source string, fixed int64, settings usecase.SettingsProvider) *CommissionPolicy {
	if fixed <= 0 {
		fixed = entity.DefaultReferralCommission
	}
	return &CommissionPolicy{source: source, fixed: fixed, settings: settings}
}

// Amount returns the commission in cents
func (p *CommissionPolicy) Amount(ctx context.Context) (int64, error) {
	if p.source != CommissionSourceSettings || p.settings == nil {
		return p.fixed, nil
	}

	settings, err := p.settings.Current(ctx)
	if err != nil {
		return 0, fmt.Errorf("load referral commission: %w", err)
	}
	if settings.ReferralCommission <= 0 {
		return p.fixed, nil
	}
	return settings.ReferralCommission, nil
}
