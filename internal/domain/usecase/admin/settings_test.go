package admin

import (
	"context"
	"testing"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminUseCase_Settings(t *testing.T) {
	ctx := context.Background()
	stored := entity.SystemSettings{
		ReferralCommission:   50000,
		RegistrationFee:      500000,
		RegistrationCurrency: "NGN",
		GatewayPublicKey:     "pk_live",
		GatewaySecretKey:     "sk_live_secret",
		SMTPPassword:         "hunter2",
	}

	t.Run("Get masks secrets", func(t *testing.T) {
		f := newFixture(t)
		f.settings.On("Current", mock.Anything).Return(stored, nil).Once()

		settings, err := f.useCase.GetSettings(ctx)

		require.NoError(t, err)
		assert.Equal(t, "pk_live", settings.GatewayPublicKey)
		assert.NotEqual(t, "sk_live_secret", settings.GatewaySecretKey)
		assert.NotEqual(t, "hunter2", settings.SMTPPassword)
	})

	t.Run("Update returns masked result", func(t *testing.T) {
		f := newFixture(t)
		f.settings.On("Update", mock.Anything, mock.Anything).Return(stored, nil).Once()

		settings, err := f.useCase.UpdateSettings(ctx, stored)

		require.NoError(t, err)
		assert.NotEqual(t, "sk_live_secret", settings.GatewaySecretKey)
	})

	t.Run("Update propagates validation errors", func(t *testing.T) {
		f := newFixture(t)
		f.settings.On("Update", mock.Anything, mock.Anything).
			Return(entity.SystemSettings{}, errs.NewValidationError("registration_fee", "must be greater than zero")).Once()

		_, err := f.useCase.UpdateSettings(ctx, entity.SystemSettings{})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
