package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/external"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/usecase/validation"
)

// FollowUpPublishVerified publishes the payment verified event
const FollowUpPublishVerified = "events.payment_verified"

// GatewayUseCase registers accounts paid through the hosted card gateway.
// Accounts are always created unpaid and only flipped after server-side verification.
type GatewayUseCase struct {
	registrar    usecase.Registrar
	identity     external.IdentityProvider
	gateway      external.PaymentGateway
	settings     usecase.SettingsProvider
	repos        persistence.Repositories
	uow          persistence.UnitOfWork
	followUps    usecase.FollowUpDispatcher
	events       coreport.EventPublisher
	validator    *validation.Validator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
}

// NewGatewayUseCase creates a new GatewayUseCase
func NewGatewayUseCase(
	registrar usecase.Registrar,
	identity external.IdentityProvider,
	gateway external.PaymentGateway,
	settings usecase.SettingsProvider,
	repos persistence.Repositories,
	uow persistence.UnitOfWork,
	followUps usecase.FollowUpDispatcher,
	events coreport.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) *GatewayUseCase {
	return &GatewayUseCase{
		registrar:    registrar,
		identity:     identity,
		gateway:      gateway,
		settings:     settings,
		repos:        repos,
		uow:          uow,
		followUps:    followUps,
		events:       events,
		validator:    validation.New(),
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

var _ usecase.GatewayPaymentUseCase = (*GatewayUseCase)(nil)

// Initiate opens a hosted checkout and stores its reference
func (u *GatewayUseCase) Initiate(ctx context.Context, req usecase.CheckoutRequest) (*usecase.Checkout, error) {
	req.Email = entity.NormalizeEmail(req.Email)
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	settings, err := u.settings.Current(ctx)
	if err != nil {
		return nil, err
	}

	amount := settings.RegistrationFee
	if strings.TrimSpace(req.Amount) != "" {
		if amount, err = entity.ParseAmount(req.Amount); err != nil {
			return nil, err
		}
	}
	if amount <= 0 {
		return nil, errs.NewValidationError("amount", "must be positive")
	}
	if amount < settings.RegistrationFee {
		return nil, errs.NewValidationError("amount", "must cover the registration fee of "+entity.FormatAmount(settings.RegistrationFee))
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = settings.RegistrationCurrency
	}
	if !strings.EqualFold(currency, settings.RegistrationCurrency) {
		return nil, errs.NewValidationError("currency", "must be "+settings.RegistrationCurrency)
	}

	reference := entity.BuildReference(req.Email, u.timeProvider.Now())
	authorizationURL, err := u.gateway.Initialize(ctx, settings.GatewaySecretKey, req.Email, amount, currency, reference)
	if err != nil {
		u.logger.Error("Gateway checkout initialization failed", map[string]any{
			"reference": reference,
			"error":     err.Error(),
		})
		u.metrics.PaymentProcessed("gateway", "init_failed")
		return nil, fmt.Errorf("%w: initialize checkout: %v", errs.ErrUpstreamUnavailable, err)
	}

	payment := entity.NewGatewayPayment(reference, req.Email, amount, currency, u.timeProvider)
	if err := u.repos.GatewayPayments.Create(ctx, payment); err != nil {
		return nil, err
	}

	u.logger.Info("Gateway checkout initialized", map[string]any{
		"reference": reference,
		"amount":    entity.FormatAmount(amount),
		"currency":  currency,
	})
	u.metrics.PaymentProcessed("gateway", "initiated")

	return &usecase.Checkout{
		Reference:        reference,
		AuthorizationURL: authorizationURL,
		PublicKey:        settings.GatewayPublicKey,
		Amount:           amount,
		Currency:         currency,
		Email:            req.Email,
	}, nil
}

// CompleteRegistration handles the checkout success callback: it registers an
// unpaid account and verifies the payment. A failed verification leaves the
// account unpaid and flagged for review, and revokes the signup session.
func (u *GatewayUseCase) CompleteRegistration(
	ctx context.Context,
	reference string,
	req usecase.RegistrationRequest,
) (*usecase.RegistrationResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, errs.NewValidationError("reference", "is required")
	}

	req.Paid = false
	req.Role = string(entity.RoleUser)
	req.PaymentMethod = string(entity.PaymentMethodGateway)

	result, err := u.registrar.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := u.Verify(ctx, reference, result.Account.ID, result.Account.ReferredBy); err != nil {
		u.flagForReview(ctx, reference, result.Account, err)
		if result.Session != nil {
			if signOutErr := u.identity.SignOut(ctx, result.Session.ID); signOutErr != nil {
				u.logger.Warn("Failed to revoke signup session", map[string]any{
					"user_id": result.Account.ID,
					"error":   signOutErr.Error(),
				})
			}
		}

		var verificationErr *errs.PaymentVerificationError
		if errors.As(err, &verificationErr) {
			return nil, err
		}
		return nil, errs.NewPaymentVerificationError(reference, result.Account.ID, "verification did not complete", err)
	}

	result.Account.MarkPaid(u.timeProvider)
	return result, nil
}

// Verify confirms the reference with the gateway and marks the account paid.
// Verifying an already verified reference for the same account is a no-op.
func (u *GatewayUseCase) Verify(ctx context.Context, reference, userID, referrerID string) (*usecase.VerificationResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" || strings.TrimSpace(userID) == "" {
		return nil, errs.NewValidationError("reference", "reference and user are required")
	}

	existing, err := u.repos.GatewayPayments.GetByReference(ctx, reference)
	switch {
	case err == nil && existing.IsVerified():
		if existing.UserID != userID {
			return nil, errs.ErrReferenceConflict
		}
		return &usecase.VerificationResult{Reference: reference, UserID: userID, AlreadyVerified: true}, nil
	case err != nil && !errors.Is(err, errs.ErrPaymentNotFound):
		return nil, err
	}

	settings, err := u.settings.Current(ctx)
	if err != nil {
		return nil, err
	}

	// The fee is the floor even when the stored checkout was opened for less
	expected := settings.RegistrationFee
	if existing != nil && existing.Amount > expected {
		expected = existing.Amount
	}

	verification, err := u.gateway.Verify(ctx, settings.GatewaySecretKey, reference)
	if err != nil {
		u.recordFailure(ctx, reference, userID, "", "gateway unreachable")
		u.metrics.PaymentProcessed("gateway", "verify_failed")
		return nil, errs.NewPaymentVerificationError(reference, userID, "gateway unreachable",
			fmt.Errorf("%w: %v", errs.ErrUpstreamUnavailable, err))
	}

	if reason := rejectReason(verification, expected, settings.RegistrationCurrency); reason != "" {
		u.recordFailure(ctx, reference, userID, verification.Status, reason)
		u.metrics.PaymentProcessed("gateway", "rejected")
		return nil, errs.NewPaymentVerificationError(reference, userID, reason, nil)
	}

	alreadyVerified := false
	err = u.uow.Within(ctx, func(ctx context.Context, repos persistence.Repositories) error {
		account, err := repos.Accounts.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		payment, isNew, err := u.lockOrNew(ctx, repos, reference, account.Email, verification)
		if err != nil {
			return err
		}
		if !isNew && !strings.EqualFold(payment.Email, account.Email) {
			return errs.ErrReferenceConflict
		}
		if payment.IsVerified() && payment.UserID == userID {
			alreadyVerified = true
			return nil
		}
		if err := payment.MarkVerified(userID, referrerID, verification.Status, u.timeProvider); err != nil {
			return err
		}
		if err := savePayment(ctx, repos, payment, isNew); err != nil {
			return err
		}

		account.MarkPaid(u.timeProvider)
		return repos.Accounts.Update(ctx, account)
	})
	if err != nil {
		u.logger.Error("Failed to record verified payment", map[string]any{
			"reference": reference,
			"user_id":   userID,
			"error":     err.Error(),
		})
		return nil, err
	}

	if !alreadyVerified {
		u.followUps.Go(usecase.FollowUp{
			Name: FollowUpPublishVerified,
			Run: func(ctx context.Context) error {
				return u.events.Publish(ctx, coreport.SubjectPaymentVerified, map[string]any{
					"reference": reference,
					"user_id":   userID,
					"amount":    entity.FormatAmount(verification.Amount),
					"currency":  verification.Currency,
				})
			},
		})
		u.logger.Info("Gateway payment verified", map[string]any{
			"reference": reference,
			"user_id":   userID,
		})
		u.metrics.PaymentProcessed("gateway", "verified")
	}

	return &usecase.VerificationResult{Reference: reference, UserID: userID, AlreadyVerified: alreadyVerified}, nil
}

// rejectReason returns why a verification does not confirm the payment, or ""
func rejectReason(v *external.Verification, expected int64, currency string) string {
	if !strings.EqualFold(v.Status, entity.GatewaySuccessStatus) {
		return fmt.Sprintf("gateway status %s", v.Status)
	}
	if v.Amount < expected {
		return fmt.Sprintf("amount %s below expected %s", entity.FormatAmount(v.Amount), entity.FormatAmount(expected))
	}
	if !strings.EqualFold(v.Currency, currency) {
		return fmt.Sprintf("currency %q does not match %s", v.Currency, currency)
	}
	return ""
}

// lockOrNew loads the checkout row for update, or builds one for references
// that were not initiated through this service
func (u *GatewayUseCase) lockOrNew(
	ctx context.Context,
	repos persistence.Repositories,
	reference, email string,
	v *external.Verification,
) (*entity.GatewayPayment, bool, error) {
	payment, err := repos.GatewayPayments.GetForUpdate(ctx, reference)
	if err == nil {
		return payment, false, nil
	}
	if !errors.Is(err, errs.ErrPaymentNotFound) {
		return nil, false, err
	}
	return entity.NewGatewayPayment(reference, email, v.Amount, v.Currency, u.timeProvider), true, nil
}

func savePayment(ctx context.Context, repos persistence.Repositories, payment *entity.GatewayPayment, isNew bool) error {
	if isNew {
		return repos.GatewayPayments.Create(ctx, payment)
	}
	return repos.GatewayPayments.Update(ctx, payment)
}

// recordFailure marks a known checkout as failed; unknown references are only logged
func (u *GatewayUseCase) recordFailure(ctx context.Context, reference, userID, gatewayStatus, reason string) {
	u.logger.Warn("Gateway payment not confirmed", map[string]any{
		"reference":      reference,
		"user_id":        userID,
		"gateway_status": gatewayStatus,
		"reason":         reason,
	})

	err := u.uow.Within(ctx, func(ctx context.Context, repos persistence.Repositories) error {
		payment, err := repos.GatewayPayments.GetForUpdate(ctx, reference)
		if err != nil {
			return err
		}
		if payment.IsVerified() {
			return nil
		}
		payment.MarkFailed(userID, gatewayStatus, reason, u.timeProvider)
		return repos.GatewayPayments.Update(ctx, payment)
	})
	if err != nil && !errors.Is(err, errs.ErrPaymentNotFound) {
		u.logger.Error("Failed to record gateway failure", map[string]any{
			"reference": reference,
			"error":     err.Error(),
		})
	}
}

// flagForReview marks the account and its checkout for manual payment review
func (u *GatewayUseCase) flagForReview(ctx context.Context, reference string, account *entity.Account, cause error) {
	err := u.uow.Within(ctx, func(ctx context.Context, repos persistence.Repositories) error {
		account.FlagForReview(u.timeProvider)
		if err := repos.Accounts.Update(ctx, account); err != nil {
			return err
		}

		payment, err := repos.GatewayPayments.GetForUpdate(ctx, reference)
		if errors.Is(err, errs.ErrPaymentNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if payment.IsVerified() {
			return nil
		}
		payment.MarkNeedsReview("", u.timeProvider)
		return repos.GatewayPayments.Update(ctx, payment)
	})

	fields := errs.LogFields(cause)
	fields["user_id"] = account.ID
	fields["reference"] = reference
	if err != nil {
		fields["flag_error"] = err.Error()
		u.logger.Error("Failed to flag account for payment review", fields)
		return
	}
	u.logger.Warn("Account flagged for payment review", fields)
}
