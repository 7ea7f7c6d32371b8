package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
)

// Register creates the identity, the profile and an empty ledger. A referral
// code credits the referrer as a follow-up whose failure does not fail registration.
func (u *AccountUseCase) Register(ctx context.Context, req usecase.RegistrationRequest) (*usecase.RegistrationResult, error) {
	req.Email = entity.NormalizeEmail(req.Email)
	req.ReferralCode = strings.TrimSpace(req.ReferralCode)

	if err := u.validator.Struct(req); err != nil {
		u.metrics.RegistrationCompleted(req.PaymentMethod, "invalid")
		return nil, err
	}

	identity, session, err := u.identity.SignUp(ctx, req.Email, req.Password, map[string]string{
		"full_name":    req.FullName,
		"phone_number": req.PhoneNumber,
		"country":      req.Country,
	})
	if err != nil {
		u.logger.Warn("Identity sign up failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		u.metrics.RegistrationCompleted(req.PaymentMethod, "rejected")
		return nil, err
	}

	account, err := entity.NewAccount(entity.AccountParams{
		ID:            identity.ID,
		Email:         identity.Email,
		FullName:      req.FullName,
		PhoneNumber:   req.PhoneNumber,
		Country:       req.Country,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Paid:          req.Paid,
		Role:          entity.Role(req.Role),
		AgreedToTerms: req.AgreedToTerms,
	}, u.timeProvider)
	if err != nil {
		u.revokeSession(ctx, session)
		return nil, err
	}

	balance := entity.NewBalance(account.ID, account.Currency, u.timeProvider)
	err = u.uow.Within(ctx, func(ctx context.Context, repos persistence.Repositories) error {
		if err := repos.Accounts.Create(ctx, account); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		if err := repos.Balances.Create(ctx, balance); err != nil {
			return fmt.Errorf("create balance: %w", err)
		}
		return nil
	})
	if err != nil {
		u.logger.Error("Failed to store new account", map[string]any{
			"user_id": account.ID,
			"error":   err.Error(),
		})
		u.revokeSession(ctx, session)
		u.metrics.RegistrationCompleted(req.PaymentMethod, "failed")
		return nil, err
	}

	result := &usecase.RegistrationResult{Account: account, Session: session}

	if req.ReferralCode != "" {
		outcome := u.followUps.Run(ctx, usecase.FollowUp{
			Name: FollowUpReferralCredit,
			Run: func(ctx context.Context) error {
				return u.creditReferrer(ctx, req.ReferralCode, account)
			},
		})
		result.Referral = &outcome
	}

	u.followUps.Go(usecase.FollowUp{
		Name: FollowUpPublishRegistered,
		Run: func(ctx context.Context) error {
			return u.events.Publish(ctx, coreport.SubjectAccountRegistered, map[string]any{
				"user_id":        account.ID,
				"payment_method": string(account.PaymentMethod),
				"referred_by":    account.ReferredBy,
				"paid":           account.Paid,
			})
		},
	})

	u.logger.Info("Account registered", map[string]any{
		"user_id":        account.ID,
		"payment_method": string(account.PaymentMethod),
		"referred":       account.ReferredBy != "",
	})
	u.metrics.RegistrationCompleted(req.PaymentMethod, "success")

	return result, nil
}

// creditReferrer records the referral and pays the commission in one transaction
func (u *AccountUseCase) creditReferrer(ctx context.Context, referrerID string, referred *entity.Account) error {
	if referrerID == referred.ID {
		return errs.NewValidationError("referral_code", "cannot refer yourself")
	}

	amount, err := u.commission.Amount(ctx)
	if err != nil {
		return err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, repos persistence.Repositories) error {
		if _, err := repos.Accounts.GetByID(ctx, referrerID); err != nil {
			return fmt.Errorf("load referrer: %w", err)
		}

		if err := repos.Referrals.CreateEdge(ctx, entity.NewReferralEdge(referrerID, referred.ID, u.timeProvider)); err != nil {
			return fmt.Errorf("create referral: %w", err)
		}
		if err := repos.Referrals.CreateCommission(ctx, entity.NewCommissionRecord(referrerID, referred.ID, amount, u.timeProvider)); err != nil {
			return fmt.Errorf("create commission: %w", err)
		}

		balance, err := repos.Balances.Increment(ctx, referrerID, amount, amount)
		if err != nil {
			return fmt.Errorf("credit referrer: %w", err)
		}
		adjustment := entity.NewBalanceAdjustment(balance, amount, entity.AdjustmentReferralCommission, referred.ID, "", u.timeProvider)
		if err := repos.Adjustments.Create(ctx, adjustment); err != nil {
			return fmt.Errorf("record adjustment: %w", err)
		}

		referred.ReferredBy = referrerID
		if err := repos.Accounts.Update(ctx, referred); err != nil {
			return fmt.Errorf("link referrer: %w", err)
		}
		return nil
	})
	if err != nil {
		referred.ReferredBy = ""
		return err
	}

	u.logger.Info("Referral commission credited", map[string]any{
		"referrer_id": referrerID,
		"referred_id": referred.ID,
		"amount":      entity.FormatAmount(amount),
	})
	return nil
}

// revokeSession signs out a session, logging failures
func (u *AccountUseCase) revokeSession(ctx context.Context, session *entity.Session) {
	if session == nil {
		return
	}
	if err := u.identity.SignOut(ctx, session.ID); err != nil {
		u.logger.Warn("Failed to revoke session", map[string]any{
			"session_id": session.ID,
			"user_id":    session.UserID,
			"error":      err.Error(),
		})
	}
}
