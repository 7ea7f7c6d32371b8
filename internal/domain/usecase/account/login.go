package account

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
)

// Login authenticates and only lets paid accounts keep their session
func (u *AccountUseCase) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	email = entity.NormalizeEmail(email)

	session, err := u.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		u.metrics.LoginAttempted("invalid")
		return nil, err
	}

	account, err := u.repos.Accounts.GetByID(ctx, session.UserID)
	if err != nil {
		u.logger.Error("Failed to load profile for login", map[string]any{
			"user_id": session.UserID,
			"error":   err.Error(),
		})
		u.revokeSession(ctx, session)
		u.metrics.LoginAttempted("unavailable")
		return nil, errs.ErrProfileUnavailable
	}

	if !account.Paid {
		u.logger.Info("Login refused for unpaid account", map[string]any{
			"user_id":      account.ID,
			"needs_review": account.NeedsReview,
		})
		u.revokeSession(ctx, session)
		u.metrics.LoginAttempted("unpaid")
		return nil, errs.ErrUnpaidAccount
	}

	u.metrics.LoginAttempted("success")
	return &usecase.LoginResult{Session: session, Account: account}, nil
}

// Logout revokes a session
func (u *AccountUseCase) Logout(ctx context.Context, sessionID string) error {
	return u.identity.SignOut(ctx, sessionID)
}

// SessionActive reports whether a session is still valid
func (u *AccountUseCase) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	return u.identity.SessionActive(ctx, sessionID)
}
