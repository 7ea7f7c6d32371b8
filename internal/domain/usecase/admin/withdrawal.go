package admin

import (
	"context"
	"fmt"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
)

// UpdateWithdrawalStatus moves a withdrawal along pending -> approved -> processed
// or pending -> rejected. Processing settles the reserved amount; rejecting refunds it.
func (u *AdminUseCase) UpdateWithdrawalStatus(
	ctx context.Context,
	withdrawalID string,
	status entity.WithdrawalStatus,
	adminID string,
) (*usecase.WithdrawalUpdateResult, error) {
	result := &usecase.WithdrawalUpdateResult{}

	err := u.uow.Within(ctx, func(ctx context.Context, repos persistence.Repositories) error {
		withdrawal, err := repos.Withdrawals.GetForUpdate(ctx, withdrawalID)
		if err != nil {
			return err
		}
		result.Withdrawal = withdrawal

		changed, err := withdrawal.Transition(status, u.timeProvider)
		if err != nil || !changed {
			return err
		}
		result.Changed = true

		if err := repos.Withdrawals.Update(ctx, withdrawal); err != nil {
			return fmt.Errorf("update withdrawal: %w", err)
		}
		return u.applyWithdrawalBalance(ctx, repos, withdrawal, adminID)
	})
	if err != nil {
		u.logger.Warn("Withdrawal update failed", map[string]any{
			"withdrawal_id": withdrawalID,
			"status":        string(status),
			"admin_id":      adminID,
			"error":         err.Error(),
		})
		return nil, err
	}

	if result.Changed {
		u.publish(FollowUpPublishWithdrawal, coreport.SubjectWithdrawalUpdated, map[string]any{
			"withdrawal_id": withdrawalID,
			"user_id":       result.Withdrawal.UserID,
			"status":        string(status),
			"amount":        entity.FormatAmount(result.Withdrawal.Amount),
		})
		u.logger.Info("Withdrawal status updated", map[string]any{
			"withdrawal_id": withdrawalID,
			"status":        string(status),
			"admin_id":      adminID,
		})
	}
	return result, nil
}

// applyWithdrawalBalance moves the reserved amount for terminal statuses
func (u *AdminUseCase) applyWithdrawalBalance(
	ctx context.Context,
	repos persistence.Repositories,
	withdrawal *entity.Withdrawal,
	adminID string,
) error {
	var reason entity.AdjustmentReason
	var delta int64

	switch withdrawal.Status {
	case entity.WithdrawalProcessed:
		reason, delta = entity.AdjustmentWithdrawalProcessed, -withdrawal.Amount
	case entity.WithdrawalRejected:
		reason, delta = entity.AdjustmentWithdrawalRefund, withdrawal.Amount
	default:
		return nil
	}

	balance, err := repos.Balances.GetForUpdate(ctx, withdrawal.UserID)
	if err != nil {
		return err
	}

	if reason == entity.AdjustmentWithdrawalProcessed {
		err = balance.Settle(withdrawal.Amount, u.timeProvider)
	} else {
		err = balance.Release(withdrawal.Amount, u.timeProvider)
	}
	if err != nil {
		return err
	}

	if err := repos.Balances.Update(ctx, balance); err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	adjustment := entity.NewBalanceAdjustment(balance, delta, reason, withdrawal.ID, adminID, u.timeProvider)
	return repos.Adjustments.Create(ctx, adjustment)
}
