package account

import (
	"context"
	"fmt"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
)

// GetBalance returns the user's ledger with its latest adjustments
func (u *AccountUseCase) GetBalance(ctx context.Context, userID string) (*usecase.BalanceView, error) {
	balance, err := u.repos.Balances.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := u.repos.Adjustments.ListByUser(ctx, userID, recentAdjustmentsLimit)
	if err != nil {
		u.logger.Warn("Failed to load balance history", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		recent = nil
	}

	return &usecase.BalanceView{Balance: balance, Recent: recent}, nil
}

// RequestWithdrawal moves the amount from available to pending and files a pending withdrawal
func (u *AccountUseCase) RequestWithdrawal(ctx context.Context, req usecase.WithdrawalRequest) (*entity.Withdrawal, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	var withdrawal *entity.Withdrawal
	err = u.uow.Within(ctx, func(ctx context.Context, repos persistence.Repositories) error {
		balance, err := repos.Balances.GetForUpdate(ctx, req.UserID)
		if err != nil {
			return err
		}

		withdrawal, err = entity.NewWithdrawal(req.UserID, amount, balance.Currency, req.AccountDetails, u.timeProvider)
		if err != nil {
			return err
		}
		if err := balance.Reserve(amount, u.timeProvider); err != nil {
			return err
		}

		if err := repos.Balances.Update(ctx, balance); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		if err := repos.Withdrawals.Create(ctx, withdrawal); err != nil {
			return fmt.Errorf("create withdrawal: %w", err)
		}
		adjustment := entity.NewBalanceAdjustment(balance, -amount, entity.AdjustmentWithdrawalRequest, withdrawal.ID, "", u.timeProvider)
		return repos.Adjustments.Create(ctx, adjustment)
	})
	if err != nil {
		u.logger.Warn("Withdrawal request rejected", map[string]any{
			"user_id": req.UserID,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.followUps.Go(usecase.FollowUp{
		Name: FollowUpPublishWithdrawal,
		Run: func(ctx context.Context) error {
			return u.events.Publish(ctx, coreport.SubjectWithdrawalUpdated, map[string]any{
				"withdrawal_id": withdrawal.ID,
				"user_id":       withdrawal.UserID,
				"status":        string(withdrawal.Status),
				"amount":        entity.FormatAmount(withdrawal.Amount),
			})
		},
	})

	u.logger.Info("Withdrawal requested", map[string]any{
		"withdrawal_id": withdrawal.ID,
		"user_id":       withdrawal.UserID,
		"amount":        entity.FormatAmount(withdrawal.Amount),
	})
	return withdrawal, nil
}
