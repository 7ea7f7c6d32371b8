package admin

import (
	"context"
	"fmt"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
)

// UpdateUserBalance overwrites the available balance with the given amount and
// records the signed difference so the ledger history stays reconstructable
func (u *AdminUseCase) UpdateUserBalance(ctx context.Context, userID string, amount string, adminID string) (*entity.Balance, error) {
	cents, err := entity.ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	var (
		updated  *entity.Balance
		previous int64
		delta    int64
	)
	err = u.uow.Within(ctx, func(ctx context.Context, repos persistence.Repositories) error {
		balance, err := repos.Balances.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		previous = balance.Available
		if delta, err = balance.Overwrite(cents, u.timeProvider); err != nil {
			return err
		}
		updated = balance

		if err := repos.Balances.Update(ctx, balance); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		if delta == 0 {
			return nil
		}
		adjustment := entity.NewBalanceAdjustment(balance, delta, entity.AdjustmentAdminEdit, "", adminID, u.timeProvider)
		return repos.Adjustments.Create(ctx, adjustment)
	})
	if err != nil {
		u.logger.Warn("Balance update failed", map[string]any{
			"user_id":  userID,
			"admin_id": adminID,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Balance overwritten by admin", map[string]any{
		"user_id":  userID,
		"admin_id": adminID,
		"previous": entity.FormatAmount(previous),
		"current":  entity.FormatAmount(cents),
		"delta":    entity.FormatAmount(delta),
	})
	return updated, nil
}
