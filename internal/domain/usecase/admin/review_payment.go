package admin

import (
	"context"
	"fmt"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
)

// UpdatePaymentStatus approves or rejects a crypto payment proof. Approval marks
// the account paid in the same transaction. Repeating a decision changes nothing.
func (u *AdminUseCase) UpdatePaymentStatus(
	ctx context.Context,
	paymentID string,
	status entity.ProofStatus,
	adminID string,
) (*usecase.PaymentReviewResult, error) {
	result := &usecase.PaymentReviewResult{}

	err := u.uow.Within(ctx, func(ctx context.Context, repos persistence.Repositories) error {
		proof, err := repos.Proofs.GetForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		result.Proof = proof

		changed, err := proof.Review(status, adminID, u.timeProvider)
		if err != nil || !changed {
			return err
		}
		result.Changed = true

		if err := repos.Proofs.Update(ctx, proof); err != nil {
			return fmt.Errorf("update payment proof: %w", err)
		}
		if status != entity.ProofStatusApproved {
			return nil
		}

		account, err := repos.Accounts.GetByID(ctx, proof.UserID)
		if err != nil {
			return err
		}
		account.MarkPaid(u.timeProvider)
		return repos.Accounts.Update(ctx, account)
	})
	if err != nil {
		u.logger.Warn("Payment review failed", map[string]any{
			"payment_id": paymentID,
			"status":     string(status),
			"admin_id":   adminID,
			"error":      err.Error(),
		})
		return nil, err
	}

	if !result.Changed {
		u.logger.Info("Payment review repeated, nothing changed", map[string]any{
			"payment_id": paymentID,
			"status":     string(status),
		})
		return result, nil
	}

	u.publish(FollowUpPublishReviewed, coreport.SubjectPaymentReviewed, map[string]any{
		"payment_id": paymentID,
		"user_id":    result.Proof.UserID,
		"status":     string(status),
		"admin_id":   adminID,
	})
	u.logger.Info("Payment reviewed", map[string]any{
		"payment_id": paymentID,
		"user_id":    result.Proof.UserID,
		"status":     string(status),
		"admin_id":   adminID,
	})
	u.metrics.PaymentProcessed("review", string(status))

	return result, nil
}
