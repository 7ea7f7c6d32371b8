package account

import (
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/external"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/usecase/validation"
)

// Names of the follow-ups started by account operations
const (
	FollowUpReferralCredit    = "referral.credit"
	FollowUpPublishRegistered = "events.account_registered"
	FollowUpPublishWithdrawal = "events.withdrawal_requested"
)

// recentAdjustmentsLimit caps the balance history returned with a ledger
const recentAdjustmentsLimit = 20

// AccountUseCase handles registration, login and the user's own ledger
type AccountUseCase struct {
	identity     external.IdentityProvider
	repos        persistence.Repositories
	uow          persistence.UnitOfWork
	commission   *CommissionPolicy
	followUps    usecase.FollowUpDispatcher
	events       coreport.EventPublisher
	validator    *validation.Validator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
}

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(
	identity external.IdentityProvider,
	repos persistence.Repositories,
	uow persistence.UnitOfWork,
	commission *CommissionPolicy,
	followUps usecase.FollowUpDispatcher,
	events coreport.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) *AccountUseCase {
	return &AccountUseCase{
		identity:     identity,
		repos:        repos,
		uow:          uow,
		commission:   commission,
		followUps:    followUps,
		events:       events,
		validator:    validation.New(),
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

var _ usecase.AccountUseCase = (*AccountUseCase)(nil)
