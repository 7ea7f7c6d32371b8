package account

import (
	"testing"
	"time"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/usecase/followup"
	coremocks "github.com/johnjerry8749/Affiliate-Academy-sub000/mocks/port/core"
	externalmocks "github.com/johnjerry8749/Affiliate-Academy-sub000/mocks/port/external"
	persistencemocks "github.com/johnjerry8749/Affiliate-Academy-sub000/mocks/port/persistence"
	"github.com/stretchr/testify/mock"
)

var fixedTime = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	identity    *externalmocks.MockIdentityProvider
	accounts    *persistencemocks.MockAccountRepository
	balances    *persistencemocks.MockBalanceRepository
	adjustments *persistencemocks.MockBalanceAdjustmentRepository
	referrals   *persistencemocks.MockReferralRepository
	withdrawals *persistencemocks.MockWithdrawalRepository
	events      *coremocks.MockEventPublisher
	uow         *persistencemocks.FakeUnitOfWork
	useCase     *AccountUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		identity:    externalmocks.NewMockIdentityProvider(t),
		accounts:    persistencemocks.NewMockAccountRepository(t),
		balances:    persistencemocks.NewMockBalanceRepository(t),
		adjustments: persistencemocks.NewMockBalanceAdjustmentRepository(t),
		referrals:   persistencemocks.NewMockReferralRepository(t),
		withdrawals: persistencemocks.NewMockWithdrawalRepository(t),
		events:      coremocks.NewMockEventPublisher(t),
	}
	repos := persistence.Repositories{
		Accounts:    f.accounts,
		Balances:    f.balances,
		Adjustments: f.adjustments,
		Referrals:   f.referrals,
		Withdrawals: f.withdrawals,
	}
	f.uow = persistencemocks.NewFakeUnitOfWork(repos)

	logger := coremocks.NewMockLogger(t).AllowAll()
	metrics := coremocks.NewMockMetrics(t).AllowAll()
	tp := coremocks.FixedTime(t, fixedTime)
	dispatcher := followup.NewDispatcher(followup.Config{MaxAttempts: 1}, logger, tp, metrics)

	f.useCase = NewAccountUseCase(
		f.identity,
		repos,
		f.uow,
		NewCommissionPolicy(CommissionSourceFixed, entity.DefaultReferralCommission, nil),
		dispatcher,
		f.events,
		tp,
		logger,
		metrics,
	)
	return f
}

// allowEvents accepts any published event
func (f *fixture) allowEvents() {
	f.events.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func validRegistration() usecase.RegistrationRequest {
	return usecase.RegistrationRequest{
		FullName:      "Ada Obi",
		Email:         "Ada@Example.com",
		Password:      "s3cret-pass",
		PhoneNumber:   "+2348000000000",
		Country:       "Nigeria",
		PaymentMethod: "crypto",
		AgreedToTerms: true,
	}
}

func signupSession(userID string) (*entity.Identity, *entity.Session) {
	return &entity.Identity{ID: userID, Email: "ada@example.com", CreatedAt: fixedTime},
		&entity.Session{ID: "sess-" + userID, UserID: userID, Email: "ada@example.com", AccessToken: "token"}
}
