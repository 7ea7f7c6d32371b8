package admin

import (
	"testing"
	"time"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/usecase/followup"
	coremocks "github.com/johnjerry8749/Affiliate-Academy-sub000/mocks/port/core"
	persistencemocks "github.com/johnjerry8749/Affiliate-Academy-sub000/mocks/port/persistence"
	usecasemocks "github.com/johnjerry8749/Affiliate-Academy-sub000/mocks/port/usecase"
)

var fixedTime = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	accounts    *persistencemocks.MockAccountRepository
	balances    *persistencemocks.MockBalanceRepository
	adjustments *persistencemocks.MockBalanceAdjustmentRepository
	proofs      *persistencemocks.MockPaymentProofRepository
	withdrawals *persistencemocks.MockWithdrawalRepository
	settings    *usecasemocks.MockSettingsProvider
	events      *coremocks.MockEventPublisher
	uow         *persistencemocks.FakeUnitOfWork

	useCase *AdminUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		accounts:    persistencemocks.NewMockAccountRepository(t),
		balances:    persistencemocks.NewMockBalanceRepository(t),
		adjustments: persistencemocks.NewMockBalanceAdjustmentRepository(t),
		proofs:      persistencemocks.NewMockPaymentProofRepository(t),
		withdrawals: persistencemocks.NewMockWithdrawalRepository(t),
		settings:    usecasemocks.NewMockSettingsProvider(t),
		events:      coremocks.NewMockEventPublisher(t),
	}
	f.uow = persistencemocks.NewFakeUnitOfWork(persistence.Repositories{
		Accounts:    f.accounts,
		Balances:    f.balances,
		Adjustments: f.adjustments,
		Proofs:      f.proofs,
		Withdrawals: f.withdrawals,
	})

	logger := coremocks.NewMockLogger(t).AllowAll()
	metrics := coremocks.NewMockMetrics(t).AllowAll()
	tp := coremocks.FixedTime(t, fixedTime)
	dispatcher := followup.NewDispatcher(followup.Config{MaxAttempts: 1}, logger, tp, metrics)

	f.useCase = NewAdminUseCase(f.uow, f.settings, dispatcher, f.events, tp, logger, metrics)
	return f
}
