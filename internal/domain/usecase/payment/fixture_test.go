package payment

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
	usecasemocks "github.com/johnjerry8749/Affiliate-Academy-sub000/mocks/port/usecase"
	"github.com/stretchr/testify/mock"
)

var fixedTime = time.Date(2024, 8, 8, 8, 0, 0, 0, time.UTC)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type fixture struct {
	registrar *usecasemocks.MockRegistrar
	settings  *usecasemocks.MockSettingsProvider
	identity  *externalmocks.MockIdentityProvider
	gateway   *externalmocks.MockPaymentGateway
	storage   *externalmocks.MockFileStorage
	mailer    *externalmocks.MockMailer
	accounts  *persistencemocks.MockAccountRepository
	payments  *persistencemocks.MockGatewayPaymentRepository
	proofs    *persistencemocks.MockPaymentProofRepository
	events    *coremocks.MockEventPublisher
	uow       *persistencemocks.FakeUnitOfWork

	gatewayUseCase *GatewayUseCase
	cryptoUseCase  *CryptoUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		registrar: usecasemocks.NewMockRegistrar(t),
		settings:  usecasemocks.NewMockSettingsProvider(t),
		identity:  externalmocks.NewMockIdentityProvider(t),
		gateway:   externalmocks.NewMockPaymentGateway(t),
		storage:   externalmocks.NewMockFileStorage(t),
		mailer:    externalmocks.NewMockMailer(t),
		accounts:  persistencemocks.NewMockAccountRepository(t),
		payments:  persistencemocks.NewMockGatewayPaymentRepository(t),
		proofs:    persistencemocks.NewMockPaymentProofRepository(t),
		events:    coremocks.NewMockEventPublisher(t),
	}
	repos := persistence.Repositories{
		Accounts:        f.accounts,
		GatewayPayments: f.payments,
		Proofs:          f.proofs,
	}
	f.uow = persistencemocks.NewFakeUnitOfWork(repos)

	logger := coremocks.NewMockLogger(t).AllowAll()
	metrics := coremocks.NewMockMetrics(t).AllowAll()
	tp := coremocks.FixedTime(t, fixedTime)
	dispatcher := followup.NewDispatcher(followup.Config{MaxAttempts: 1}, logger, tp, metrics)

	f.gatewayUseCase = NewGatewayUseCase(f.registrar, f.identity, f.gateway, f.settings, repos, f.uow,
		dispatcher, f.events, tp, logger, metrics)
	f.cryptoUseCase = NewCryptoUseCase(f.registrar, f.identity, f.storage, f.mailer, f.settings, f.proofs,
		dispatcher, tp, logger, metrics)
	return f
}

func testSettings() entity.SystemSettings {
	return entity.SystemSettings{
		ReferralCommission:   50000,
		RegistrationFee:      500000,
		RegistrationCurrency: "NGN",
		GatewayPublicKey:     "pk_test",
		GatewaySecretKey:     "sk_test",
		WalletName:           "USDT (TRC20)",
		WalletAddress:        "TXdefault",
		SMTPHost:             "smtp.example.com",
		SMTPPort:             587,
		AdminEmail:           "admin@example.com",
	}
}

func (f *fixture) withSettings() {
	f.settings.On("Current", mock.Anything).Return(testSettings(), nil)
}

func registration() usecase.RegistrationRequest {
	return usecase.RegistrationRequest{
		FullName:      "Ada Obi",
		Email:         "ada@example.com",
		Password:      "s3cret-pass",
		PhoneNumber:   "+2348000000000",
		Country:       "Nigeria",
		AgreedToTerms: true,
	}
}

func registered(userID string) *usecase.RegistrationResult {
	return &usecase.RegistrationResult{
		Account: &entity.Account{ID: userID, Email: "ada@example.com", FullName: "Ada Obi", Country: "Nigeria"},
		Session: &entity.Session{ID: "sess-" + userID, UserID: userID},
	}
}
