package payment

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/external"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
)

// FollowUpNotifyAdmin emails the admin about a new payment proof
const FollowUpNotifyAdmin = "mail.admin_proof_submitted"

// ProofSubmittedMessage is shown to the user after a proof submission
const ProofSubmittedMessage = "Registration received. Your payment is pending approval and usually takes 24-48 hours. " +
	"You will be able to log in once it is approved."

// CryptoUseCase registers accounts paid by cryptocurrency with a proof image for manual review
type CryptoUseCase struct {
	registrar    usecase.Registrar
	identity     external.IdentityProvider
	storage      external.FileStorage
	mailer       external.Mailer
	settings     usecase.SettingsProvider
	proofs       persistence.PaymentProofRepository
	followUps    usecase.FollowUpDispatcher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
}

// NewCryptoUseCase creates a new CryptoUseCase
func NewCryptoUseCase(
	registrar usecase.Registrar,
	identity external.IdentityProvider,
	storage external.FileStorage,
	mailer external.Mailer,
	settings usecase.SettingsProvider,
	proofs persistence.PaymentProofRepository,
	followUps usecase.FollowUpDispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) *CryptoUseCase {
	return &CryptoUseCase{
		registrar:    registrar,
		identity:     identity,
		storage:      storage,
		mailer:       mailer,
		settings:     settings,
		proofs:       proofs,
		followUps:    followUps,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

var _ usecase.CryptoPaymentUseCase = (*CryptoUseCase)(nil)

// SubmitProof validates the proof image, registers an unpaid account, stores
// the proof for review and signs the user out. The account is never marked paid here.
func (u *CryptoUseCase) SubmitProof(ctx context.Context, submission usecase.CryptoSubmission) (*usecase.ProofSubmission, error) {
	if err := submission.File.Validate(); err != nil {
		u.metrics.PaymentProcessed("crypto", "invalid_file")
		return nil, err
	}

	settings, err := u.settings.Current(ctx)
	if err != nil {
		return nil, err
	}

	req := submission.Registration
	req.Paid = false
	req.Role = string(entity.RoleUser)
	req.PaymentMethod = string(entity.PaymentMethodCrypto)

	result, err := u.registrar.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	account := result.Account

	objectPath := entity.ProofObjectPath(account.ID, uuid.NewString(), submission.File.Extension())
	proofURL, err := u.storage.Upload(ctx, objectPath, bytes.NewReader(submission.File.Data))
	if err != nil {
		u.logger.Error("Failed to upload payment proof", map[string]any{
			"user_id": account.ID,
			"path":    objectPath,
			"error":   err.Error(),
		})
		u.signOut(ctx, result.Session)
		u.metrics.PaymentProcessed("crypto", "upload_failed")
		return nil, fmt.Errorf("%w: upload payment proof: %v", errs.ErrUpstreamUnavailable, err)
	}

	proof := entity.NewPaymentProof(
		account.ID,
		firstNonEmpty(submission.WalletName, settings.WalletName),
		firstNonEmpty(submission.WalletAddress, settings.WalletAddress),
		proofURL,
		u.timeProvider,
	)
	if err := u.proofs.Create(ctx, proof); err != nil {
		u.logger.Error("Failed to store payment proof", map[string]any{
			"user_id": account.ID,
			"error":   err.Error(),
		})
		u.signOut(ctx, result.Session)
		return nil, err
	}

	u.notifyAdmin(settings, account, proof)
	u.signOut(ctx, result.Session)

	u.logger.Info("Crypto payment proof submitted", map[string]any{
		"user_id":  account.ID,
		"proof_id": proof.ID,
	})
	u.metrics.PaymentProcessed("crypto", "submitted")

	return &usecase.ProofSubmission{
		Account: account,
		Proof:   proof,
		Message: ProofSubmittedMessage,
	}, nil
}

// notifyAdmin queues the admin email; missing mail settings skip it
func (u *CryptoUseCase) notifyAdmin(settings entity.SystemSettings, account *entity.Account, proof *entity.PaymentProof) {
	if !settings.MailConfigured() {
		u.logger.Info("Mail settings incomplete, skipping admin notification", map[string]any{
			"proof_id": proof.ID,
		})
		return
	}

	mail := external.Mail{
		To:      settings.AdminEmail,
		Subject: "New crypto payment proof submitted",
		Message: strings.Join([]string{
			"A new cryptocurrency payment proof is waiting for review.",
			"",
			"Name: " + account.FullName,
			"Email: " + account.Email,
			"Phone: " + account.PhoneNumber,
			"Country: " + account.Country,
			"Wallet: " + proof.WalletName + " " + proof.WalletAddress,
			"Proof: " + proof.ProofURL,
			"Submitted: " + proof.CreatedAt.Format("2006-01-02 15:04 MST"),
		}, "\n"),
	}

	u.followUps.Go(usecase.FollowUp{
		Name: FollowUpNotifyAdmin,
		Run: func(ctx context.Context) error {
			return u.mailer.Send(ctx, settings, mail)
		},
	})
}

func (u *CryptoUseCase) signOut(ctx context.Context, session *entity.Session) {
	if session == nil {
		return
	}
	if err := u.identity.SignOut(ctx, session.ID); err != nil {
		u.logger.Warn("Failed to sign out after proof submission", map[string]any{
			"user_id": session.UserID,
			"error":   err.Error(),
		})
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
