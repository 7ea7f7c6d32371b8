package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	domainerr "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/middleware"
)

// ProofFormField is the multipart field carrying the payment proof image
const ProofFormField = "paymentProof"

// LoginRedirect is where crypto registrants are sent after submitting a proof
const LoginRedirect = "/login"

// PaymentHandler handles registration payment HTTP requests
type PaymentHandler struct {
	gateway usecase.GatewayPaymentUseCase
	crypto  usecase.CryptoPaymentUseCase
	logger  coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(
	gateway usecase.GatewayPaymentUseCase,
	crypto usecase.CryptoPaymentUseCase,
	logger coreport.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		gateway: gateway,
		crypto:  crypto,
		logger:  logger,
	}
}

// Initialize handles the POST /api/payments/gateway/initialize endpoint
func (h *PaymentHandler) Initialize(c *gin.Context) {
	var req dto.InitializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	checkout, err := h.gateway.Initiate(c.Request.Context(), usecase.CheckoutRequest{
		Email:    req.Email,
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		Reference:        checkout.Reference,
		AuthorizationURL: checkout.AuthorizationURL,
		PublicKey:        checkout.PublicKey,
		Amount:           entity.FormatAmount(checkout.Amount),
		Currency:         checkout.Currency,
		Email:            checkout.Email,
	})
}

// Complete handles the POST /api/payments/gateway/complete endpoint
func (h *PaymentHandler) Complete(c *gin.Context) {
	var req dto.CompleteRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.gateway.CompleteRegistration(
		c.Request.Context(),
		req.Reference,
		toRegistration(req.Registration, entity.PaymentMethodGateway),
	)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegistrationResponse{
		User:           dto.NewAccountResponse(result.Account),
		Session:        newSessionResponse(result.Session, nil),
		ReferralStatus: referralStatus(result.Referral),
	})
}

// Verify handles the POST /api/payments/gateway/verify endpoint
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.gateway.Verify(c.Request.Context(), req.Reference, req.UserID, req.ReferrerID)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{
		Reference:       result.Reference,
		UserID:          result.UserID,
		AlreadyVerified: result.AlreadyVerified,
	})
}

// SubmitCrypto handles the POST /api/payments/crypto/submit endpoint
func (h *PaymentHandler) SubmitCrypto(c *gin.Context) {
	var form dto.CryptoSubmitForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.AbortBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	file, err := readProofFile(c)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	result, err := h.crypto.SubmitProof(c.Request.Context(), usecase.CryptoSubmission{
		Registration:  toRegistration(form.RegistrationRequest, entity.PaymentMethodCrypto),
		File:          file,
		WalletName:    form.WalletName,
		WalletAddress: form.WalletAddress,
	})
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ProofSubmissionResponse{
		User:     dto.NewAccountResponse(result.Account),
		Proof:    dto.NewProofResponse(result.Proof),
		Message:  result.Message,
		Redirect: LoginRedirect,
	})
}

// readProofFile reads at most one byte past the size limit so oversized
// uploads are rejected without buffering them whole
func readProofFile(c *gin.Context) (entity.ProofFile, error) {
	header, err := c.FormFile(ProofFormField)
	if err != nil {
		return entity.ProofFile{}, domainerr.NewValidationError(ProofFormField, "payment proof file is required")
	}
	if header.Size > entity.MaxProofSize {
		return entity.ProofFile{}, domainerr.ErrFileTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return entity.ProofFile{}, domainerr.NewValidationError(ProofFormField, "unable to read payment proof")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, entity.MaxProofSize+1))
	if err != nil {
		return entity.ProofFile{}, domainerr.NewValidationError(ProofFormField, "unable to read payment proof")
	}

	return entity.ProofFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}
