package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/middleware"
)

// AdminHandler handles back-office HTTP requests
type AdminHandler struct {
	admin  usecase.AdminUseCase
	logger coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(admin usecase.AdminUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		admin:  admin,
		logger: logger,
	}
}

// UpdatePaymentStatus handles the PATCH /api/admin/payments/:id/status endpoint
func (h *AdminHandler) UpdatePaymentStatus(c *gin.Context) {
	session, ok := currentSession(c, h.logger)
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.admin.UpdatePaymentStatus(
		c.Request.Context(),
		c.Param("id"),
		entity.ProofStatus(req.Status),
		session.UserID,
	)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentReviewResponse{
		Proof:   dto.NewProofResponse(result.Proof),
		Changed: result.Changed,
	})
}

// UpdateWithdrawalStatus handles the PATCH /api/admin/withdrawals/:id/status endpoint
func (h *AdminHandler) UpdateWithdrawalStatus(c *gin.Context) {
	session, ok := currentSession(c, h.logger)
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.admin.UpdateWithdrawalStatus(
		c.Request.Context(),
		c.Param("id"),
		entity.WithdrawalStatus(req.Status),
		session.UserID,
	)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	resp := dto.NewWithdrawalResponse(result.Withdrawal)
	resp.Changed = &result.Changed
	c.JSON(http.StatusOK, resp)
}

// UpdateUserBalance handles the PUT /api/admin/users/:id/balance endpoint
func (h *AdminHandler) UpdateUserBalance(c *gin.Context) {
	session, ok := currentSession(c, h.logger)
	if !ok {
		return
	}

	var req dto.BalanceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	balance, err := h.admin.UpdateUserBalance(c.Request.Context(), c.Param("id"), req.Amount, session.UserID)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(balance, nil))
}

// GetSettings handles the GET /api/admin/settings endpoint
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.admin.GetSettings(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSettingsPayload(settings))
}

// UpdateSettings handles the PUT /api/admin/settings endpoint
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req dto.SettingsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	settings, err := req.ToEntity()
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	saved, err := h.admin.UpdateSettings(c.Request.Context(), settings)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSettingsPayload(saved))
}
