package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/middleware"
)

// AccountHandler handles the signed-in user's ledger requests
type AccountHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// GetBalance handles the GET /api/me/balance endpoint
func (h *AccountHandler) GetBalance(c *gin.Context) {
	session, ok := currentSession(c, h.logger)
	if !ok {
		return
	}

	view, err := h.accounts.GetBalance(c.Request.Context(), session.UserID)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(view.Balance, view.Recent))
}

// RequestWithdrawal handles the POST /api/me/withdrawals endpoint
func (h *AccountHandler) RequestWithdrawal(c *gin.Context) {
	session, ok := currentSession(c, h.logger)
	if !ok {
		return
	}

	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	withdrawal, err := h.accounts.RequestWithdrawal(c.Request.Context(), usecase.WithdrawalRequest{
		UserID:         session.UserID,
		Amount:         req.Amount,
		AccountDetails: req.AccountDetails,
	})
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewWithdrawalResponse(withdrawal))
}
