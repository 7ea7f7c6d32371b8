package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles login and session HTTP requests
type AuthHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// Login handles the POST /api/auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(result.Session, result.Account))
}

// Logout handles the POST /api/auth/logout endpoint
func (h *AuthHandler) Logout(c *gin.Context) {
	session, ok := currentSession(c, h.logger)
	if !ok {
		return
	}

	if err := h.accounts.Logout(c.Request.Context(), session.ID); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Session handles the GET /api/auth/session endpoint
func (h *AuthHandler) Session(c *gin.Context) {
	session, ok := currentSession(c, h.logger)
	if !ok {
		return
	}

	active, err := h.accounts.SessionActive(c.Request.Context(), session.ID)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	resp := dto.SessionStatusResponse{Active: active}
	if active {
		resp.UserID = session.UserID
	}
	c.JSON(http.StatusOK, resp)
}
