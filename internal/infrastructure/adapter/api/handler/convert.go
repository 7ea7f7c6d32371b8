package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	domainerr "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/middleware"
)

// currentSession aborts with 401 when the route was not behind RequireSession
func currentSession(c *gin.Context, logger coreport.Logger) (*entity.Session, bool) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		middleware.AbortWithError(c, logger, domainerr.ErrUnauthorized)
	}
	return session, ok
}

func newSessionResponse(session *entity.Session, account *entity.Account) *dto.SessionResponse {
	if session == nil {
		return nil
	}
	return &dto.SessionResponse{
		SessionID:   session.ID,
		AccessToken: session.AccessToken,
		ExpiresAt:   session.ExpiresAt,
		User:        dto.NewAccountResponse(account),
	}
}

func toRegistration(req dto.RegistrationRequest, method entity.PaymentMethod) usecase.RegistrationRequest {
	return usecase.RegistrationRequest{
		FullName:      req.FullName,
		Email:         req.Email,
		Password:      req.Password,
		PhoneNumber:   req.PhoneNumber,
		Country:       req.Country,
		PaymentMethod: string(method),
		AgreedToTerms: req.AgreedToTerms,
		ReferralCode:  req.ReferralCode,
	}
}

// referralStatus reports the referral follow-up outcome without failing the request
func referralStatus(outcome *usecase.FollowUpOutcome) string {
	switch {
	case outcome == nil:
		return ""
	case outcome.Failed():
		return "failed"
	default:
		return "credited"
	}
}
