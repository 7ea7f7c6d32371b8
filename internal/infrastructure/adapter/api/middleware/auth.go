package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	domainerr "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/external"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
)

// SessionKey is the gin context key holding the authenticated *entity.Session
const SessionKey = "session"

// RequireSession resolves the bearer token into an active session
func RequireSession(identity external.IdentityProvider, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			AbortWithError(c, logger, domainerr.ErrUnauthorized)
			return
		}

		session, err := identity.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			AbortWithError(c, logger, err)
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// RequireAdmin lets only admin accounts through. It must run after RequireSession.
func RequireAdmin(accounts persistence.AccountRepository, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			AbortWithError(c, logger, domainerr.ErrUnauthorized)
			return
		}

		account, err := accounts.GetByID(c.Request.Context(), session.UserID)
		if err != nil {
			if domainerr.IsNotFoundError(err) {
				AbortWithError(c, logger, domainerr.ErrForbidden)
				return
			}
			AbortWithError(c, logger, err)
			return
		}
		if account.Role != entity.RoleAdmin {
			logger.Warn("Non-admin attempted an admin action", map[string]any{
				"user_id": session.UserID,
				"path":    c.Request.URL.Path,
			})
			AbortWithError(c, logger, domainerr.ErrForbidden)
			return
		}

		c.Next()
	}
}

// SessionFrom returns the session stored by RequireSession
func SessionFrom(c *gin.Context) (*entity.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*entity.Session)
	return session, ok && session != nil
}
