package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetString(RequestIDKey),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

// ErrorStatus maps a domain error to its HTTP status code
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrInvalidCredentials),
		errors.Is(err, domainerr.ErrUnauthorized),
		errors.Is(err, domainerr.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrPaymentVerification):
		return http.StatusPaymentRequired
	case errors.Is(err, domainerr.ErrUnpaidAccount), errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrEmailTaken),
		errors.Is(err, domainerr.ErrInvalidStatusTransition),
		errors.Is(err, domainerr.ErrReferenceConflict):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, domainerr.ErrProfileUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError writes the error response for err. Server errors get a
// fixed message so internals never leak to clients.
func AbortWithError(c *gin.Context, logger coreport.Logger, err error) {
	status := ErrorStatus(err)
	message := err.Error()

	fields := map[string]any{}
	for k, v := range domainerr.LogFields(err) {
		fields[k] = v
	}
	fields["path"] = c.Request.URL.Path
	fields["request_id"] = c.GetString(RequestIDKey)

	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger.Error("Request failed", fields)
		message = "Internal server error"
		if status == http.StatusBadGateway {
			message = domainerr.ErrUpstreamUnavailable.Error()
		}
	} else {
		logger.Debug("Request rejected", fields)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// AbortBadRequest rejects malformed input that never reached a use case
func AbortBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeValidation,
		Message: message,
	})
}
