package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/external"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/handler"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/middleware"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/metrics"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Auth     *handler.AuthHandler
	Payment  *handler.PaymentHandler
	Currency *handler.CurrencyHandler
	Account  *handler.AccountHandler
	Admin    *handler.AdminHandler
}

// Guards are the authentication dependencies of protected routes
type Guards struct {
	Identity external.IdentityProvider
	Accounts persistence.AccountRepository
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, guards Guards, m *metrics.Metrics, logger coreport.Logger) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	requireSession := middleware.RequireSession(guards.Identity, logger)
	requireAdmin := middleware.RequireAdmin(guards.Accounts, logger)

	api := router.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", requireSession, h.Auth.Logout)
		auth.GET("/session", requireSession, h.Auth.Session)
	}

	// Registration payment routes
	payments := api.Group("/payments")
	{
		payments.POST("/gateway/initialize", h.Payment.Initialize)
		payments.POST("/gateway/complete", h.Payment.Complete)
		payments.POST("/gateway/verify", h.Payment.Verify)
		payments.POST("/crypto/submit", h.Payment.SubmitCrypto)
	}

	// Currency routes
	currency := api.Group("/currency")
	{
		currency.GET("/convert", h.Currency.Convert)
		currency.GET("/rates", h.Currency.Rates)
	}

	// Signed-in user routes
	me := api.Group("/me", requireSession)
	{
		me.GET("/balance", h.Account.GetBalance)
		me.POST("/withdrawals", h.Account.RequestWithdrawal)
	}

	// Admin routes
	admin := api.Group("/admin", requireSession, requireAdmin)
	{
		admin.PATCH("/payments/:id/status", h.Admin.UpdatePaymentStatus)
		admin.PATCH("/withdrawals/:id/status", h.Admin.UpdateWithdrawalStatus)
		admin.PUT("/users/:id/balance", h.Admin.UpdateUserBalance)
		admin.GET("/settings", h.Admin.GetSettings)
		admin.PUT("/settings", h.Admin.UpdateSettings)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, m *metrics.Metrics, allowedOrigins []string) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	if m != nil {
		router.Use(middleware.Metrics(m))
	}
	router.Use(middleware.CORS(allowedOrigins))
}
