package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/usecase/account"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/usecase/admin"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/usecase/currency"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/usecase/followup"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/usecase/payment"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/usecase/settings"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/handler"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/routes"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/auth"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/database"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/database/migration"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/events"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/fxrate"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/gateway"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/logger"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/mail"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/metrics"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/repository"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/storage"
	timeProvider "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/time"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	appMetrics := metrics.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	dbManager := database.NewManager(database.FromAppConfig(cfg.Database, cfg.Logger.Level), appLogger, tp)
	db, err := dbManager.Connect(ctx)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if sqlDB, err := db.DB(); err == nil {
		if err := appMetrics.RegisterDBStats(sqlDB, cfg.Database.Database); err != nil {
			appLogger.Warn("Failed to register database metrics", map[string]any{"error": err.Error()})
		}
	}

	// Run migrations and first-boot seed
	hashPassword := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	if cfg.Database.AutoMigrate {
		if err := dbManager.Migrate(ctx); err != nil {
			appLogger.Error("Failed to run migrations", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		seed, err := seedData(cfg.Seed)
		if err != nil {
			appLogger.Error("Invalid seed configuration", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		if err := migration.NewSeeder(db, hashPassword, appLogger, tp).Seed(ctx, seed); err != nil {
			appLogger.Error("Failed to seed database", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Repositories and unit of work
	repos := dbManager.Repositories()
	uow := dbManager.CreateUnitOfWork()

	// Identity provider backed by credentials and a Redis session registry
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error("Failed to connect to Redis", map[string]any{
			"addr":  cfg.Redis.Addr,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	identity := auth.NewIdentityProvider(
		cfg.Auth,
		repository.NewCredentialRepository(db, appLogger),
		auth.NewRedisSessionStore(redisClient, cfg.Redis.KeyPrefix),
		tp,
		appLogger,
	)

	// Event publisher, optional
	var publisher coreport.EventPublisher = events.NewNoopPublisher(appLogger)
	if cfg.NATS.URL != "" {
		natsPublisher, err := events.Connect(cfg.NATS, tp, appLogger)
		if err != nil {
			appLogger.Warn("Event publishing disabled", map[string]any{"error": err.Error()})
		} else {
			defer natsPublisher.Close()
			publisher = natsPublisher
		}
	}

	// Follow-up dispatcher
	dispatcher := followup.NewDispatcher(followup.Config{
		MaxAttempts: cfg.FollowUp.MaxAttempts,
		RetryDelay:  cfg.FollowUp.RetryDelay,
		Timeout:     cfg.FollowUp.Timeout,
		QueueSize:   cfg.FollowUp.QueueSize,
		Async:       cfg.FollowUp.Async,
	}, appLogger, tp, appMetrics)

	// Initialize use cases
	settingsProvider := settings.NewProvider(dbManager.SettingsRepository(), tp, appLogger)

	fixedCommission, err := entity.ParseAmount(cfg.Referral.FixedCommission)
	if err != nil {
		appLogger.Error("Invalid referral.fixedCommission", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	commission := account.NewCommissionPolicy(cfg.Referral.CommissionSource, fixedCommission, settingsProvider)

	accountUseCase := account.NewAccountUseCase(identity, repos, uow, commission, dispatcher, publisher, tp, appLogger, appMetrics)
	adminUseCase := admin.NewAdminUseCase(uow, settingsProvider, dispatcher, publisher, tp, appLogger, appMetrics)
	converter := currency.NewConverter(fxrate.NewClient(cfg.FXRate), cfg.FXRate.CacheTTL, tp, appLogger)
	gatewayUseCase := payment.NewGatewayUseCase(
		accountUseCase,
		identity,
		gateway.NewClient(cfg.Gateway),
		settingsProvider,
		repos,
		uow,
		dispatcher,
		publisher,
		tp,
		appLogger,
		appMetrics,
	)
	cryptoUseCase := payment.NewCryptoUseCase(
		accountUseCase,
		identity,
		storage.NewFTPStorage(cfg.Storage, appLogger),
		mail.NewSMTPMailer(cfg.Mail, tp, appLogger),
		settingsProvider,
		repos.Proofs,
		dispatcher,
		tp,
		appLogger,
		appMetrics,
	)

	// Initialize Gin router
	router := gin.New()
	router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, appMetrics, cfg.CORS.AllowedOrigins)

	// Setup routes
	routes.SetupRoutes(router, routes.Handlers{
		Auth:     handler.NewAuthHandler(accountUseCase, appLogger),
		Payment:  handler.NewPaymentHandler(gatewayUseCase, cryptoUseCase, appLogger),
		Currency: handler.NewCurrencyHandler(converter, appLogger),
		Account:  handler.NewAccountHandler(accountUseCase, appLogger),
		Admin:    handler.NewAdminHandler(adminUseCase, appLogger),
	}, routes.Guards{
		Identity: identity,
		Accounts: repos.Accounts,
	}, appMetrics, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	// Drain queued follow-ups after the last request finished
	appLogger.Info("Shutting down follow-up dispatcher...", nil)
	dispatcher.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

// seedData parses the first-boot values from config
func seedData(cfg config.SeedConfig) (migration.SeedData, error) {
	fee, err := entity.ParseAmount(cfg.RegistrationFee)
	if err != nil {
		return migration.SeedData{}, fmt.Errorf("seed.registrationFee: %w", err)
	}
	commission, err := entity.ParseAmount(cfg.ReferralCommission)
	if err != nil {
		return migration.SeedData{}, fmt.Errorf("seed.referralCommission: %w", err)
	}

	return migration.SeedData{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		Settings: entity.SystemSettings{
			ReferralCommission:   commission,
			RegistrationFee:      fee,
			RegistrationCurrency: strings.ToUpper(cfg.RegistrationCurrency),
			AdminEmail:           cfg.AdminEmail,
		},
	}, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	required := map[string]string{
		"database.host":     cfg.Database.Host,
		"database.port":     cfg.Database.Port,
		"database.username": cfg.Database.Username,
		"database.password": cfg.Database.Password,
		"database.database": cfg.Database.Database,
	}
	envNames := map[string]string{
		"database.host":     "AA_DB_HOST",
		"database.port":     "AA_DB_PORT",
		"database.username": "AA_DB_USERNAME",
		"database.password": "AA_DB_PASSWORD",
		"database.database": "AA_DB_NAME",
	}
	for key, value := range required {
		if value == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", key, envNames[key]))
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "redis.addr (or AA_REDIS_ADDR environment variable)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if cfg.Storage.Host == "" {
			warnings = append(warnings, "storage.host is empty, crypto payment proofs cannot be stored")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
