package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "AA"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decode(v, env)
}

// decode applies environment overrides and unmarshals the viper state
func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)
	v.SetDefault("server.maxUploadMB", 8)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.keyPrefix", "aa:")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.issuer", "affiliate-academy")
	v.SetDefault("auth.sessionTTL", 24)
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("gateway.baseURL", "https://api.paystack.co")
	v.SetDefault("gateway.timeout", 15)

	v.SetDefault("fxrate.baseURL", "https://open.er-api.com/v6/latest")
	v.SetDefault("fxrate.timeout", 10)
	v.SetDefault("fxrate.cacheTTL", 60)

	v.SetDefault("storage.port", 21)
	v.SetDefault("storage.rootDir", "/")
	v.SetDefault("storage.timeout", 10)

	v.SetDefault("mail.timeout", 10)

	v.SetDefault("nats.name", "affiliate-academy")
	v.SetDefault("nats.maxReconnects", 10)
	v.SetDefault("nats.reconnectWait", 2)

	v.SetDefault("referral.commissionSource", "fixed")
	v.SetDefault("referral.fixedCommission", "500.00")

	v.SetDefault("followup.maxAttempts", 3)
	v.SetDefault("followup.retryDelay", 200)
	v.SetDefault("followup.timeout", 10)
	v.SetDefault("followup.queueSize", 100)
	v.SetDefault("followup.async", true)

	v.SetDefault("cors.allowedOrigins", []string{"http://localhost:5173"})

	v.SetDefault("seed.registrationFee", "5000.00")
	v.SetDefault("seed.registrationCurrency", "NGN")
	v.SetDefault("seed.referralCommission", "500.00")
}

// getEnvironment determines the environment to use based on AA_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values.
// Secrets are usually only provided this way.
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"AA_DB_HOST":          "database.host",
		"AA_DB_PORT":          "database.port",
		"AA_DB_USERNAME":      "database.username",
		"AA_DB_PASSWORD":      "database.password",
		"AA_DB_NAME":          "database.database",
		"AA_DB_SSL_MODE":      "database.sslMode",
		"AA_SERVER_HOST":      "server.host",
		"AA_LOGGER_LEVEL":     "logger.level",
		"AA_REDIS_ADDR":       "redis.addr",
		"AA_REDIS_PASSWORD":   "redis.password",
		"AA_JWT_SECRET":       "auth.jwtSecret",
		"AA_GATEWAY_BASE_URL": "gateway.baseURL",
		"AA_GATEWAY_CALLBACK": "gateway.callbackURL",
		"AA_FTP_HOST":         "storage.host",
		"AA_FTP_USERNAME":     "storage.username",
		"AA_FTP_PASSWORD":     "storage.password",
		"AA_FTP_PUBLIC_URL":   "storage.publicBaseURL",
		"AA_NATS_URL":         "nats.url",
		"AA_ADMIN_EMAIL":      "seed.adminEmail",
		"AA_ADMIN_PASSWORD":   "seed.adminPassword",
	}
	for env, key := range overrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if port := getEnvInt("AA_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if maxOpenConns := getEnvInt("AA_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("AA_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if attempts := getEnvInt("AA_FOLLOWUP_MAX_ATTEMPTS", 0); attempts > 0 {
		v.Set("followup.maxAttempts", attempts)
	}
	if origins := os.Getenv("AA_CORS_ALLOWED_ORIGINS"); origins != "" {
		v.Set("cors.allowedOrigins", strings.Split(origins, ","))
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.RetryDelay *= time.Second

	config.Auth.SessionTTL *= time.Hour
	config.Gateway.Timeout *= time.Second
	config.FXRate.Timeout *= time.Second
	config.FXRate.CacheTTL *= time.Minute
	config.Storage.Timeout *= time.Second
	config.Mail.Timeout *= time.Second
	config.NATS.ReconnectWait *= time.Second
	config.FollowUp.RetryDelay *= time.Millisecond
	config.FollowUp.Timeout *= time.Second
}

// validate rejects configurations the service cannot start with
func validate(config *Config) error {
	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwtSecret is required (set %s_JWT_SECRET)", EnvPrefix)
	}
	if config.Environment == Production && len(config.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwtSecret must be at least 32 characters in production")
	}
	switch config.Referral.CommissionSource {
	case "fixed", "settings":
	default:
		return fmt.Errorf("referral.commissionSource must be fixed or settings, got %q", config.Referral.CommissionSource)
	}
	return nil
}
