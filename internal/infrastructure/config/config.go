package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Gateway     GatewayConfig  `mapstructure:"gateway"`
	FXRate      FXRateConfig   `mapstructure:"fxrate"`
	Storage     StorageConfig  `mapstructure:"storage"`
	Mail        MailConfig     `mapstructure:"mail"`
	NATS        NATSConfig     `mapstructure:"nats"`
	Referral    ReferralConfig `mapstructure:"referral"`
	FollowUp    FollowUpConfig `mapstructure:"followup"`
	CORS        CORSConfig     `mapstructure:"cors"`
	Seed        SeedConfig     `mapstructure:"seed"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	MaxUploadMB       int64         `mapstructure:"maxUploadMB"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// RedisConfig contains the session registry connection
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"keyPrefix"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig contains credential and session token settings
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwtSecret"`
	Issuer     string        `mapstructure:"issuer"`
	SessionTTL time.Duration `mapstructure:"sessionTTL"` // hours
	BcryptCost int           `mapstructure:"bcryptCost"`
}

// GatewayConfig contains the card payment gateway client settings.
// Keys live in system settings; only transport settings are configured here.
type GatewayConfig struct {
	BaseURL     string        `mapstructure:"baseURL"`
	CallbackURL string        `mapstructure:"callbackURL"`
	Timeout     time.Duration `mapstructure:"timeout"` // seconds
}

// FXRateConfig contains the exchange-rate feed settings
type FXRateConfig struct {
	BaseURL  string        `mapstructure:"baseURL"`
	Timeout  time.Duration `mapstructure:"timeout"`  // seconds
	CacheTTL time.Duration `mapstructure:"cacheTTL"` // minutes
}

// StorageConfig contains the FTP object store settings
type StorageConfig struct {
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	Username      string        `mapstructure:"username"`
	Password      string        `mapstructure:"password"`
	RootDir       string        `mapstructure:"rootDir"`
	PublicBaseURL string        `mapstructure:"publicBaseURL"`
	Timeout       time.Duration `mapstructure:"timeout"` // seconds
}

// MailConfig contains mail transport settings. Credentials live in system settings.
type MailConfig struct {
	Timeout time.Duration `mapstructure:"timeout"` // seconds
}

// NATSConfig contains the event bus settings. An empty URL disables publishing.
type NATSConfig struct {
	URL           string        `mapstructure:"url"`
	Name          string        `mapstructure:"name"`
	MaxReconnects int           `mapstructure:"maxReconnects"`
	ReconnectWait time.Duration `mapstructure:"reconnectWait"` // seconds
}

// ReferralConfig selects where the referral commission amount comes from
type ReferralConfig struct {
	CommissionSource string `mapstructure:"commissionSource"` // fixed | settings
	FixedCommission  string `mapstructure:"fixedCommission"`
}

// FollowUpConfig contains best-effort side effect settings
type FollowUpConfig struct {
	MaxAttempts int           `mapstructure:"maxAttempts"`
	RetryDelay  time.Duration `mapstructure:"retryDelay"` // milliseconds
	Timeout     time.Duration `mapstructure:"timeout"`    // seconds
	QueueSize   int           `mapstructure:"queueSize"`
	Async       bool          `mapstructure:"async"`
}

// CORSConfig contains cross-origin settings for the browser client
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// SeedConfig contains the first-boot data written by migrations
type SeedConfig struct {
	AdminEmail           string `mapstructure:"adminEmail"`
	AdminPassword        string `mapstructure:"adminPassword"`
	RegistrationFee      string `mapstructure:"registrationFee"`
	RegistrationCurrency string `mapstructure:"registrationCurrency"`
	ReferralCommission   string `mapstructure:"referralCommission"`
}
