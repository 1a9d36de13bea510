package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage"  validate:"required"`
	Mail     MailConfig     `mapstructure:"mail"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// BaseURL is the public origin used in verification links.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`

	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Enable it only behind a proxy that overwrites those headers.
	TrustProxy bool `mapstructure:"trust_proxy"`

	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"gt=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"     validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"               validate:"required,url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"    validate:"gt=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gt=0"`

	// AutoMigrate applies pending migrations on startup.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lte=44640"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"gte=4,lte=31"`

	// RequireVerification rejects logins of accounts whose email is unverified.
	RequireVerification bool `mapstructure:"require_verification"`

	// Rate limit applied per client IP to the public auth endpoints.
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"   validate:"gt=0"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst" validate:"gt=0"`
}

// StorageConfig selects and configures avatar storage.
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=local s3"`

	// Local driver
	LocalDir  string `mapstructure:"local_dir"  validate:"required_if=Driver local"`
	PublicURL string `mapstructure:"public_url" validate:"required_if=Driver local"`

	// S3 driver (AWS or any S3-compatible endpoint such as MinIO)
	S3Bucket    string `mapstructure:"s3_bucket"     validate:"required_if=Driver s3"`
	S3Region    string `mapstructure:"s3_region"     validate:"required_if=Driver s3"`
	S3Endpoint  string `mapstructure:"s3_endpoint"   validate:"omitempty,url"`
	S3AccessKey string `mapstructure:"s3_access_key"`
	S3SecretKey string `mapstructure:"s3_secret_key"`

	MaxAvatarBytes int64 `mapstructure:"max_avatar_bytes" validate:"gt=0"`
}

// MailConfig selects and configures the verification mail sender.
type MailConfig struct {
	Driver   string `mapstructure:"driver"    validate:"required,oneof=log smtp"`
	From     string `mapstructure:"from"      validate:"required,email"`
	SMTPHost string `mapstructure:"smtp_host" validate:"required_if=Driver smtp"`
	SMTPPort int    `mapstructure:"smtp_port" validate:"required_if=Driver smtp,gte=0,lt=65536"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}
