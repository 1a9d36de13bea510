package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. CONTACTS_SERVER_PORT.
const EnvPrefix = "CONTACTS"

// legacyEnv maps keys to the variable names used by earlier deployments.
var legacyEnv = map[string]string{
	"server.port":     "PORT",
	"database.url":    "DB_HOST",
	"auth.jwt_secret": "SECRET_KEY",
}

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile behaves like Load but reads the given config file instead of
// searching for config.yaml in the working directory.
func LoadWithFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so every key
	// is bound explicitly, together with its legacy alias.
	for _, key := range v.AllKeys() {
		names := []string{key, EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}
		if legacy, ok := legacyEnv[key]; ok {
			names = append(names, legacy)
		}
		if err := v.BindEnv(names...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.base_url", "http://localhost:3000")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.trust_proxy", false)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime_minutes", 23*60)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.require_verification", true)
	v.SetDefault("auth.rate_limit_rps", 5)
	v.SetDefault("auth.rate_limit_burst", 10)

	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.local_dir", "public/avatars")
	v.SetDefault("storage.public_url", "http://localhost:3000/avatars")
	v.SetDefault("storage.s3_bucket", "")
	v.SetDefault("storage.s3_region", "")
	v.SetDefault("storage.s3_endpoint", "")
	v.SetDefault("storage.s3_access_key", "")
	v.SetDefault("storage.s3_secret_key", "")
	v.SetDefault("storage.max_avatar_bytes", 5<<20)

	v.SetDefault("mail.driver", "log")
	v.SetDefault("mail.from", "no-reply@contacts.local")
	v.SetDefault("mail.smtp_host", "")
	v.SetDefault("mail.smtp_port", 0)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
}
