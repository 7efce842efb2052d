package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database: a file path / file: DSN opens SQLite, postgres:// opens Postgres
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis is optional; empty disables session revocation storage in Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// Session marker
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	SessionHours int    `mapstructure:"SESSION_HOURS"`
	CookieSecure bool   `mapstructure:"COOKIE_SECURE"`

	// HTTP
	CORSOrigin      string `mapstructure:"CORS_ORIGIN"`
	RateLimitPerMin int    `mapstructure:"RATE_LIMIT_PER_MIN"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 5000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_URL", "basededatosflask.db")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("JWT_SECRET", "admin")
	viper.SetDefault("SESSION_HOURS", 12)
	viper.SetDefault("COOKIE_SECURE", false)
	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("RATE_LIMIT_PER_MIN", 600)

	// Optional .env file for local development; does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool { return c.Env == "production" }
