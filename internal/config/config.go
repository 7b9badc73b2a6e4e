package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port               string `mapstructure:"PORT"`
	GinMode            string `mapstructure:"GIN_MODE"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	DatabaseDriver     string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL        string `mapstructure:"DATABASE_URL"`
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	AdminPasswordHash  string `mapstructure:"ADMIN_PASSWORD_HASH"`
	PreferencesFile    string `mapstructure:"PREFERENCES_FILE"`
	DefaultReleaseYear int    `mapstructure:"DEFAULT_RELEASE_YEAR"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var keys = []string{
	"PORT",
	"GIN_MODE",
	"LOG_LEVEL",
	"DATABASE_DRIVER",
	"DATABASE_URL",
	"JWT_SECRET",
	"ADMIN_PASSWORD_HASH",
	"PREFERENCES_FILE",
	"DEFAULT_RELEASE_YEAR",
}

// AuthEnabled reports whether mutating routes require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.AdminPasswordHash != ""
}

// Load reads the configuration from a .env file in dir (if present) and
// from environment variables, which take precedence.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_URL", "gamecatalog.db")
	v.SetDefault("PREFERENCES_FILE", "preferences.json")
	v.SetDefault("DEFAULT_RELEASE_YEAR", 0)

	v.AutomaticEnv()
	// AutomaticEnv only applies to keys viper already knows about.
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(cfg.DatabaseDriver))
	switch cfg.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("unsupported GIN_MODE %q", cfg.GinMode)
	}
	if cfg.AuthEnabled() && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when ADMIN_PASSWORD_HASH is set")
	}

	return &cfg, nil
}
