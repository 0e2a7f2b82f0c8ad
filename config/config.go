package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const devJWTSecret = "clinic-development-secret"

type Config struct {
	Port           string        `mapstructure:"PORT"`
	Env            string        `mapstructure:"ENV"`
	MongoURI       string        `mapstructure:"MONGO_URI"`
	MongoDatabase  string        `mapstructure:"MONGO_DATABASE"`
	StoreDriver    string        `mapstructure:"STORE_DRIVER"`
	StoreTimeout   time.Duration `mapstructure:"STORE_TIMEOUT"`
	RedisURL       string        `mapstructure:"REDIS_URL"`
	CacheTTL       time.Duration `mapstructure:"CACHE_TTL"`
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	TokenTTL       time.Duration `mapstructure:"TOKEN_TTL"`
	KeyStrategy    string        `mapstructure:"KEY_STRATEGY"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	LogFormat      string        `mapstructure:"LOG_FORMAT"`
	CORSOrigins    []string      `mapstructure:"CORS_ORIGINS"`
	JobsEnabled    bool          `mapstructure:"JOBS_ENABLED"`
	AgendaSchedule string        `mapstructure:"AGENDA_SCHEDULE"`
}

var keys = []string{
	"PORT", "ENV", "MONGO_URI", "MONGO_DATABASE", "STORE_DRIVER", "STORE_TIMEOUT",
	"REDIS_URL", "CACHE_TTL", "JWT_SECRET", "TOKEN_TTL", "KEY_STRATEGY",
	"LOG_LEVEL", "LOG_FORMAT", "CORS_ORIGINS", "JOBS_ENABLED", "AGENDA_SCHEDULE",
}

/*
* Load .env into the process environment if present
* Apply defaults and bind every key to its env var
* Unmarshal and validate
 */
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "clinic")
	v.SetDefault("STORE_DRIVER", "mongo")
	v.SetDefault("STORE_TIMEOUT", "10s")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("KEY_STRATEGY", "timestamp")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("JOBS_ENABLED", true)
	v.SetDefault("AGENDA_SCHEDULE", "5 0 * * *")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSOrigins = splitOrigins(cfg.CORSOrigins)

	if cfg.JWTSecret == "" && cfg.IsDev() {
		log.Warn().Msg("JWT_SECRET not set, using the development secret")
		cfg.JWTSecret = devJWTSecret
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when ENV=%q", c.Env)
	}
	switch c.StoreDriver {
	case "mongo", "memory":
	default:
		return fmt.Errorf("STORE_DRIVER must be \"mongo\" or \"memory\", got %q", c.StoreDriver)
	}
	switch c.KeyStrategy {
	case "timestamp", "uuid":
	default:
		return fmt.Errorf("KEY_STRATEGY must be \"timestamp\" or \"uuid\", got %q", c.KeyStrategy)
	}
	switch c.LogFormat {
	case "console", "ecs":
	default:
		return fmt.Errorf("LOG_FORMAT must be \"console\" or \"ecs\", got %q", c.LogFormat)
	}
	if c.StoreDriver == "mongo" && c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required for the mongo store")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	return nil
}

// splitOrigins accepts both a list and a single comma separated entry.
func splitOrigins(in []string) []string {
	var out []string
	for _, entry := range in {
		for _, o := range strings.Split(entry, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}
