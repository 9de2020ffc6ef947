package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration, read from STOREFRONT_* env
// variables with sensible defaults for local development.
type Config struct {
	Addr        string `mapstructure:"addr"`
	DatabaseURL string `mapstructure:"database_url"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	JWT struct {
		Secret     string        `mapstructure:"secret"`
		AccessTTL  time.Duration `mapstructure:"access_ttl"`
		RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
	} `mapstructure:"jwt"`

	WhatsAppPhone string `mapstructure:"whatsapp_phone"`

	// ProductsFile optionally replaces the built-in catalog seed.
	ProductsFile string `mapstructure:"products_file"`

	Cart struct {
		IdleTTL         time.Duration `mapstructure:"idle_ttl"`
		CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	} `mapstructure:"cart"`

	RateLimit struct {
		RPS             float64       `mapstructure:"rps"`
		Burst           int           `mapstructure:"burst"`
		StrikeThreshold int           `mapstructure:"strike_threshold"`
		StrikeWindow    time.Duration `mapstructure:"strike_window"`
		BanTTL          time.Duration `mapstructure:"ban_ttl"`
	} `mapstructure:"rate_limit"`
}

// Load reads the configuration from the environment and fails fast on
// missing required values.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_ttl", 15*time.Minute)
	v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("whatsapp_phone", "243972499388")
	v.SetDefault("products_file", "")
	v.SetDefault("cart.idle_ttl", 2*time.Hour)
	v.SetDefault("cart.cleanup_interval", time.Minute)
	v.SetDefault("rate_limit.rps", 1.0)
	v.SetDefault("rate_limit.burst", 3)
	v.SetDefault("rate_limit.strike_threshold", 5)
	v.SetDefault("rate_limit.strike_window", time.Minute)
	v.SetDefault("rate_limit.ban_ttl", 15*time.Minute)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("STOREFRONT_DATABASE_URL is required")
	}
	if cfg.JWT.Secret == "" {
		return Config{}, fmt.Errorf("STOREFRONT_JWT_SECRET is required")
	}
	return cfg, nil
}
