package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Providers   ProvidersConfig `mapstructure:"providers"`
	Stripe      StripeConfig    `mapstructure:"stripe"`
	Auth        AuthConfig      `mapstructure:"auth"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	Metrics     MetricsConfig   `mapstructure:"metrics"`
	Environment string          `mapstructure:"environment"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type StripeConfig struct {
	SecretKey     string            `mapstructure:"secret_key"`
	WebhookSecret string            `mapstructure:"webhook_secret"`
	FrontendURL   string            `mapstructure:"frontend_url"`
	PlanPrices    map[string]string `mapstructure:"plan_prices"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type RateLimitConfig struct {
	Requests int    `mapstructure:"requests"`
	Window   string `mapstructure:"window"`
	// Distributed switches from the in-process fixed-window limiter to the
	// redis-backed sliding-window limiter shared across instances.
	Distributed bool `mapstructure:"distributed"`
}

// WindowDuration parses the configured rate-limit window. A malformed value
// is an error rather than a zero duration: a zero-length window would open a
// fresh window on every request and disable limiting entirely.
func (c RateLimitConfig) WindowDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Window)
	if err != nil {
		return 0, fmt.Errorf("invalid rate_limit.window %q: %w", c.Window, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("rate_limit.window must be positive, got %q", c.Window)
	}
	return d, nil
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}

	setDefaultValues()

	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Database.SSLMode == "" {
		globalConfig.Database.SSLMode = "disable"
	}
	if globalConfig.Environment == "" {
		globalConfig.Environment = "development"
	}
	if globalConfig.RateLimit.Requests == 0 {
		globalConfig.RateLimit.Requests = 60
	}
	if globalConfig.RateLimit.Window == "" {
		globalConfig.RateLimit.Window = "1m"
	}
}

func GetConfig() *Config {
	return &globalConfig
}

// IsDevelopment reports whether the service runs with development safety
// rails enabled (the usage reset endpoint among them).
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
