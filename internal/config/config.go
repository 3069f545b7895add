package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Wallet  WalletConfig  `mapstructure:"wallet"`
	Checker CheckerConfig `mapstructure:"checker"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// WalletConfig holds settings for the websocket wallet bridge.
type WalletConfig struct {
	BridgeURL        string        `mapstructure:"bridge_url"`
	HandshakeTimeout time.Duration `mapstructure:"handshake_timeout"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
}

// CheckerConfig holds settings related to the endpoint probing process.
type CheckerConfig struct {
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`
	StatusTTL    time.Duration `mapstructure:"status_ttl"`
}

// CacheConfig holds settings for the caching layer.
type CacheConfig struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// Load reads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "protect-connect")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("wallet.bridge_url", "ws://127.0.0.1:8546/wallet")
	v.SetDefault("wallet.handshake_timeout", "10s")
	v.SetDefault("wallet.request_timeout", "2m")
	v.SetDefault("checker.probe_timeout", "5s")
	v.SetDefault("checker.status_ttl", "30s")
	v.SetDefault("cache.default_expiration", "5m")
	v.SetDefault("cache.cleanup_interval", "10m")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			fmt.Printf("Warning: Config file not found in %s or '.', using defaults/env vars\n", configPath)
		}
	}

	v.SetEnvPrefix("PROTECT_CONNECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c CheckerConfig) GetProbeTimeout() time.Duration {
	return c.ProbeTimeout
}

func (c CheckerConfig) GetStatusTTL() time.Duration {
	return c.StatusTTL
}

func (c CacheConfig) GetDefaultExpiration() time.Duration {
	return c.DefaultExpiration
}

func (c CacheConfig) GetCleanupInterval() time.Duration {
	return c.CleanupInterval
}
