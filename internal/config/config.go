package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config はアプリケーション設定を保持する
type Config struct {
	// Valkey接続設定
	RedisHost string `envconfig:"REDIS_HOST" required:"true"`
	RedisPort string `envconfig:"REDIS_PORT" required:"true"`
	RedisPass string `envconfig:"REDIS_PASS" required:"true"`

	// Modem Agent設定
	ModemAPIURL string `envconfig:"MODEM_API_URL" required:"true"`

	// 回線設定
	SlotCount int `envconfig:"SLOT_COUNT" default:"2"`

	// ログ設定
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogMaskIMSI bool   `envconfig:"LOG_MASK_IMSI" default:"true"`
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// ValkeyAddr はValkey接続アドレスを "host:port" 形式で返す
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	if c.SlotCount < 1 {
		return fmt.Errorf("SLOT_COUNT must be at least 1")
	}
	if !strings.HasPrefix(c.ModemAPIURL, "http://") && !strings.HasPrefix(c.ModemAPIURL, "https://") {
		return fmt.Errorf("MODEM_API_URL must start with http:// or https://")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug/info/warn/error")
	}
	return nil
}
