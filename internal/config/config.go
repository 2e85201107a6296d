package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Defaults struct {
		Period    string  `yaml:"period"`
		Interval  string  `yaml:"interval"`
		ZigzagPct float64 `yaml:"zigzag_pct"`
	} `yaml:"defaults"`
	Portfolio struct {
		File        string `yaml:"file"`
		Output      string `yaml:"output"`
		Concurrency int    `yaml:"concurrency"`
	} `yaml:"portfolio"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		WatchCron string `yaml:"watch_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("ZIGZAG_PCT"); v != "" {
		var pct float64
		if _, err := fmt.Sscanf(v, "%f", &pct); err == nil {
			cfg.Defaults.ZigzagPct = pct
		}
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Schedule.WatchCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Defaults.Period == "" {
		cfg.Defaults.Period = "2y"
	}
	if cfg.Defaults.Interval == "" {
		cfg.Defaults.Interval = "1d"
	}
	if cfg.Defaults.ZigzagPct == 0 {
		cfg.Defaults.ZigzagPct = 5.0
	}
	if cfg.Portfolio.File == "" {
		cfg.Portfolio.File = "portfolio.csv"
	}
	if cfg.Portfolio.Concurrency == 0 {
		cfg.Portfolio.Concurrency = 4
	}
	if cfg.Schedule.WatchCron == "" {
		// Weekdays at 22:00, after the US close.
		cfg.Schedule.WatchCron = "0 0 22 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that all required fields are coherent.
func (c *Config) Validate() error {
	if c.Defaults.ZigzagPct <= 0 {
		return fmt.Errorf("defaults.zigzag_pct must be positive")
	}
	if c.Portfolio.Concurrency < 1 {
		return fmt.Errorf("portfolio.concurrency must be at least 1")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}
