package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Data struct {
		ReportFile string `yaml:"report_file"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"data"`
	Source struct {
		SpotURL        string `yaml:"spot_url"`
		FuturesURL     string `yaml:"futures_url"`
		UserAgent      string `yaml:"user_agent"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"source"`
	OpenAI struct {
		Model string `yaml:"model"`
	} `yaml:"openai"`
	Schedule struct {
		Enabled   bool   `yaml:"enabled"`
		DailyCron string `yaml:"daily_cron"`
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
	if v := os.Getenv("REPORT_FILE"); v != "" {
		cfg.Data.ReportFile = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Data.SQLitePath = v
	}
	if v := os.Getenv("SPOT_URL"); v != "" {
		cfg.Source.SpotURL = v
	}
	if v := os.Getenv("FUTURES_URL"); v != "" {
		cfg.Source.FuturesURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("DAEMON"); v == "true" {
		cfg.Schedule.Enabled = true
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Data.ReportFile == "" {
		cfg.Data.ReportFile = "data/market_data.json"
	}
	if cfg.Data.SQLitePath == "" {
		cfg.Data.SQLitePath = "data/price_history.db"
	}
	if cfg.Source.SpotURL == "" {
		cfg.Source.SpotURL = "https://hq.smm.cn/h5/Li2CO3"
	}
	if cfg.Source.FuturesURL == "" {
		cfg.Source.FuturesURL = "https://quote.eastmoney.com/qihuo/lcm.html"
	}
	if cfg.Source.UserAgent == "" {
		cfg.Source.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	if cfg.Source.TimeoutSeconds == 0 {
		cfg.Source.TimeoutSeconds = 10
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4.1-mini"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 18 * * *"
	}

	return cfg, nil
}

// FetchTimeout returns the per-source HTTP timeout.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Data.ReportFile == "" {
		return fmt.Errorf("data.report_file is required")
	}
	if c.Source.TimeoutSeconds < 0 {
		return fmt.Errorf("source.timeout_seconds must not be negative")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}
