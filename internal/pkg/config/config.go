package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	League     string         `yaml:"league"`      // MLB, NBA, NFL, NCAAB
	Books      []string       `yaml:"books"`       // tracked sportsbooks; empty = all
	TotalStake float64        `yaml:"total_stake"` // stake to split per sure bet
	Storage    StorageConfig  `yaml:"storage"`
	OddsAPI    OddsAPIConfig  `yaml:"odds_api"`
	Scrapers   ScrapersConfig `yaml:"scrapers"`
	Alerts     AlertsConfig   `yaml:"alerts"`
}

type StorageConfig struct {
	Backend  string         `yaml:"backend"` // "csv" (default) or "postgres"
	DataDir  string         `yaml:"data_dir"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type OddsAPIConfig struct {
	Enabled bool          `yaml:"enabled"`
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // overridable via ODDS_API_KEY
	Region  string        `yaml:"region"`
	Timeout time.Duration `yaml:"timeout"`
}

type ScrapersConfig struct {
	BetRivers  ScraperConfig `yaml:"betrivers"`
	DraftKings ScraperConfig `yaml:"draftkings"`
	BetMGM     ScraperConfig `yaml:"betmgm"`
}

type ScraperConfig struct {
	Enabled   bool          `yaml:"enabled"`
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"` // browser scrapers only
}

type AlertsConfig struct {
	TelegramBotToken string        `yaml:"telegram_bot_token"` // overridable via TELEGRAM_BOT_TOKEN
	TelegramChatID   int64         `yaml:"telegram_chat_id"`   // overridable via TELEGRAM_CHAT_ID
	SlackWebhookURL  string        `yaml:"slack_webhook_url"`  // overridable via SLACK_WEBHOOK_URL
	Redis            RedisConfig   `yaml:"redis"`
	DedupTTL         time.Duration `yaml:"dedup_ttl"` // suppress repeat alerts for this long
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.applyDefaults()
	config.applyEnvOverrides()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.TotalStake == 0 {
		c.TotalStake = 1000
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "csv"
	}
	if c.OddsAPI.Region == "" {
		c.OddsAPI.Region = "us"
	}
	if c.Alerts.DedupTTL == 0 {
		c.Alerts.DedupTTL = time.Hour
	}
}

// applyEnvOverrides lets secrets come from the environment (or a .env file
// loaded by the caller) instead of the config file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ODDS_API_KEY"); v != "" {
		c.OddsAPI.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Alerts.TelegramBotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Alerts.TelegramChatID = id
		}
	}
	if v := os.Getenv("SLACK_WEBHOOK_URL"); v != "" {
		c.Alerts.SlackWebhookURL = v
	}
}
