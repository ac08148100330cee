package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Arzbot   ArzbotConfig   `yaml:"arzbot"`
	Sources  SourcesConfig  `yaml:"sources"`
	Telegram TelegramConfig `yaml:"telegram"`
	Redis    RedisConfig    `yaml:"redis"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ArzbotConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type SourcesConfig struct {
	Currency CurrencySourceConfig `yaml:"currency"`
	Crypto   CryptoSourceConfig   `yaml:"crypto"`
}

// CurrencySourceConfig describes the fiat/gold price endpoint. The endpoint
// returns a single JSON document with named sections (mainCurrencies,
// minorCurrencies, GoldType, ...), each carrying a data array of quotes.
type CurrencySourceConfig struct {
	URL      string        `yaml:"url"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

// CryptoSourceConfig describes the crypto orderbook endpoints. BulkURL
// returns every trading pair in one document; SingleURL takes a trailing
// symbol and is the per-symbol fallback path.
type CryptoSourceConfig struct {
	BulkURL           string        `yaml:"bulk_url"`
	SingleURL         string        `yaml:"single_url"`
	Interval          time.Duration `yaml:"interval"`
	Timeout           time.Duration `yaml:"timeout"`
	BulkTimeout       time.Duration `yaml:"bulk_timeout"`
	Symbols           []string      `yaml:"symbols"`
	RequestsPerSecond int           `yaml:"requests_per_second"`
	BurstSize         int           `yaml:"burst_size"`
}

type TelegramConfig struct {
	Token         string `yaml:"token"`
	Debug         bool   `yaml:"debug"`
	PageSize      int    `yaml:"page_size"`
	UpdateTimeout int    `yaml:"update_timeout"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	CloudWatch CloudWatchConfig `yaml:"cloudwatch"`
}

type CloudWatchConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Region    string `yaml:"region"`
	Namespace string `yaml:"namespace"`
	Dashboard string `yaml:"dashboard"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	MaxAge int    `yaml:"max_age"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Config{
		Sources: SourcesConfig{
			Currency: CurrencySourceConfig{
				Interval: 60 * time.Second,
				Timeout:  10 * time.Second,
			},
			Crypto: CryptoSourceConfig{
				Interval:          60 * time.Second,
				Timeout:           10 * time.Second,
				BulkTimeout:       30 * time.Second,
				RequestsPerSecond: 5,
				BurstSize:         1,
			},
		},
		Telegram: TelegramConfig{
			PageSize:      10,
			UpdateTimeout: 30,
		},
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Secrets never live in the config file; the environment wins.
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		config.Telegram.Token = strings.TrimSpace(v)
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.Redis.Addr = strings.TrimSpace(v)
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		config.Redis.Password = strings.TrimSpace(v)
	}
	if config.Metrics.CloudWatch.Enabled {
		if v := os.Getenv("AWS_REGION"); v != "" {
			config.Metrics.CloudWatch.Region = strings.TrimSpace(v)
		}
	}

	if len(config.Sources.Crypto.Symbols) == 0 {
		config.Sources.Crypto.Symbols = DefaultWatchlist()
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Arzbot.Name == "" {
		return fmt.Errorf("arzbot.name is required")
	}

	if cfg.Arzbot.Version == "" {
		return fmt.Errorf("arzbot.version is required")
	}

	if !isValidHTTPURL(cfg.Sources.Currency.URL) {
		return fmt.Errorf("sources.currency.url '%s' is invalid", cfg.Sources.Currency.URL)
	}
	if !isValidHTTPURL(cfg.Sources.Crypto.BulkURL) {
		return fmt.Errorf("sources.crypto.bulk_url '%s' is invalid", cfg.Sources.Crypto.BulkURL)
	}
	if !isValidHTTPURL(cfg.Sources.Crypto.SingleURL) {
		return fmt.Errorf("sources.crypto.single_url '%s' is invalid", cfg.Sources.Crypto.SingleURL)
	}

	if cfg.Sources.Currency.Interval <= 0 {
		return fmt.Errorf("sources.currency.interval must be greater than 0")
	}
	if cfg.Sources.Currency.Timeout <= 0 {
		return fmt.Errorf("sources.currency.timeout must be greater than 0")
	}
	if cfg.Sources.Crypto.Interval <= 0 {
		return fmt.Errorf("sources.crypto.interval must be greater than 0")
	}
	if cfg.Sources.Crypto.Timeout <= 0 {
		return fmt.Errorf("sources.crypto.timeout must be greater than 0")
	}
	if cfg.Sources.Crypto.RequestsPerSecond <= 0 {
		return fmt.Errorf("sources.crypto.requests_per_second must be greater than 0")
	}
	if len(cfg.Sources.Crypto.Symbols) == 0 {
		return fmt.Errorf("sources.crypto.symbols must not be empty")
	}

	if cfg.Telegram.PageSize <= 0 {
		return fmt.Errorf("telegram.page_size must be greater than 0")
	}

	return nil
}

func isValidHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
