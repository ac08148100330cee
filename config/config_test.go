package config

import (
	"os"
	"testing"
	"time"
)

// writeTempConfig creates a minimal configuration file required for
// LoadConfig and returns its path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp("", "cfg-*.yml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}

const minimalYAML = `arzbot:
  name: "TestBot"
  version: "1.0"
sources:
  currency:
    url: "https://rates.example.com/"
  crypto:
    bulk_url: "https://crypto.example.com/v3/orderbook/all"
    single_url: "https://crypto.example.com/v3/orderbook/"
`

func TestLoadConfig(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	path := writeTempConfig(t, minimalYAML)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Arzbot.Name != "TestBot" {
		t.Errorf("unexpected name: %s", cfg.Arzbot.Name)
	}
	if cfg.Sources.Currency.Interval != 60*time.Second {
		t.Errorf("default currency interval not applied: %v", cfg.Sources.Currency.Interval)
	}
	if cfg.Sources.Crypto.BulkTimeout != 30*time.Second {
		t.Errorf("default bulk timeout not applied: %v", cfg.Sources.Crypto.BulkTimeout)
	}
	if len(cfg.Sources.Crypto.Symbols) == 0 {
		t.Error("default watchlist not applied")
	}
	if cfg.Telegram.PageSize != 10 {
		t.Errorf("default page size not applied: %d", cfg.Telegram.PageSize)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	path := writeTempConfig(t, minimalYAML)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Telegram.Token != "123:abc" {
		t.Errorf("telegram token not taken from environment: %q", cfg.Telegram.Token)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("redis addr not taken from environment: %q", cfg.Redis.Addr)
	}
}

func TestLoadConfigMissingName(t *testing.T) {
	path := writeTempConfig(t, `arzbot:
  version: "1.0"
sources:
  currency:
    url: "https://rates.example.com/"
  crypto:
    bulk_url: "https://crypto.example.com/all"
    single_url: "https://crypto.example.com/"
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for missing arzbot.name")
	}
}

func TestLoadConfigBadURL(t *testing.T) {
	path := writeTempConfig(t, `arzbot:
  name: "TestBot"
  version: "1.0"
sources:
  currency:
    url: "not a url"
  crypto:
    bulk_url: "https://crypto.example.com/all"
    single_url: "https://crypto.example.com/"
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid currency url")
	}
}

func TestDefaultWatchlistCopy(t *testing.T) {
	a := DefaultWatchlist()
	b := DefaultWatchlist()
	a[0] = "MUTATED"
	if b[0] == "MUTATED" {
		t.Fatal("DefaultWatchlist must return an independent copy")
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("APP_ENV", "")
	if got := ResolvePath("", "config/config.yml"); got != "config/config.yml" {
		t.Errorf("unexpected path: %s", got)
	}
	t.Setenv("APP_ENV", "production")
	if got := ResolvePath("custom.yml", "config/config.yml"); got != "custom.yml" {
		t.Errorf("explicit path must win: %s", got)
	}
}
