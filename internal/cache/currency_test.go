package cache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"arzbot/config"
)

const samplePayload = `{
	"mainCurrencies": {"data": [
		{"currencyName": "دلار", "currencySymbol": "$", "livePrice": "58,000", "change": "(0.52%) 300", "time": "14:30"},
		{"currencyName": "یورو", "currencySymbol": "€", "livePrice": "63,500", "change": "(-0.12%) -80", "time": "14:30"}
	]},
	"minorCurrencies": {"data": [
		{"currencyName": "روپیه هند", "livePrice": "700", "change": "", "time": "14:30"}
	]},
	"GoldType": {"data": [
		{"currencyName": "سکه امامی", "livePrice": "40,500,000", "change": "(1.10%) 440,000", "time": "14:30"}
	]},
	"lastUpdate": "1403/06/06 - 14:30"
}`

func currencyTestConfig(url string) *config.Config {
	return &config.Config{
		Sources: config.SourcesConfig{
			Currency: config.CurrencySourceConfig{
				URL:      url,
				Interval: time.Minute,
				Timeout:  2 * time.Second,
			},
		},
	}
}

func TestCurrencyCacheColdStart(t *testing.T) {
	c := NewCurrencyCache(currencyTestConfig("http://localhost:1"))
	if c.Data() != nil {
		t.Fatal("snapshot should be nil before the first successful poll")
	}
}

func TestCurrencyCachePoll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := NewCurrencyCache(currencyTestConfig(srv.URL))
	c.ctx = context.Background()
	c.pollOnce()

	snap := c.Data()
	if snap == nil {
		t.Fatal("snapshot missing after successful poll")
	}
	if snap.PollID == "" {
		t.Error("poll id not assigned")
	}
	if snap.LastUpdate != "1403/06/06 - 14:30" {
		t.Errorf("lastUpdate = %q", snap.LastUpdate)
	}
	if got := len(snap.Sections); got != 3 {
		t.Fatalf("sections = %d, want 3", got)
	}
	main := snap.Section("mainCurrencies")
	if len(main) != 2 || main[0].Name != "دلار" {
		t.Fatalf("mainCurrencies = %+v", main)
	}
	if price, ok := main[0].PriceFloat(); !ok || price != 58000 {
		t.Fatalf("dollar price = %v, %v", price, ok)
	}
}

func TestCurrencyCacheKeepsStaleSnapshotOnFailure(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := NewCurrencyCache(currencyTestConfig(srv.URL))
	c.ctx = context.Background()
	c.pollOnce()

	before := c.Data()
	if before == nil {
		t.Fatal("first poll did not populate the cache")
	}

	fail.Store(true)
	c.pollOnce()

	after := c.Data()
	if after != before {
		t.Fatal("failed poll must keep the previous snapshot")
	}
}

func TestCurrencyCacheSnapshotIsReplacedNotMutated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := NewCurrencyCache(currencyTestConfig(srv.URL))
	c.ctx = context.Background()
	c.pollOnce()

	held := c.Data()
	heldID := held.PollID

	c.pollOnce()

	if c.Data() == held {
		t.Fatal("second poll should have swapped in a new snapshot")
	}
	// A reader that captured the old snapshot keeps seeing it unchanged.
	if held.PollID != heldID {
		t.Fatal("published snapshot was mutated in place")
	}
}

func TestCurrencyCacheRejectsPayloadWithoutSections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"lastUpdate": "x"}`))
	}))
	defer srv.Close()

	c := NewCurrencyCache(currencyTestConfig(srv.URL))
	if _, _, err := c.fetchSnapshot(context.Background()); err == nil {
		t.Fatal("expected error for payload without sections")
	}
}

func TestCurrencyCacheDoubleStart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := NewCurrencyCache(currencyTestConfig(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	if err := c.Start(ctx); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if err := c.Start(ctx); err == nil {
		t.Fatal("second start should fail")
	}
	cancel()
	c.Stop()
}
