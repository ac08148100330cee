package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"arzbot/config"
	"arzbot/logger"
	"arzbot/models"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// CurrencyCache keeps the latest fiat/gold price snapshot in memory and
// refreshes it on a fixed interval. Readers always get the last good
// snapshot; a failed poll never clears it.
type CurrencyCache struct {
	config  *config.Config
	client  *http.Client
	ctx     context.Context
	wg      *sync.WaitGroup
	mu      sync.RWMutex
	running bool
	snap    *models.PriceSnapshot
	log     *logger.Log
}

// NewCurrencyCache creates a currency cache from the configured source.
func NewCurrencyCache(cfg *config.Config) *CurrencyCache {
	log := logger.GetLogger()

	cache := &CurrencyCache{
		config: cfg,
		client: &http.Client{Timeout: cfg.Sources.Currency.Timeout},
		wg:     &sync.WaitGroup{},
		log:    log,
	}

	log.WithComponent("currency_cache").WithFields(logger.Fields{
		"url":      cfg.Sources.Currency.URL,
		"interval": cfg.Sources.Currency.Interval.String(),
		"timeout":  cfg.Sources.Currency.Timeout.String(),
	}).Info("currency cache initialized")

	return cache
}

// Start launches the background poll worker. The first poll happens
// immediately so the cache warms up before the first tick.
func (c *CurrencyCache) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("currency cache already running")
	}
	c.running = true
	c.ctx = ctx
	c.mu.Unlock()

	log := c.log.WithComponent("currency_cache").WithFields(logger.Fields{"operation": "start"})

	c.wg.Add(1)
	go c.pollWorker()

	log.Info("currency cache started successfully")
	return nil
}

// Stop signals the poll worker to stop and waits for completion.
func (c *CurrencyCache) Stop() {
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()

	c.log.WithComponent("currency_cache").Info("stopping currency cache")
	c.wg.Wait()
	c.log.WithComponent("currency_cache").Info("currency cache stopped")
}

// Data returns the current snapshot without blocking. It is nil until the
// first successful poll; callers must treat nil as "prices unavailable".
func (c *CurrencyCache) Data() *models.PriceSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

func (c *CurrencyCache) pollWorker() {
	defer c.wg.Done()

	log := c.log.WithComponent("currency_cache").WithFields(logger.Fields{"worker": "currency_poller"})
	log.Info("starting currency poll worker")

	c.pollOnce()

	interval := c.config.Sources.Currency.Interval
	now := time.Now()
	next := now.Truncate(interval).Add(interval)
	timer := time.NewTimer(next.Sub(now))
	defer timer.Stop()

	for {
		select {
		case <-c.ctx.Done():
			log.Info("worker stopped due to context cancellation")
			return
		case <-timer.C:
			start := time.Now()
			c.pollOnce()
			duration := time.Since(start)

			if duration > interval {
				log.WithFields(logger.Fields{
					"duration": duration.Milliseconds(),
					"interval": interval.String(),
				}).Warn("poll took longer than interval")
			}

			next = start.Truncate(interval).Add(interval)
			timer.Reset(time.Until(next))
		}
	}
}

// pollOnce fetches the endpoint and swaps the snapshot in. Every failure
// path logs and returns, leaving the previous snapshot untouched.
func (c *CurrencyCache) pollOnce() {
	log := c.log.WithComponent("currency_cache").WithFields(logger.Fields{"operation": "poll"})

	start := time.Now()
	snap, size, err := c.fetchSnapshot(c.ctx)
	if err != nil {
		log.WithError(err).Warn("failed to refresh currency snapshot, keeping previous")
		return
	}
	duration := time.Since(start)
	logger.LogPerformanceEntry(log, "currency_cache", "api_request", duration, logger.Fields{
		"poll_id": snap.PollID,
	})

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	logger.IncrementCurrencyPoll(size)
	log.WithFields(logger.Fields{
		"poll_id":     snap.PollID,
		"sections":    len(snap.Sections),
		"last_update": snap.LastUpdate,
	}).Debug("currency snapshot swapped")
}

// fetchSnapshot does one GET against the currency endpoint and builds a
// fresh snapshot. The payload is a single object whose section values each
// carry a data array of quotes; non-object values (status fields, the
// lastUpdate string) are skipped.
func (c *CurrencyCache) fetchSnapshot(ctx context.Context) (*models.PriceSnapshot, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Sources.Currency.URL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch prices: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read body: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, 0, fmt.Errorf("parse body: %w", err)
	}

	sections := make(map[string][]models.CurrencyQuote, len(raw))
	for name, value := range raw {
		var section struct {
			Data []models.CurrencyQuote `json:"data"`
		}
		if err := json.Unmarshal(value, &section); err != nil {
			continue
		}
		if len(section.Data) == 0 {
			continue
		}
		sections[name] = section.Data
	}
	if len(sections) == 0 {
		return nil, 0, fmt.Errorf("payload carried no price sections")
	}

	snap := &models.PriceSnapshot{
		PollID:     uuid.New().String(),
		Sections:   sections,
		LastUpdate: gjson.GetBytes(body, "lastUpdate").String(),
		FetchedAt:  time.Now().UTC(),
	}
	return snap, len(body), nil
}
