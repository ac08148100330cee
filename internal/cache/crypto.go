package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"arzbot/config"
	"arzbot/logger"
	"arzbot/models"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// orderbookPayload is the per-symbol document of the crypto endpoint. The
// bulk endpoint returns one of these per symbol key; the single-symbol
// endpoint returns one at the top level. Prices and quantities arrive as
// strings.
type orderbookPayload struct {
	LastUpdate     int64      `json:"lastUpdate"`
	LastTradePrice string     `json:"lastTradePrice"`
	Asks           [][]string `json:"asks"`
	Bids           [][]string `json:"bids"`
}

// CryptoCache keeps per-pair crypto records in memory, refreshed by a bulk
// poll with a per-symbol fallback path. Only watch-listed symbols are
// retained; everything else in the bulk response is ignored.
type CryptoCache struct {
	config  *config.Config
	client  *http.Client
	bulk    *http.Client
	limiter *rate.Limiter
	ctx     context.Context
	wg      *sync.WaitGroup
	mu      sync.RWMutex
	running bool
	records map[string]models.CryptoSymbolState
	watch   map[string]struct{}
	log     *logger.Log
}

// NewCryptoCache creates a crypto cache over the configured watch-list.
func NewCryptoCache(cfg *config.Config) *CryptoCache {
	log := logger.GetLogger()

	watch := make(map[string]struct{}, len(cfg.Sources.Crypto.Symbols))
	for _, sym := range cfg.Sources.Crypto.Symbols {
		watch[strings.ToUpper(sym)] = struct{}{}
	}

	rps := cfg.Sources.Crypto.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.Sources.Crypto.BurstSize
	if burst <= 0 {
		burst = 1
	}

	cache := &CryptoCache{
		config:  cfg,
		client:  &http.Client{Timeout: cfg.Sources.Crypto.Timeout},
		bulk:    &http.Client{Timeout: cfg.Sources.Crypto.BulkTimeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		wg:      &sync.WaitGroup{},
		records: make(map[string]models.CryptoSymbolState, len(watch)),
		watch:   watch,
		log:     log,
	}

	log.WithComponent("crypto_cache").WithFields(logger.Fields{
		"symbols":  len(watch),
		"interval": cfg.Sources.Crypto.Interval.String(),
		"rps":      rps,
	}).Info("crypto cache initialized")

	return cache
}

// Start launches the background update worker.
func (c *CryptoCache) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("crypto cache already running")
	}
	c.running = true
	c.ctx = ctx
	c.mu.Unlock()

	log := c.log.WithComponent("crypto_cache").WithFields(logger.Fields{"operation": "start"})

	c.wg.Add(1)
	go c.updateWorker()

	log.Info("crypto cache started successfully")
	return nil
}

// Stop signals the update worker to stop and waits for completion.
func (c *CryptoCache) Stop() {
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()

	c.log.WithComponent("crypto_cache").Info("stopping crypto cache")
	c.wg.Wait()
	c.log.WithComponent("crypto_cache").Info("crypto cache stopped")
}

// Data returns one pair's record. ok is false until the symbol has been
// fetched at least once.
func (c *CryptoCache) Data(symbol string) (models.CryptoSymbolState, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.records[strings.ToUpper(strings.TrimSpace(symbol))]
	return rec, ok
}

// All returns a copy of the current record map.
func (c *CryptoCache) All() map[string]models.CryptoSymbolState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]models.CryptoSymbolState, len(c.records))
	for k, v := range c.records {
		out[k] = v
	}
	return out
}

// RefreshSymbol fetches one symbol synchronously, bypassing the poll
// interval. Used for on-demand lookups of symbols the bulk poll has not
// populated yet. Symbols outside the watch-list are returned but never
// cached, since no poll would ever refresh them.
func (c *CryptoCache) RefreshSymbol(ctx context.Context, symbol string) (models.CryptoSymbolState, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if err := c.limiter.Wait(ctx); err != nil {
		return models.CryptoSymbolState{}, fmt.Errorf("rate limiter wait: %w", err)
	}

	payload, err := c.fetchSingle(ctx, symbol)
	if err != nil {
		return models.CryptoSymbolState{}, err
	}

	rec, ok := c.applyUpdate(symbol, payload, false)
	if !ok {
		return models.CryptoSymbolState{}, fmt.Errorf("symbol %s carried no usable price", symbol)
	}
	return rec, nil
}

func (c *CryptoCache) updateWorker() {
	defer c.wg.Done()

	log := c.log.WithComponent("crypto_cache").WithFields(logger.Fields{"worker": "crypto_poller"})
	log.Info("starting crypto update worker")

	c.updateOnce(c.ctx)

	interval := c.config.Sources.Crypto.Interval
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
			c.updateOnce(c.ctx)
			duration := time.Since(start)

			if duration > interval {
				log.WithFields(logger.Fields{
					"duration": duration.Milliseconds(),
					"interval": interval.String(),
				}).Warn("update took longer than interval")
			}

			next = start.Truncate(interval).Add(interval)
			timer.Reset(time.Until(next))
		}
	}
}

// updateOnce refreshes the cache: bulk endpoint first, falling back to
// sequential per-symbol requests when the bulk path fails. Per-symbol
// failures in the fallback are independent; a symbol that cannot be
// fetched keeps its previous record.
func (c *CryptoCache) updateOnce(ctx context.Context) {
	log := c.log.WithComponent("crypto_cache").WithFields(logger.Fields{"operation": "update"})

	start := time.Now()
	updated, size, err := c.bulkUpdate(ctx)
	if err == nil {
		logger.LogPerformanceEntry(log, "crypto_cache", "bulk_request", time.Since(start), logger.Fields{
			"updated": updated,
		})
		logger.IncrementCryptoPoll(size)
		return
	}

	log.WithError(err).Warn("bulk update failed, falling back to per-symbol requests")

	updated = 0
	for sym := range c.watch {
		if err := c.limiter.Wait(ctx); err != nil {
			log.WithError(err).Warn("rate limiter wait failed")
			return
		}
		payload, err := c.fetchSingle(ctx, sym)
		if err != nil {
			log.WithFields(logger.Fields{"symbol": sym}).WithError(err).Warn("failed to fetch symbol")
			continue
		}
		if _, ok := c.applyUpdate(sym, payload, true); ok {
			updated++
		}
	}

	logger.IncrementCryptoPoll(0)
	log.WithFields(logger.Fields{"updated": updated}).Info("crypto cache updated via per-symbol requests")
}

func (c *CryptoCache) bulkUpdate(ctx context.Context) (int, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Sources.Crypto.BulkURL, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("build request: %w", err)
	}

	res, err := c.bulk.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("fetch orderbooks: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, 0, fmt.Errorf("read body: %w", err)
	}

	if status := gjson.GetBytes(body, "status").String(); status != "ok" {
		return 0, 0, fmt.Errorf("endpoint returned status %q", status)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return 0, 0, fmt.Errorf("parse body: %w", err)
	}

	updated := 0
	for sym, value := range raw {
		sym = strings.ToUpper(sym)
		if _, watched := c.watch[sym]; !watched {
			continue
		}
		var payload orderbookPayload
		if err := json.Unmarshal(value, &payload); err != nil {
			continue
		}
		if _, ok := c.applyUpdate(sym, &payload, false); ok {
			updated++
		}
	}
	return updated, len(body), nil
}

func (c *CryptoCache) fetchSingle(ctx context.Context, symbol string) (*orderbookPayload, error) {
	url := c.config.Sources.Crypto.SingleURL + symbol

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch orderbook: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if status := gjson.GetBytes(body, "status").String(); status != "ok" {
		return nil, fmt.Errorf("endpoint returned status %q", status)
	}

	var payload orderbookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}
	return &payload, nil
}

// applyUpdate folds one payload into the record map. IRT-quoted prices are
// divided by 10 here, at the single ingest point, so everything downstream
// works in toman. The change percent is computed against the previous
// record and skipped when there is no usable previous price.
func (c *CryptoCache) applyUpdate(symbol string, payload *orderbookPayload, synthesized bool) (models.CryptoSymbolState, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(payload.LastTradePrice), 64)
	if err != nil || price <= 0 {
		return models.CryptoSymbolState{}, false
	}

	divisor := 1.0
	if models.QuoteUnit(symbol) == models.QuoteIRT {
		divisor = 10
	}
	price /= divisor

	rec := models.CryptoSymbolState{
		Symbol:         symbol,
		LastTradePrice: price,
		BestAsk:        parseLevel(payload.Asks, divisor),
		BestBid:        parseLevel(payload.Bids, divisor),
		LastUpdate:     payload.LastUpdate,
		CapturedAt:     time.Now().UTC(),
		Synthesized:    synthesized,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.records[symbol]; ok {
		rec.PreviousPrice = prev.LastTradePrice
		rec.HasPrevious = true
		rec.PriceChange = price - prev.LastTradePrice
		if prev.LastTradePrice > 0 {
			rec.PriceChangePercent = rec.PriceChange / prev.LastTradePrice * 100
			rec.HasChangePercent = true
		}
	}
	// Unwatched symbols are never touched by the bulk poll, so caching
	// an on-demand fetch would serve its first observation forever.
	// They are returned but not stored; every lookup fetches fresh.
	if _, watched := c.watch[symbol]; watched {
		c.records[symbol] = rec
	}
	return rec, true
}

// parseLevel extracts the best level of one book side, nil when the side
// is empty or malformed.
func parseLevel(side [][]string, divisor float64) *models.OrderLevel {
	if len(side) == 0 || len(side[0]) < 2 {
		return nil
	}
	price, err := strconv.ParseFloat(side[0][0], 64)
	if err != nil {
		return nil
	}
	qty, err := strconv.ParseFloat(side[0][1], 64)
	if err != nil {
		return nil
	}
	return &models.OrderLevel{Price: price / divisor, Quantity: qty}
}
