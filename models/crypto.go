package models

import (
	"strings"
	"time"
)

// Quote units a trading-pair symbol can end in.
const (
	QuoteIRT  = "IRT"
	QuoteUSDT = "USDT"
)

// OrderLevel is one side of the best order book levels for a pair.
type OrderLevel struct {
	Price    float64
	Quantity float64
}

// CryptoSymbolState is the cached per-pair record. IRT-quoted prices are
// normalized from rial to toman at ingest, so every price here is already
// in the pair's display unit and no downstream conversion guard exists.
type CryptoSymbolState struct {
	Symbol             string
	LastTradePrice     float64
	PreviousPrice      float64
	HasPrevious        bool
	PriceChange        float64
	PriceChangePercent float64
	HasChangePercent   bool
	BestAsk            *OrderLevel
	BestBid            *OrderLevel
	LastUpdate         int64
	CapturedAt         time.Time
	Synthesized        bool
}

// BaseSymbol strips the quote suffix from a trading pair, e.g.
// "BTCIRT" -> "BTC", "ETHUSDT" -> "ETH". Symbols without a known quote
// suffix come back unchanged.
func BaseSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	// USDTIRT must resolve to USDT, so check IRT first.
	if base, ok := strings.CutSuffix(s, QuoteIRT); ok && base != "" {
		return base
	}
	if base, ok := strings.CutSuffix(s, QuoteUSDT); ok && base != "" {
		return base
	}
	return s
}

// QuoteUnit reports which unit a trading pair quotes in, defaulting to
// USDT for unrecognised suffixes.
func QuoteUnit(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if base, ok := strings.CutSuffix(s, QuoteIRT); ok && base != "" {
		return QuoteIRT
	}
	return QuoteUSDT
}
