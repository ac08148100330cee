package models

import (
	"strconv"
	"strings"
	"time"
)

// Section names used by the currency endpoint. The payload may carry more;
// these are the ones the bot reads.
const (
	SectionMainCurrencies  = "mainCurrencies"
	SectionMinorCurrencies = "minorCurrencies"
	SectionGold            = "GoldType"
)

// CurrencyQuote is one instrument's state inside a snapshot section. Prices
// arrive as comma-formatted strings and are normalized on demand, never in
// place.
type CurrencyQuote struct {
	Name      string `json:"currencyName"`
	Symbol    string `json:"currencySymbol"`
	Code      string `json:"currencyCode"`
	LivePrice string `json:"livePrice"`
	Low       string `json:"lowPrice"`
	High      string `json:"highPrice"`
	Change    string `json:"change"`
	Time      string `json:"time"`
}

// PriceFloat returns the live price with thousands separators stripped.
// ok is false when the field is absent or not numeric.
func (q CurrencyQuote) PriceFloat() (float64, bool) {
	raw := strings.ReplaceAll(strings.TrimSpace(q.LivePrice), ",", "")
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// PriceSnapshot is one immutable capture of all polled price data. It is
// built wholesale by a single poll and must not be mutated after
// publication; readers share the same instance until the next poll swaps
// it out.
type PriceSnapshot struct {
	PollID     string
	Sections   map[string][]CurrencyQuote
	LastUpdate string
	FetchedAt  time.Time
}

// Section returns the quotes of a named section, nil-safe for both a nil
// snapshot and a missing section.
func (s *PriceSnapshot) Section(name string) []CurrencyQuote {
	if s == nil {
		return nil
	}
	return s.Sections[name]
}
