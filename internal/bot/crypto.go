package bot

import (
	"fmt"
	"strings"

	"arzbot/internal/cache"
	"arzbot/internal/numeric"
	"arzbot/models"
)

// RenderCrypto renders one pair's cached record for a reply.
func RenderCrypto(rec models.CryptoSymbolState) string {
	info := cache.Info(models.BaseSymbol(rec.Symbol))

	unit := "تتر"
	if models.QuoteUnit(rec.Symbol) == models.QuoteIRT {
		unit = "تومان"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>%s</b> (%s)\n\n", info.Icon, info.Name, rec.Symbol)
	fmt.Fprintf(&b, "💰 قیمت: <b>%s %s</b>\n", numeric.FormatNumber(rec.LastTradePrice), unit)

	if rec.HasChangePercent {
		arrow := "📈"
		if rec.PriceChange < 0 {
			arrow = "📉"
		}
		fmt.Fprintf(&b, "%s تغییر: %s%% (%s %s)\n",
			arrow, numeric.DisplayRate(rec.PriceChangePercent),
			numeric.DisplayAmount(rec.PriceChange), unit)
	}

	if rec.BestAsk != nil {
		fmt.Fprintf(&b, "🔺 بهترین فروش: %s %s\n", numeric.FormatNumber(rec.BestAsk.Price), unit)
	}
	if rec.BestBid != nil {
		fmt.Fprintf(&b, "🔻 بهترین خرید: %s %s\n", numeric.FormatNumber(rec.BestBid.Price), unit)
	}
	return b.String()
}

// normalizeCryptoQuery turns a user-typed crypto query into a trading
// pair, defaulting bare base assets to their IRT pair.
func normalizeCryptoQuery(query string) string {
	sym := strings.ToUpper(strings.TrimSpace(query))
	if sym == "" {
		return ""
	}
	// Bare "USDT" is the tether asset, not a quote suffix.
	if sym != models.QuoteUSDT {
		if strings.HasSuffix(sym, models.QuoteIRT) || strings.HasSuffix(sym, models.QuoteUSDT) {
			return sym
		}
	}
	return sym + models.QuoteIRT
}
