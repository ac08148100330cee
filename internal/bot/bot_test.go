package bot

import (
	"strings"
	"testing"

	"arzbot/models"
)

func listingSnapshot() *models.PriceSnapshot {
	return &models.PriceSnapshot{
		PollID: "test",
		Sections: map[string][]models.CurrencyQuote{
			models.SectionMainCurrencies: {
				{Name: "دلار", Symbol: "$", LivePrice: "58,000", Change: "(0.52%) 300"},
				{Name: "یورو", Symbol: "€", LivePrice: "63,500", Change: "(-0.12%) -80"},
				{Name: "پوند انگلیس", LivePrice: "73,200", Change: ""},
			},
			models.SectionGold: {
				{Name: "سکه امامی", LivePrice: "40,500,000", Change: "(1.10%) 440,000"},
			},
		},
		LastUpdate: "1403/06/06 - 14:30",
	}
}

func TestBuildConversionReplySimple(t *testing.T) {
	reply, ok := BuildConversionReply("100 دلار", listingSnapshot())
	if !ok {
		t.Fatal("expected a reply")
	}
	if !strings.Contains(reply, "5,800,000") {
		t.Fatalf("reply missing converted amount: %s", reply)
	}
	if !strings.Contains(reply, "تومان") {
		t.Fatalf("simple form should convert to toman: %s", reply)
	}
	if !strings.Contains(reply, "58,000") {
		t.Fatalf("reply missing rate: %s", reply)
	}
}

func TestBuildConversionReplyFullPattern(t *testing.T) {
	reply, ok := BuildConversionReply("100 دلار به یورو", listingSnapshot())
	if !ok {
		t.Fatal("expected a reply")
	}
	if !strings.Contains(reply, "یورو") {
		t.Fatalf("reply missing target currency: %s", reply)
	}
	// 100 * 58000 / 63500 = 91.33...
	if !strings.Contains(reply, "91.34") && !strings.Contains(reply, "91.33") {
		t.Fatalf("reply missing cross amount: %s", reply)
	}
}

func TestBuildConversionReplyEnglish(t *testing.T) {
	reply, ok := BuildConversionReply("500 euro to toman", listingSnapshot())
	if !ok {
		t.Fatal("expected a reply")
	}
	if !strings.Contains(reply, "31,750,000") {
		t.Fatalf("reply = %s", reply)
	}
}

func TestBuildConversionReplyPersianDigits(t *testing.T) {
	reply, ok := BuildConversionReply("۱۰۰ دلار", listingSnapshot())
	if !ok {
		t.Fatal("expected a reply for persian digits")
	}
	if !strings.Contains(reply, "5,800,000") {
		t.Fatalf("reply = %s", reply)
	}
}

func TestBuildConversionReplyGroupedAmount(t *testing.T) {
	// The help text advertises this exact form; grouped amounts must not
	// fall through to silence.
	reply, ok := BuildConversionReply("۱۰۰٬۰۰۰ تومان به دلار", listingSnapshot())
	if !ok {
		t.Fatal("expected a reply for a thousands-grouped amount")
	}
	// 100000 / 58000 = 1.7241...
	if !strings.Contains(reply, "1.72") {
		t.Fatalf("reply = %s", reply)
	}

	reply, ok = BuildConversionReply("100,000 دلار", listingSnapshot())
	if !ok || !strings.Contains(reply, "5,800,000,000") {
		t.Fatalf("comma-grouped reply = %q, %v", reply, ok)
	}
}

func TestBuildConversionReplyMultiWordCurrency(t *testing.T) {
	// The country qualifier must reach the resolver; without a live
	// quote CAD has no price, so the bot stays silent rather than
	// answering with USD.
	_, ok := BuildConversionReply("100 دلار کانادا به تومان", listingSnapshot())
	if ok {
		t.Fatal("unpriced CAD should stay silent, not fall back to USD")
	}
}

func TestBuildConversionReplySilences(t *testing.T) {
	snap := listingSnapshot()
	for _, text := range []string{
		"123",          // only numbers
		"۱۲۳٬۴۵۶",      // only persian numbers
		"hello world",  // no amount at all
		"100 xyzzyqqq", // unresolvable currency
	} {
		if reply, ok := BuildConversionReply(text, snap); ok {
			t.Errorf("BuildConversionReply(%q) should be silent, got %q", text, reply)
		}
	}
}

func TestBuildConversionReplyTriggerShowsHelp(t *testing.T) {
	reply, ok := BuildConversionReply("تبدیل", listingSnapshot())
	if !ok || !strings.Contains(reply, "راهنمای تبدیل ارز") {
		t.Fatalf("trigger should show help, got %q, %v", reply, ok)
	}
}

func TestBuildConversionReplyTooLarge(t *testing.T) {
	reply, ok := BuildConversionReply("2000000000 دلار", listingSnapshot())
	if !ok {
		t.Fatal("oversized amounts warn instead of staying silent")
	}
	if !strings.Contains(reply, "بسیار بزرگ") {
		t.Fatalf("reply = %s", reply)
	}
}

func TestBuildConversionReplyNilSnapshot(t *testing.T) {
	reply, ok := BuildConversionReply("100 دلار", nil)
	if !ok || reply != pricesUnavailableMsg {
		t.Fatalf("nil snapshot reply = %q, %v", reply, ok)
	}
}

func TestRenderListing(t *testing.T) {
	snap := listingSnapshot()

	text, ok := RenderListing(snap, models.SectionMainCurrencies, 0, 2)
	if !ok {
		t.Fatal("expected first page")
	}
	if !strings.Contains(text, "دلار") || !strings.Contains(text, "58,000") {
		t.Fatalf("page missing quotes: %s", text)
	}
	if !strings.Contains(text, "صفحه 1 از 2") {
		t.Fatalf("page footer missing: %s", text)
	}
	if strings.Contains(text, "پوند انگلیس") {
		t.Fatalf("second-page quote leaked onto first page: %s", text)
	}

	text, ok = RenderListing(snap, models.SectionMainCurrencies, 1, 2)
	if !ok || !strings.Contains(text, "پوند انگلیس") {
		t.Fatalf("second page = %q, %v", text, ok)
	}

	if _, ok := RenderListing(snap, models.SectionMainCurrencies, 2, 2); ok {
		t.Fatal("out-of-range page should fail")
	}
	if _, ok := RenderListing(snap, "missing", 0, 2); ok {
		t.Fatal("missing section should fail")
	}
	if _, ok := RenderListing(nil, models.SectionMainCurrencies, 0, 2); ok {
		t.Fatal("nil snapshot should fail")
	}
}

func TestRenderCrypto(t *testing.T) {
	rec := models.CryptoSymbolState{
		Symbol:             "BTCIRT",
		LastTradePrice:     100000000,
		PriceChange:        1000000,
		PriceChangePercent: 1.01,
		HasChangePercent:   true,
		BestAsk:            &models.OrderLevel{Price: 100100000, Quantity: 0.5},
	}
	text := RenderCrypto(rec)
	if !strings.Contains(text, "بیت کوین") || !strings.Contains(text, "₿") {
		t.Fatalf("missing name/icon: %s", text)
	}
	if !strings.Contains(text, "100,000,000 تومان") {
		t.Fatalf("missing price: %s", text)
	}
	if !strings.Contains(text, "📈") {
		t.Fatalf("missing change arrow: %s", text)
	}
}

func TestNormalizeCryptoQuery(t *testing.T) {
	tests := map[string]string{
		"btc":     "BTCIRT",
		"BTCIRT":  "BTCIRT",
		"ethusdt": "ETHUSDT",
		"usdt":    "USDTIRT",
		"":        "",
	}
	for in, want := range tests {
		if got := normalizeCryptoQuery(in); got != want {
			t.Errorf("normalizeCryptoQuery(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseListCallback(t *testing.T) {
	section, page, ok := parseListCallback("list:mainCurrencies:3")
	if !ok || section != "mainCurrencies" || page != 3 {
		t.Fatalf("parsed = %q, %d, %v", section, page, ok)
	}
	for _, data := range []string{"", "list:x", "other:a:1", "list:x:-1", "list:x:nan"} {
		if _, _, ok := parseListCallback(data); ok {
			t.Errorf("parseListCallback(%q) should fail", data)
		}
	}
}
