package convert

import (
	"errors"
	"math"
	"testing"

	"arzbot/models"
)

func testSnapshot() *models.PriceSnapshot {
	return &models.PriceSnapshot{
		PollID: "test",
		Sections: map[string][]models.CurrencyQuote{
			models.SectionMainCurrencies: {
				{Name: "دلار", Symbol: "$", LivePrice: "58,000"},
				{Name: "یورو", Symbol: "€", LivePrice: "63,500"},
				{Name: "پوند انگلیس", Symbol: "£", LivePrice: "73,200"},
				{Name: "لیر ترکیه", LivePrice: "1,700"},
			},
			models.SectionMinorCurrencies: {
				{Name: "روپیه هند", LivePrice: "700"},
				{Name: "دینار عراق", LivePrice: "44"},
			},
		},
		LastUpdate: "1403/06/06 - 14:30",
	}
}

func TestPriceInTomanPivots(t *testing.T) {
	snap := testSnapshot()
	if price, ok := PriceInToman("TOMAN", snap); !ok || price != 1.0 {
		t.Fatalf("TOMAN price = %v, %v", price, ok)
	}
	if price, ok := PriceInToman("IRR", snap); !ok || price != 0.1 {
		t.Fatalf("IRR price = %v, %v", price, ok)
	}
}

func TestPriceInTomanFromSnapshot(t *testing.T) {
	snap := testSnapshot()
	if price, ok := PriceInToman("USD", snap); !ok || price != 58000 {
		t.Fatalf("USD price = %v, %v", price, ok)
	}
	// minorCurrencies is scanned after mainCurrencies.
	if price, ok := PriceInToman("IQD", snap); !ok || price != 44 {
		t.Fatalf("IQD price = %v, %v", price, ok)
	}
}

func TestPriceInTomanFallbackOnEmptySnapshot(t *testing.T) {
	empty := &models.PriceSnapshot{Sections: map[string][]models.CurrencyQuote{}}
	for code, want := range map[string]float64{
		"PKR": 0.15,
		"BTC": 1200000000,
		"XAU": 70000000,
	} {
		price, ok := PriceInToman(code, empty)
		if !ok || price != want {
			t.Errorf("PriceInToman(%s) = %v, %v, want %v", code, price, ok, want)
		}
	}
	if _, ok := PriceInToman("ZZZ", empty); ok {
		t.Error("unknown code should not price")
	}
}

func TestPriceInTomanNilSnapshot(t *testing.T) {
	// A nil snapshot behaves like an empty one: pivot and fallback rates
	// still work, live-only codes do not.
	if price, ok := PriceInToman("TOMAN", nil); !ok || price != 1.0 {
		t.Fatalf("TOMAN price = %v, %v", price, ok)
	}
	if price, ok := PriceInToman("PKR", nil); !ok || price != 0.15 {
		t.Fatalf("PKR price = %v, %v", price, ok)
	}
}

func TestConvertIdentity(t *testing.T) {
	res, err := Convert(42, "USD", "USD", testSnapshot())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if res.Amount != 42 || res.FromPrice != 1 || res.ToPrice != 1 {
		t.Fatalf("identity result = %+v", res)
	}
	if res.Rate() != 1 {
		t.Fatalf("identity rate = %v", res.Rate())
	}
}

func TestConvertToToman(t *testing.T) {
	res, err := Convert(100, "USD", "TOMAN", testSnapshot())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if res.Amount != 5800000 {
		t.Fatalf("amount = %v, want 5800000", res.Amount)
	}
	if res.Rate() != 58000 {
		t.Fatalf("rate = %v, want 58000", res.Rate())
	}
	if res.FromName != "دلار" || res.ToName != "تومان" {
		t.Fatalf("names = %q, %q", res.FromName, res.ToName)
	}
}

func TestConvertFromToman(t *testing.T) {
	res, err := Convert(5800000, "TOMAN", "USD", testSnapshot())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if math.Abs(res.Amount-100) > 1e-9 {
		t.Fatalf("amount = %v, want 100", res.Amount)
	}
}

func TestConvertCrossRoutesThroughPivot(t *testing.T) {
	snap := testSnapshot()
	res, err := Convert(100, "USD", "EUR", snap)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := 100 * 58000.0 / 63500.0
	if math.Abs(res.Amount-want) > 1e-9 {
		t.Fatalf("amount = %v, want %v", res.Amount, want)
	}
	if math.Abs(res.Rate()-58000.0/63500.0) > 1e-12 {
		t.Fatalf("rate = %v", res.Rate())
	}
}

func TestConvertRoundTrip(t *testing.T) {
	snap := testSnapshot()
	out, err := Convert(250, "USD", "EUR", snap)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	back, err := Convert(out.Amount, "EUR", "USD", snap)
	if err != nil {
		t.Fatalf("back: %v", err)
	}
	if math.Abs(back.Amount-250) > 1e-9 {
		t.Fatalf("round trip = %v, want 250", back.Amount)
	}
}

func TestConvertTaggedFailures(t *testing.T) {
	empty := &models.PriceSnapshot{Sections: map[string][]models.CurrencyQuote{}}

	if _, err := Convert(1, "AAA", "BBB", empty); !errors.Is(err, ErrBothUnpriced) {
		t.Errorf("both unknown: err = %v", err)
	}
	if _, err := Convert(1, "AAA", "TOMAN", empty); !errors.Is(err, ErrFromUnpriced) {
		t.Errorf("from unknown: err = %v", err)
	}
	if _, err := Convert(1, "TOMAN", "BBB", empty); !errors.Is(err, ErrToUnpriced) {
		t.Errorf("to unknown: err = %v", err)
	}
}

func TestConvertRialTenth(t *testing.T) {
	res, err := Convert(1000, "TOMAN", "IRR", testSnapshot())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if res.Amount != 10000 {
		t.Fatalf("amount = %v, want 10000", res.Amount)
	}
}

func TestQuoteMatchesSkipsUnparseablePrice(t *testing.T) {
	snap := &models.PriceSnapshot{
		Sections: map[string][]models.CurrencyQuote{
			models.SectionMainCurrencies: {
				{Name: "دلار", LivePrice: "n/a"},
				{Name: "دلار آمریکا", LivePrice: "58,100"},
			},
		},
	}
	price, ok := PriceInToman("USD", snap)
	if !ok || price != 58100 {
		t.Fatalf("price = %v, %v, want 58100 from the second quote", price, ok)
	}
}

func TestDisplayName(t *testing.T) {
	if DisplayName("USD") != "دلار" {
		t.Error("USD name wrong")
	}
	if DisplayName("ZZZ") != "ZZZ" {
		t.Error("unknown code should echo itself")
	}
}
