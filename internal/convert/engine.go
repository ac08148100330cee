// Package convert prices currencies against the Toman pivot and converts
// amounts between any two resolvable codes.
package convert

import (
	"errors"

	"arzbot/models"
)

// Pivot is the unit every price is expressed in.
const Pivot = "TOMAN"

// Conversion failures are tagged so the caller can decide which side was
// the problem. All three mean "stay silent" at the bot surface.
var (
	ErrBothUnpriced = errors.New("neither currency has a known price")
	ErrFromUnpriced = errors.New("source currency has no known price")
	ErrToUnpriced   = errors.New("target currency has no known price")
)

// Result is one finished conversion. FromPrice and ToPrice are the pivot
// prices used, 1 for the pivot itself.
type Result struct {
	Amount    float64
	FromCode  string
	ToCode    string
	FromName  string
	ToName    string
	FromPrice float64
	ToPrice   float64
}

// Rate returns the displayed exchange rate: the source's pivot price when
// converting to the pivot, units-per-pivot when converting from it, and
// the direct cross rate otherwise.
func (r Result) Rate() float64 {
	switch {
	case r.ToCode == Pivot:
		return r.FromPrice
	case r.FromCode == Pivot:
		return 1 / r.ToPrice
	default:
		return r.FromPrice / r.ToPrice
	}
}

// PriceInToman returns a currency's price in Toman. The pivot is 1 by
// definition and the rial is a fixed tenth of it. Everything else is
// looked up in the snapshot's mainCurrencies section, then
// minorCurrencies, skipping quotes whose price does not parse; when both
// sections come up empty the static fallback table is consulted. ok is
// false when the code is unknown everywhere.
func PriceInToman(code string, snap *models.PriceSnapshot) (float64, bool) {
	if code == Pivot {
		return 1.0, true
	}
	if code == "IRR" {
		// 1 toman = 10 rials.
		return 0.1, true
	}

	for _, section := range []string{models.SectionMainCurrencies, models.SectionMinorCurrencies} {
		for _, q := range snap.Section(section) {
			if !quoteMatches(q, code) {
				continue
			}
			if price, ok := q.PriceFloat(); ok {
				return price, true
			}
		}
	}

	if rate, ok := fallbackRates[code]; ok {
		return rate, true
	}
	return 0, false
}

// Convert turns an amount of one currency into another, routing through
// the Toman pivot. Equal codes convert at rate 1 without touching the
// snapshot.
func Convert(amount float64, fromCode, toCode string, snap *models.PriceSnapshot) (Result, error) {
	res := Result{
		FromCode: fromCode,
		ToCode:   toCode,
		FromName: DisplayName(fromCode),
		ToName:   DisplayName(toCode),
	}

	if fromCode == toCode {
		res.Amount = amount
		res.FromPrice = 1
		res.ToPrice = 1
		return res, nil
	}

	fromPrice, fromOK := PriceInToman(fromCode, snap)
	toPrice, toOK := PriceInToman(toCode, snap)
	switch {
	case !fromOK && !toOK:
		return Result{}, ErrBothUnpriced
	case !fromOK:
		return Result{}, ErrFromUnpriced
	case !toOK:
		return Result{}, ErrToUnpriced
	}

	res.FromPrice = fromPrice
	res.ToPrice = toPrice

	switch {
	case fromCode == Pivot:
		res.Amount = amount / toPrice
	case toCode == Pivot:
		res.Amount = amount * fromPrice
	default:
		res.Amount = amount * fromPrice / toPrice
	}
	return res, nil
}
