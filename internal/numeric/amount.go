// Package numeric parses user-typed amounts and formats numbers for
// replies. Inputs may use Persian digits and thousands separators.
package numeric

import (
	"errors"
	"strconv"
	"strings"
)

// MaxAmount is the largest accepted input amount. Larger values get a
// warning instead of silence, so the bound has its own error.
const MaxAmount = 1_000_000_000

var (
	ErrNotANumber  = errors.New("amount is not a number")
	ErrNotPositive = errors.New("amount must be positive")
	ErrTooLarge    = errors.New("amount exceeds the maximum")
)

var persianDigits = map[rune]rune{
	'۰': '0',
	'۱': '1',
	'۲': '2',
	'۳': '3',
	'۴': '4',
	'۵': '5',
	'۶': '6',
	'۷': '7',
	'۸': '8',
	'۹': '9',
}

// NormalizeDigits rewrites Persian digits as ASCII, leaving every other
// rune alone.
func NormalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if ascii, ok := persianDigits[r]; ok {
			return ascii
		}
		return r
	}, s)
}

// ParseAmount parses a user-typed amount: Persian digits are normalized,
// commas and interior spaces stripped. Non-numbers and non-positive
// values fail with errors the caller swallows silently; only ErrTooLarge
// warrants a reply.
func ParseAmount(raw string) (float64, error) {
	s := NormalizeDigits(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, ErrNotANumber
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	if v <= 0 {
		return 0, ErrNotPositive
	}
	if v > MaxAmount {
		return 0, ErrTooLarge
	}
	return v, nil
}
