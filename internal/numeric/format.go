package numeric

import (
	"math"
	"strconv"
	"strings"

	"arzbot/models"
)

// FormatNumber renders a value with thousands separators, keeping
// whatever decimals the value carries.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return groupThousands(s)
}

// FormatString adds thousands separators to an already-formatted numeric
// string, echoing it back untouched when it is not one.
func FormatString(s string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if _, err := strconv.ParseFloat(cleaned, 64); err != nil {
		return s
	}
	return groupThousands(cleaned)
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	if hasFrac {
		return sign + intPart + "." + fracPart
	}
	return sign + intPart
}

// DisplayAmount renders a conversion result: whole values as integers,
// everything else rounded to two decimals.
func DisplayAmount(v float64) string {
	if v == math.Trunc(v) {
		return FormatNumber(v)
	}
	return FormatNumber(roundTo(v, 2))
}

// DisplayRate renders an exchange rate: two decimals for ordinary rates,
// six for the very small ones.
func DisplayRate(v float64) string {
	if v >= 0.01 {
		return FormatNumber(roundTo(v, 2))
	}
	return FormatNumber(roundTo(v, 6))
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// FormatChange renders a change descriptor with a direction arrow, e.g.
// "📈 300+" or "📉 700-". Strings the descriptor parser rejects come back
// unchanged.
func FormatChange(raw string) string {
	change, ok := models.ParseChange(raw)
	if !ok {
		return raw
	}
	if change.Negative() {
		return "📉 " + FormatNumber(-change.Value) + "-"
	}
	return "📈 " + FormatNumber(change.Value) + "+"
}
