package convert

import (
	"strings"

	"arzbot/models"
)

// quoteMatches reports whether a snapshot quote is the instrument behind a
// currency code. The endpoint rarely fills currencyCode, so most codes are
// recognized by native-name substrings, the English name, or the symbol
// glyph. Codes without a predicate here only match through currencyCode.
func quoteMatches(q models.CurrencyQuote, code string) bool {
	name := strings.ToLower(q.Name)
	symbol := strings.ToLower(q.Symbol)

	if strings.ToUpper(q.Code) == code {
		return true
	}

	switch code {
	case "USD":
		return strings.Contains(name, "دلار") || strings.Contains(name, "dollar") || symbol == "$"
	case "EUR":
		return strings.Contains(name, "یورو") || strings.Contains(name, "euro") || symbol == "€"
	case "GBP":
		return strings.Contains(name, "پوند") || strings.Contains(name, "pound") || symbol == "£"
	case "AED":
		return containsAny(name, "درهم", "dirham", "emirati", "uae")
	case "TRY":
		return containsAny(name, "لیر", "lira", "turkish")
	case "AFN":
		return containsAny(name, "افغانی", "afghani", "afghan")
	case "CNY":
		return containsAny(name, "یوان", "yuan", "chinese", "china")
	case "JPY":
		return containsAny(name, "ین", "yen", "japanese", "japan")
	case "RUB":
		return containsAny(name, "روبل", "ruble", "russian", "russia")
	case "CAD":
		return containsAny(name, "دلار کانادا", "canadian dollar", "canada")
	case "AUD":
		return containsAny(name, "دلار استرالیا", "australian dollar", "australia")
	case "INR":
		return containsAny(name, "روپیه هند", "indian rupee", "india")
	case "PKR":
		return containsAny(name, "روپیه پاکستان", "pakistani rupee", "pakistan")
	case "IQD":
		return containsAny(name, "دینار عراق", "iraqi dinar", "iraq")
	case "SAR":
		return containsAny(name, "ریال سعودی", "saudi riyal", "saudi")
	case "QAR":
		return containsAny(name, "ریال قطر", "qatari riyal", "qatar")
	case "KWD":
		return containsAny(name, "دینار کویت", "kuwaiti dinar", "kuwait")
	}

	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
