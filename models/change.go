package models

import (
	"strconv"
	"strings"
)

// ChangeDescriptor is the parsed form of the change field the currency
// endpoint embeds in one string, e.g. "(-0.12%) -700" or "(2.40%) 1,350".
type ChangeDescriptor struct {
	Percent float64
	Value   float64
}

// Negative reports whether the absolute delta is below zero.
func (c ChangeDescriptor) Negative() bool {
	return c.Value < 0
}

// ParseChange parses the endpoint's "(±X.XX%) ±value" change descriptor.
// The format is not guaranteed: quotes have shipped with missing
// parentheses, nested parentheses and plain garbage. ok is false whenever
// the string does not hold the expected shape, in which case callers must
// fall back to displaying the raw string unchanged.
func ParseChange(raw string) (ChangeDescriptor, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ChangeDescriptor{}, false
	}

	open := strings.Index(s, "(")
	if open < 0 {
		return ChangeDescriptor{}, false
	}
	close := strings.Index(s[open:], ")")
	if close < 0 {
		return ChangeDescriptor{}, false
	}
	close += open

	percentPart := strings.TrimSpace(s[open+1 : close])
	percentPart = strings.TrimSuffix(percentPart, "%")
	percent, err := strconv.ParseFloat(strings.ReplaceAll(percentPart, ",", ""), 64)
	if err != nil {
		return ChangeDescriptor{}, false
	}

	valuePart := strings.TrimSpace(s[close+1:])
	if valuePart == "" {
		return ChangeDescriptor{}, false
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(valuePart, ",", ""), 64)
	if err != nil {
		return ChangeDescriptor{}, false
	}

	// Some feeds put the minus in front of the whole descriptor instead of
	// inside it: "-(0.12%) 700".
	if strings.TrimSpace(s[:open]) == "-" {
		if percent > 0 {
			percent = -percent
		}
		if value > 0 {
			value = -value
		}
	}

	return ChangeDescriptor{Percent: percent, Value: value}, true
}
