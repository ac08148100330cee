// Package resolve turns free-text currency tokens, Persian or English,
// into canonical currency codes.
package resolve

import "strings"

// Resolve maps a user-typed currency token to a canonical code. Matching
// is case-insensitive and whitespace-tolerant and never errors; ok is
// false when the token names nothing known, in which case the caller must
// stay silent.
//
// Three stages, in order: exact phrases (substring containment, first hit
// wins), whole-token aliases (only when no phrase matched), then name
// families. Families always run and a later family can override an
// earlier stage's answer; that precedence is inherited behavior, kept
// as-is. A bare dollar with no country qualifier means USD.
func Resolve(token string) (string, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return "", false
	}

	code := ""
	for _, rule := range exactPhrases {
		if strings.Contains(token, rule.phrase) {
			code = rule.code
			break
		}
	}

	if code == "" {
		code = aliases[token]
	}

	for _, family := range familyRules {
		if !containsAny(token, family.terms) {
			continue
		}
		matched := ""
		for _, q := range family.qualifiers {
			if containsAny(token, q.hints) {
				matched = q.code
				break
			}
		}
		if matched == "" {
			matched = family.defaultCode
		}
		if matched != "" {
			code = matched
		}
	}

	if code == "" {
		return "", false
	}
	return code, true
}

func containsAny(token string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(token, term) {
			return true
		}
	}
	return false
}
