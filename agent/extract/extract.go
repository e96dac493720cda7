// Package extract holds the named entity extractors used by the evidence
// gatherer. Each extractor returns an optional typed value; a miss is not an
// error, it just means the tool that needs the entity is skipped.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	pricePattern      = regexp.MustCompile(`(?i)under\s*\$?\s*(\d+)`)
	postalPattern     = regexp.MustCompile(`\b(\d{5,6})\b`)
	orderIDPattern    = regexp.MustCompile(`(?i)order\s*#?\s*([A-Za-z]\d+)`)
	orderTokenPattern = regexp.MustCompile(`(?i)\b[A-Za-z]\d+\b`)
	emailPattern      = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	sizePairPattern   = regexp.MustCompile(`(?i)\b(xs|s|m|l|xl)\s*/\s*(xs|s|m|l|xl)\b`)
)

// PriceCeiling returns the first integer following an "under $N" pattern.
func PriceCeiling(text string) (float64, bool) {
	m := pricePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// PostalCode returns the first standalone 5-6 digit run. Digits embedded in
// an order-id token (A1003) do not match.
func PostalCode(text string) (string, bool) {
	m := postalPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// OrderID returns the letter+digits token following the word "order",
// normalized to upper case to match the stored record ids.
func OrderID(text string) (string, bool) {
	m := orderIDPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}

// HasOrderToken reports whether the text contains an order-id-shaped token
// anywhere, with or without the word "order".
func HasOrderToken(text string) bool {
	return orderTokenPattern.MatchString(text)
}

// Email returns the first email-shaped token.
func Email(text string) (string, bool) {
	m := emailPattern.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}

// SizePreference returns the fit wording found in the text, defaulting to
// "fitted" when the user states none.
func SizePreference(text string) string {
	lower := strings.ToLower(text)
	for _, pref := range []string{"loose", "relaxed", "tight", "fitted"} {
		if strings.Contains(lower, pref) {
			return pref
		}
	}
	return "fitted"
}

// MentionsSizing reports whether the text talks about sizing at all, either
// explicitly or via an S/M/L style pair.
func MentionsSizing(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "size") || strings.Contains(lower, "fit") {
		return true
	}
	return sizePairPattern.MatchString(text)
}
