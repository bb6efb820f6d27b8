package service

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Patterns for cleaning merchant names
	merchantPrefixPattern = regexp.MustCompile(`(?i)^(pos |eftpos |visa |mastercard |amex |upi/|paytm \*)`)
	merchantSuffixPattern = regexp.MustCompile(`(?i)\s+(pvt|pty|ltd|inc|corp|llc|in|au|us|uk)\.?$`)
	merchantLongNumbers   = regexp.MustCompile(`\d{6,}`)
	merchantSpecialChars  = regexp.MustCompile(`[*#]+`)
)

// FormatMerchantName cleans a raw merchant string from an SMS for display:
// payment-network prefixes, company suffixes, long reference numbers, and
// filler characters are stripped, and the remainder is title-cased.
func FormatMerchantName(raw string) string {
	cleaned := merchantPrefixPattern.ReplaceAllString(raw, "")
	cleaned = merchantSuffixPattern.ReplaceAllString(cleaned, "")
	cleaned = merchantLongNumbers.ReplaceAllString(cleaned, "")
	cleaned = merchantSpecialChars.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	caser := cases.Title(language.English)
	words := strings.Fields(cleaned)
	for i, word := range words {
		if len(word) > 2 {
			words[i] = caser.String(strings.ToLower(word))
		} else {
			words[i] = strings.ToUpper(word)
		}
	}

	result := strings.Join(words, " ")
	if len(result) > 50 {
		result = result[:50]
	}
	return result
}
