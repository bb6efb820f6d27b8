package sms

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// bankCode maps an SMS sender short-code to a bank's display name.
type bankCode struct {
	Code string
	Name string
}

// knownBanks is evaluated in order so identification stays deterministic.
var knownBanks = []bankCode{
	{"HDFCBK", "HDFC Bank"},
	{"SBIINB", "State Bank of India"},
	{"ICICIB", "ICICI Bank"},
	{"AXISBK", "Axis Bank"},
	{"KOTAKB", "Kotak Mahindra Bank"},
	{"PNBSMS", "Punjab National Bank"},
	{"BOISMS", "Bank of India"},
}

// BankName identifies the sending bank. The sender ID is checked against the
// known short-codes first (exact substring, then a fuzzy pass for one-letter
// garbling in DLT sender IDs); failing that, the message body is scanned for
// full bank names. Returns "" when nothing matches.
func BankName(sender, body string) string {
	if sender != "" {
		upper := strings.ToUpper(sender)
		for _, bank := range knownBanks {
			if strings.Contains(upper, bank.Code) {
				return bank.Name
			}
		}
		for _, token := range strings.FieldsFunc(upper, func(r rune) bool { return r == '-' || r == '.' }) {
			if len(token) < 5 {
				continue
			}
			for _, bank := range knownBanks {
				if levenshtein.ComputeDistance(token, bank.Code) <= 1 {
					return bank.Name
				}
			}
		}
	}

	lower := strings.ToLower(body)
	for _, bank := range knownBanks {
		if strings.Contains(lower, strings.ToLower(bank.Name)) {
			return bank.Name
		}
	}
	return ""
}
