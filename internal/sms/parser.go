// Package sms parses unstructured bank SMS text into structured transaction
// candidates. Parsing is pure: no I/O, no store access. A message that yields
// no detectable amount is not an error, it simply produces no candidate.
package sms

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/budgetbuddy/backend/internal/model"
)

// Amount extraction patterns for Indian currency notation. Order matters:
// when a message matches several, the earliest pattern in this list wins.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+\.?[0-9]*)`),
	regexp.MustCompile(`(?i)INR\s*([0-9,]+\.?[0-9]*)`),
	regexp.MustCompile(`₹\s*([0-9,]+\.?[0-9]*)`),
	regexp.MustCompile(`(?i)amount\s*:?\s*Rs\.?\s*([0-9,]+\.?[0-9]*)`),
	regexp.MustCompile(`(?i)of\s*Rs\.?\s*([0-9,]+\.?[0-9]*)`),
}

var (
	debitKeywords  = []string{"debited", "withdrawn", "spent", "paid", "purchase"}
	creditKeywords = []string{"credited", "received", "deposited", "refund"}
)

// Merchant patterns anchor on "at/to/for <Capitalized words>" terminated by
// "on", a period, or end of string. Deliberately case-sensitive on the first
// letter so prose words don't get picked up as merchants.
var merchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`at\s+([A-Z][A-Za-z0-9\s]+?)(?:on|\.|$)`),
	regexp.MustCompile(`to\s+([A-Z][A-Za-z0-9\s]+?)(?:on|\.|$)`),
	regexp.MustCompile(`for\s+([A-Z][A-Za-z0-9\s]+?)(?:on|\.|$)`),
}

var upiPattern = regexp.MustCompile(`UPI/([A-Za-z0-9@]+)`)

// bankMessageKeywords gates which inbound messages are worth parsing at all.
var bankMessageKeywords = []string{
	"debited", "credited", "withdrawn", "deposited",
	"transaction", "account", "balance", "bank",
	"upi", "paytm", "gpay", "phonepe", "bhim",
}

// IsBankMessage reports whether an SMS looks like a bank transaction message.
func IsBankMessage(body string) bool {
	lower := strings.ToLower(body)
	for _, kw := range bankMessageKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ParseTransaction parses a bank SMS into a transaction candidate. It returns
// nil when no amount can be extracted; every other field is best-effort.
func ParseTransaction(body, sender string) *model.SMSTransaction {
	amount, ok := extractAmount(body)
	if !ok {
		return nil
	}

	return &model.SMSTransaction{
		Amount:     amount,
		Type:       transactionType(body),
		Merchant:   extractMerchant(body),
		Timestamp:  model.NowMillis(),
		RawMessage: body,
		BankName:   BankName(sender, body),
	}
}

func extractAmount(body string) (float64, bool) {
	for _, pattern := range amountPatterns {
		m := pattern.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, false
		}
		return amount, true
	}
	return 0, false
}

// transactionType infers the direction from keywords. Debit keywords take
// precedence over credit keywords; a message matching neither is classified
// as an expense (policy choice, not an unknown state).
func transactionType(body string) model.TransactionType {
	lower := strings.ToLower(body)
	for _, kw := range debitKeywords {
		if strings.Contains(lower, kw) {
			return model.TransactionExpense
		}
	}
	for _, kw := range creditKeywords {
		if strings.Contains(lower, kw) {
			return model.TransactionIncome
		}
	}
	return model.TransactionExpense
}

func extractMerchant(body string) string {
	for _, pattern := range merchantPatterns {
		if m := pattern.FindStringSubmatch(body); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if m := upiPattern.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return ""
}
