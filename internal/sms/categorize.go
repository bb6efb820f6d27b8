package sms

import "strings"

// DefaultCategory is suggested when no keyword rule matches.
const DefaultCategory = "Others"

// categoryRule holds the keyword sets for one spending category. Message
// keywords are matched against the full SMS text, merchant keywords against
// the extracted merchant name only.
type categoryRule struct {
	Name             string
	MessageKeywords  []string
	MerchantKeywords []string
}

// categoryRules is a priority list: the first matching category wins.
var categoryRules = []categoryRule{
	{
		Name:             "Food & Dining",
		MessageKeywords:  []string{"swiggy", "zomato"},
		MerchantKeywords: []string{"restaurant", "cafe", "food"},
	},
	{
		Name:             "Shopping",
		MessageKeywords:  []string{"amazon", "flipkart"},
		MerchantKeywords: []string{"mall", "store"},
	},
	{
		Name:            "Transportation",
		MessageKeywords: []string{"uber", "ola", "petrol", "fuel"},
	},
	{
		Name:            "Utilities",
		MessageKeywords: []string{"electricity", "water", "gas", "internet"},
	},
	{
		Name:             "Entertainment",
		MessageKeywords:  []string{"netflix", "prime", "movie"},
		MerchantKeywords: []string{"cinema"},
	},
	{
		Name:             "Healthcare",
		MessageKeywords:  []string{"pharmacy", "hospital", "doctor"},
		MerchantKeywords: []string{"medical"},
	},
}

// SuggestCategory suggests a spending category for a parsed transaction from
// fixed keyword sets, evaluated in priority order. Matching is
// case-insensitive; the fallback is DefaultCategory.
func SuggestCategory(merchant, message string) string {
	messageLower := strings.ToLower(message)
	merchantLower := strings.ToLower(merchant)

	for _, rule := range categoryRules {
		for _, kw := range rule.MessageKeywords {
			if strings.Contains(messageLower, kw) {
				return rule.Name
			}
		}
		for _, kw := range rule.MerchantKeywords {
			if merchantLower != "" && strings.Contains(merchantLower, kw) {
				return rule.Name
			}
		}
	}
	return DefaultCategory
}
