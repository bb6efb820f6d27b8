// Package model defines the persisted entity types shared by the store and
// service layers. Records are stored as flat documents whose field names match
// the Go struct field names.
package model

import "time"

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// AlertSeverity classifies a budget alert.
type AlertSeverity string

const (
	AlertInfo    AlertSeverity = "info"
	AlertWarning AlertSeverity = "warning"
	AlertDanger  AlertSeverity = "danger"
)

// Transaction is a single income or expense entry. Transactions are immutable
// once created except by full replacement, and are deleted by ID.
//
// CategoryID is the explicit foreign key to a Category. CategoryName is kept
// for records imported from sources that only carry a free-text category name;
// aggregation falls back to name matching only when CategoryID is empty.
type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	CategoryID    string          `json:"categoryId"`
	CategoryName  string          `json:"category"`
	Description   string          `json:"description"`
	Merchant      string          `json:"merchant,omitempty"`
	BankAccountID string          `json:"bankAccountId,omitempty"`
	Date          int64           `json:"date"` // epoch millis
	AutoDetected  bool            `json:"isAutoDetected"`
	UserID        string          `json:"userId"`
}

// Category is a user-defined spending bucket. Spent is a derived cache of the
// expense total for the bucket; it is recomputable from the transaction set at
// any time and is written only by the aggregation engine.
type Category struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MonthlyLimit float64 `json:"monthlyLimit"` // <= 0 disables alerting
	Spent        float64 `json:"spent"`
	Color        string  `json:"color"`
	Icon         string  `json:"icon"`
	UserID       string  `json:"userId"`
}

// Budget is the total monthly budget for one calendar month.
// Month is zero-based (January == 0), matching the stored record shape.
type Budget struct {
	ID                 string  `json:"id"`
	TotalMonthlyBudget float64 `json:"totalMonthlyBudget"`
	Month              int     `json:"month"`
	Year               int     `json:"year"`
	UserID             string  `json:"userId"`
}

// BudgetAlert is the live alert for a category. At most one non-deleted alert
// exists per category at any time.
type BudgetAlert struct {
	ID         string        `json:"id"`
	CategoryID string        `json:"categoryId"`
	Message    string        `json:"message"`
	Severity   AlertSeverity `json:"type"`
	Timestamp  int64         `json:"timestamp"` // epoch millis
	IsRead     bool          `json:"isRead"`
	UserID     string        `json:"userId"`
}

// User is the stored user profile.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
	LastLoginAt int64  `json:"lastLoginAt"`
}

// FinancialSummary is derived from the full transaction set plus the
// current-month budget. It is recomputed on every read and never persisted.
type FinancialSummary struct {
	TotalIncome          float64 `json:"totalIncome"`
	TotalExpenses        float64 `json:"totalExpenses"`
	NetIncome            float64 `json:"netIncome"`
	SavingsRate          float64 `json:"savingsRate"`
	AvgDailySpend        float64 `json:"avgDailySpend"`
	BudgetUsedPercentage float64 `json:"budgetUsedPercentage"`
}

// SMSTransaction is a transaction candidate parsed from a bank SMS. It is not
// persisted until the user confirms it.
type SMSTransaction struct {
	Amount     float64         `json:"amount"`
	Type       TransactionType `json:"type"`
	Merchant   string          `json:"merchant,omitempty"`
	Timestamp  int64           `json:"timestamp"`
	RawMessage string          `json:"rawMessage"`
	BankName   string          `json:"bankName,omitempty"`
}

// NowMillis returns the current time as epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// CurrentMonthYear returns the current calendar month (zero-based) and year.
func CurrentMonthYear() (month, year int) {
	now := time.Now()
	return int(now.Month()) - 1, now.Year()
}
