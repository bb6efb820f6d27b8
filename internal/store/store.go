package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgetbuddy/backend/internal/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned by one-shot reads when no record exists for the
// given ID. Implementations wrap their backend's own not-found condition.
var ErrNotFound = errors.New("store: record not found")

// Store defines the per-user hierarchical database operations used by the
// service layer. Every operation is scoped to a single user's namespace.
//
// Watch methods return live-query streams: the full matching record set is
// delivered on subscription and again after every change, each emission
// replacing the previous snapshot wholesale. The channel is closed when the
// context is cancelled or the underlying query fails; consumers resubscribe
// themselves, the store does not reconnect.
type Store interface {
	// Transaction operations
	CreateTransaction(ctx context.Context, userID string, t *model.Transaction) error
	GetTransaction(ctx context.Context, userID, transactionID string) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
	ListTransactions(ctx context.Context, userID string) ([]*model.Transaction, error)
	DeleteAllTransactions(ctx context.Context, userID string) error
	WatchTransactions(ctx context.Context, userID string) (<-chan []*model.Transaction, error)

	// Category operations
	CreateCategory(ctx context.Context, userID string, c *model.Category) error
	GetCategory(ctx context.Context, userID, categoryID string) (*model.Category, error)
	UpdateCategory(ctx context.Context, userID string, c *model.Category) error
	DeleteCategory(ctx context.Context, userID, categoryID string) error
	ListCategories(ctx context.Context, userID string) ([]*model.Category, error)
	// SetCategorySpent writes only the Spent field of a category, leaving the
	// rest of the record untouched. This is the aggregation engine's write path.
	SetCategorySpent(ctx context.Context, userID, categoryID string, spent float64) error
	WatchCategories(ctx context.Context, userID string) (<-chan []*model.Category, error)

	// Budget operations. Budgets are keyed by (year, month) so at most one
	// record can exist per calendar month; SetBudget upserts.
	SetBudget(ctx context.Context, userID string, b *model.Budget) error
	GetBudget(ctx context.Context, userID string, month, year int) (*model.Budget, error)

	// Alert operations
	CreateAlert(ctx context.Context, userID string, a *model.BudgetAlert) error
	DeleteAlert(ctx context.Context, userID, alertID string) error
	ListAlerts(ctx context.Context, userID string) ([]*model.BudgetAlert, error)
	ListAlertsByCategory(ctx context.Context, userID, categoryID string) ([]*model.BudgetAlert, error)
	MarkAlertRead(ctx context.Context, userID, alertID string) error
	WatchAlerts(ctx context.Context, userID string) (<-chan []*model.BudgetAlert, error)

	// User profile operations
	SaveUserProfile(ctx context.Context, u *model.User) error
	GetUserProfile(ctx context.Context, userID string) (*model.User, error)
}

// BudgetID returns the deterministic document ID for a month's budget.
// Month is zero-based, so January 2026 becomes "2026-01".
func BudgetID(month, year int) string {
	return fmt.Sprintf("%04d-%02d", year, month+1)
}
