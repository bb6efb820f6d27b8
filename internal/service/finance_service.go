// Package service implements the budget-tracking engine: transaction and
// category bookkeeping, derived-spend aggregation, threshold alerting, and
// financial summaries. All state lives in the injected Store; the service
// itself holds no mutable data.
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbuddy/backend/internal/auth"
	"github.com/budgetbuddy/backend/internal/model"
	"github.com/budgetbuddy/backend/internal/store"
)

// FinanceService coordinates all budget-tracking operations for the
// authenticated user carried in each call's context.
type FinanceService struct {
	store  store.Store
	alerts *AlertEngine
}

// NewFinanceService creates the finance service backed by the given store.
func NewFinanceService(st store.Store) *FinanceService {
	return &FinanceService{
		store:  st,
		alerts: NewAlertEngine(st),
	}
}

func requireUser(ctx context.Context) (string, error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return "", unauthenticated()
	}
	return claims.UID, nil
}

// Transaction operations

// AddTransaction validates and persists a transaction, then recomputes the
// affected category's spend when the transaction is an expense.
func (s *FinanceService) AddTransaction(ctx context.Context, t *model.Transaction) (*model.Transaction, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if t.Amount < 0 {
		return nil, invalidArgument("transaction amount must not be negative")
	}
	if t.Type != model.TransactionIncome && t.Type != model.TransactionExpense {
		return nil, invalidArgument("transaction type must be income or expense")
	}
	if t.CategoryID == "" && t.CategoryName == "" {
		return nil, invalidArgument("transaction category is required")
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Date == 0 {
		t.Date = model.NowMillis()
	}
	t.UserID = userID

	// Resolve the category by ID so the stored record carries both the
	// foreign key and the display name.
	if t.CategoryID != "" {
		cat, err := s.store.GetCategory(ctx, userID, t.CategoryID)
		if err != nil {
			return nil, wrapStoreErr("resolve transaction category", err)
		}
		t.CategoryName = cat.Name
	}

	if err := s.store.CreateTransaction(ctx, userID, t); err != nil {
		return nil, wrapStoreErr("create transaction", err)
	}

	if t.Type == model.TransactionExpense {
		if err := s.recomputeForTransaction(ctx, userID, t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// DeleteTransaction removes a transaction by ID and recomputes the affected
// category's spend when the removed transaction was an expense.
func (s *FinanceService) DeleteTransaction(ctx context.Context, transactionID string) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	t, err := s.store.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		return wrapStoreErr("get transaction", err)
	}
	if err := s.store.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return wrapStoreErr("delete transaction", err)
	}

	if t.Type == model.TransactionExpense {
		return s.recomputeForTransaction(ctx, userID, t)
	}
	return nil
}

// ListTransactions returns the user's transactions, newest first.
func (s *FinanceService) ListTransactions(ctx context.Context) ([]*model.Transaction, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr("list transactions", err)
	}
	return txs, nil
}

// WatchTransactions returns a live stream of the user's transaction set.
func (s *FinanceService) WatchTransactions(ctx context.Context) (<-chan []*model.Transaction, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	ch, err := s.store.WatchTransactions(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr("watch transactions", err)
	}
	return ch, nil
}

// ResetMonth deletes every transaction for the user and zeroes each
// category's spent total directly, without going through recompute.
// Categories themselves are kept.
func (s *FinanceService) ResetMonth(ctx context.Context) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	if err := s.store.DeleteAllTransactions(ctx, userID); err != nil {
		return wrapStoreErr("delete all transactions", err)
	}

	cats, err := s.store.ListCategories(ctx, userID)
	if err != nil {
		return wrapStoreErr("list categories", err)
	}
	for _, cat := range cats {
		if err := s.store.SetCategorySpent(ctx, userID, cat.ID, 0); err != nil {
			return wrapStoreErr("reset category spent", err)
		}
	}
	return nil
}

// Category operations

// AddCategory validates and persists a new spending category. The derived
// Spent field always starts at zero regardless of input.
func (s *FinanceService) AddCategory(ctx context.Context, c *model.Category) (*model.Category, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if c.Name == "" {
		return nil, invalidArgument("category name is required")
	}
	if c.MonthlyLimit < 0 {
		return nil, invalidArgument("category monthly limit must not be negative")
	}

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.Spent = 0
	c.UserID = userID

	if err := s.store.CreateCategory(ctx, userID, c); err != nil {
		return nil, wrapStoreErr("create category", err)
	}
	return c, nil
}

// UpdateCategory replaces a category's user-editable fields. Spent is carried
// over from the stored record, never from the caller; alerts are re-evaluated
// because a changed limit moves the thresholds.
func (s *FinanceService) UpdateCategory(ctx context.Context, c *model.Category) (*model.Category, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if c.Name == "" {
		return nil, invalidArgument("category name is required")
	}
	if c.MonthlyLimit < 0 {
		return nil, invalidArgument("category monthly limit must not be negative")
	}

	existing, err := s.store.GetCategory(ctx, userID, c.ID)
	if err != nil {
		return nil, wrapStoreErr("get category", err)
	}
	c.Spent = existing.Spent
	c.UserID = userID

	if err := s.store.UpdateCategory(ctx, userID, c); err != nil {
		return nil, wrapStoreErr("update category", err)
	}
	if err := s.alerts.EvaluateCategory(ctx, userID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory removes a category and cascades deletion of its alerts.
func (s *FinanceService) DeleteCategory(ctx context.Context, categoryID string) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	if err := s.store.DeleteCategory(ctx, userID, categoryID); err != nil {
		return wrapStoreErr("delete category", err)
	}
	return s.alerts.DeleteAlertsForCategory(ctx, userID, categoryID)
}

// ListCategories returns the user's categories sorted by name.
func (s *FinanceService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := s.store.ListCategories(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr("list categories", err)
	}
	return cats, nil
}

// WatchCategories returns a live stream of the user's category set.
func (s *FinanceService) WatchCategories(ctx context.Context) (<-chan []*model.Category, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	ch, err := s.store.WatchCategories(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr("watch categories", err)
	}
	return ch, nil
}

// InitializeDefaultCategories seeds the starter categories for a user whose
// category collection is empty. Existing collections are left untouched.
func (s *FinanceService) InitializeDefaultCategories(ctx context.Context) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	existing, err := s.store.ListCategories(ctx, userID)
	if err != nil {
		return wrapStoreErr("list categories", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, c := range DefaultCategories() {
		c.ID = uuid.New().String()
		c.UserID = userID
		if err := s.store.CreateCategory(ctx, userID, c); err != nil {
			return wrapStoreErr("seed category", err)
		}
	}
	return nil
}

// DefaultCategories returns the seed category set for new users. Limits and
// styling are seed data, not engine logic.
func DefaultCategories() []*model.Category {
	return []*model.Category{
		{Name: "Food & Dining", MonthlyLimit: 3000, Color: "#FF6B6B", Icon: "restaurant"},
		{Name: "Shopping", MonthlyLimit: 2000, Color: "#4ECDC4", Icon: "shopping_bag"},
		{Name: "Housing", MonthlyLimit: 8000, Color: "#45B7D1", Icon: "home"},
		{Name: "Transportation", MonthlyLimit: 1500, Color: "#FFA07A", Icon: "directions_car"},
		{Name: "Utilities", MonthlyLimit: 2000, Color: "#98D8C8", Icon: "bolt"},
		{Name: "Healthcare", MonthlyLimit: 1500, Color: "#F7DC6F", Icon: "favorite"},
		{Name: "Entertainment", MonthlyLimit: 1000, Color: "#BB8FCE", Icon: "movie"},
		{Name: "Others", MonthlyLimit: 2000, Color: "#85929E", Icon: "credit_card"},
	}
}

// Budget operations

// SetBudget upserts the total budget for one calendar month. Month is
// zero-based (January == 0).
func (s *FinanceService) SetBudget(ctx context.Context, b *model.Budget) (*model.Budget, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if b.Month < 0 || b.Month > 11 {
		return nil, invalidArgument("budget month must be in 0..11")
	}
	if b.TotalMonthlyBudget < 0 {
		return nil, invalidArgument("budget total must not be negative")
	}
	b.UserID = userID
	if err := s.store.SetBudget(ctx, userID, b); err != nil {
		return nil, wrapStoreErr("set budget", err)
	}
	return b, nil
}

// CurrentBudget returns the budget for the current calendar month, or nil
// when none has been set.
func (s *FinanceService) CurrentBudget(ctx context.Context) (*model.Budget, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.currentBudget(ctx, userID)
}

// Alert read operations

// ListAlerts returns all alerts for the user, newest first. With unreadOnly
// set, read alerts are filtered out.
func (s *FinanceService) ListAlerts(ctx context.Context, unreadOnly bool) ([]*model.BudgetAlert, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := s.store.ListAlerts(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr("list alerts", err)
	}
	if !unreadOnly {
		return alerts, nil
	}
	unread := make([]*model.BudgetAlert, 0, len(alerts))
	for _, a := range alerts {
		if !a.IsRead {
			unread = append(unread, a)
		}
	}
	return unread, nil
}

// MarkAlertRead flags a single alert as read.
func (s *FinanceService) MarkAlertRead(ctx context.Context, alertID string) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	if err := s.store.MarkAlertRead(ctx, userID, alertID); err != nil {
		return wrapStoreErr("mark alert read", err)
	}
	return nil
}

// WatchAlerts returns a live stream of the user's alert set.
func (s *FinanceService) WatchAlerts(ctx context.Context) (<-chan []*model.BudgetAlert, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	ch, err := s.store.WatchAlerts(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr("watch alerts", err)
	}
	return ch, nil
}

// User profile operations

// SaveUserProfile persists the authenticated user's profile record.
func (s *FinanceService) SaveUserProfile(ctx context.Context, u *model.User) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	u.UID = userID
	if u.CreatedAt == 0 {
		u.CreatedAt = model.NowMillis()
	}
	u.LastLoginAt = model.NowMillis()
	if err := s.store.SaveUserProfile(ctx, u); err != nil {
		return wrapStoreErr("save user profile", err)
	}
	return nil
}

// UserProfile returns the authenticated user's stored profile.
func (s *FinanceService) UserProfile(ctx context.Context) (*model.User, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.store.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr("get user profile", err)
	}
	return u, nil
}
