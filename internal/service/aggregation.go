package service

import (
	"context"
	"errors"
	"strings"

	"github.com/budgetbuddy/backend/internal/model"
	"github.com/budgetbuddy/backend/internal/store"
)

// recomputeForTransaction resolves the category affected by a transaction and
// refreshes its derived spend. Transactions whose category no longer exists
// are left as-is; the next recompute of that category would pick them up if
// it reappears.
func (s *FinanceService) recomputeForTransaction(ctx context.Context, userID string, t *model.Transaction) error {
	categoryID := t.CategoryID
	if categoryID == "" {
		// Legacy records carry only a category name.
		cat, err := s.findCategoryByName(ctx, userID, t.CategoryName)
		if err != nil {
			return err
		}
		if cat == nil {
			return nil
		}
		categoryID = cat.ID
	}
	err := s.RecomputeCategorySpend(ctx, userID, categoryID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

// RecomputeCategorySpend recalculates a category's spent total from scratch
// as the sum of all expense transactions attributed to it, persists the
// result, and re-evaluates the category's alerts. The full-scan recompute
// makes the derived total independent of transaction arrival order.
func (s *FinanceService) RecomputeCategorySpend(ctx context.Context, userID, categoryID string) error {
	cat, err := s.store.GetCategory(ctx, userID, categoryID)
	if err != nil {
		return wrapStoreErr("get category", err)
	}

	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return wrapStoreErr("list transactions", err)
	}

	var spent float64
	for _, t := range txs {
		if t.Type != model.TransactionExpense {
			continue
		}
		if matchesCategory(t, cat) {
			spent += t.Amount
		}
	}

	if err := s.store.SetCategorySpent(ctx, userID, categoryID, spent); err != nil {
		return wrapStoreErr("set category spent", err)
	}

	cat.Spent = spent
	return s.alerts.EvaluateCategory(ctx, userID, cat)
}

// matchesCategory decides whether a transaction is attributed to a category.
// Records written by this service carry a CategoryID; records imported from
// older clients may only have a name, matched case-insensitively.
func matchesCategory(t *model.Transaction, c *model.Category) bool {
	if t.CategoryID != "" {
		return t.CategoryID == c.ID
	}
	return strings.EqualFold(t.CategoryName, c.Name)
}

func (s *FinanceService) findCategoryByName(ctx context.Context, userID, name string) (*model.Category, error) {
	if name == "" {
		return nil, nil
	}
	cats, err := s.store.ListCategories(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr("list categories", err)
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, nil
}

// avgDailySpendDays is the fixed window used for the average daily spend
// figure, matching the monthly reporting period.
const avgDailySpendDays = 30

// FinancialSummary computes the user's aggregate financial picture from all
// stored transactions and the current month's budget.
func (s *FinanceService) FinancialSummary(ctx context.Context) (*model.FinancialSummary, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr("list transactions", err)
	}

	var income, expenses float64
	for _, t := range txs {
		switch t.Type {
		case model.TransactionIncome:
			income += t.Amount
		case model.TransactionExpense:
			expenses += t.Amount
		}
	}

	summary := &model.FinancialSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetIncome:     income - expenses,
		AvgDailySpend: expenses / avgDailySpendDays,
	}
	if income > 0 {
		summary.SavingsRate = summary.NetIncome / income * 100
	}

	budget, err := s.currentBudget(ctx, userID)
	if err != nil {
		return nil, err
	}
	if budget != nil && budget.TotalMonthlyBudget > 0 {
		summary.BudgetUsedPercentage = expenses / budget.TotalMonthlyBudget * 100
	}
	return summary, nil
}

func (s *FinanceService) currentBudget(ctx context.Context, userID string) (*model.Budget, error) {
	month, year := model.CurrentMonthYear()
	b, err := s.store.GetBudget(ctx, userID, month, year)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapStoreErr("get budget", err)
	}
	return b, nil
}
