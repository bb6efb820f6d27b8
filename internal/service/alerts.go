package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbuddy/backend/internal/model"
	"github.com/budgetbuddy/backend/internal/store"
)

// Alert thresholds as a percentage of the category's monthly limit.
const (
	warningThresholdPct = 80.0
	dangerThresholdPct  = 100.0
)

// AlertEngine derives budget alerts from category spend. Evaluation is
// idempotent: prior alerts for a category are replaced, never accumulated.
type AlertEngine struct {
	store store.Store
}

// NewAlertEngine creates an alert engine backed by the given store.
func NewAlertEngine(st store.Store) *AlertEngine {
	return &AlertEngine{store: st}
}

// EvaluateCategory recomputes the alert state for a single category. Existing
// alerts for the category are always cleared first, so a category that drops
// back under threshold ends up with no alerts. Categories without a positive
// limit are never evaluated.
func (e *AlertEngine) EvaluateCategory(ctx context.Context, userID string, c *model.Category) error {
	if c.MonthlyLimit <= 0 {
		return nil
	}

	if err := e.DeleteAlertsForCategory(ctx, userID, c.ID); err != nil {
		return err
	}

	pct := c.Spent / c.MonthlyLimit * 100

	var alert *model.BudgetAlert
	switch {
	case pct >= dangerThresholdPct:
		alert = &model.BudgetAlert{
			CategoryID: c.ID,
			Message:    fmt.Sprintf("Budget exceeded in %s! You've spent %.2f of %.2f", c.Name, c.Spent, c.MonthlyLimit),
			Severity:   model.AlertDanger,
		}
	case pct >= warningThresholdPct:
		alert = &model.BudgetAlert{
			CategoryID: c.ID,
			Message:    fmt.Sprintf("You're exceeding your budget in %s. Consider reviewing your spending.", c.Name),
			Severity:   model.AlertWarning,
		}
	default:
		return nil
	}

	alert.ID = uuid.New().String()
	alert.Timestamp = model.NowMillis()
	alert.UserID = userID
	if err := e.store.CreateAlert(ctx, userID, alert); err != nil {
		return wrapStoreErr("create alert", err)
	}
	return nil
}

// DeleteAlertsForCategory removes every alert bound to the given category.
func (e *AlertEngine) DeleteAlertsForCategory(ctx context.Context, userID, categoryID string) error {
	alerts, err := e.store.ListAlertsByCategory(ctx, userID, categoryID)
	if err != nil {
		return wrapStoreErr("list alerts by category", err)
	}
	for _, a := range alerts {
		if err := e.store.DeleteAlert(ctx, userID, a.ID); err != nil {
			return wrapStoreErr("delete alert", err)
		}
	}
	return nil
}
