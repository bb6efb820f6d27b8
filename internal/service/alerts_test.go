package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetbuddy/backend/internal/model"
	"github.com/budgetbuddy/backend/internal/store"
)

func TestEvaluateCategoryThresholds(t *testing.T) {
	tests := []struct {
		name         string
		limit        float64
		spent        float64
		wantSeverity model.AlertSeverity
		wantNone     bool
	}{
		{"well under budget", 1000, 500, "", true},
		{"just under warning threshold", 1000, 799.99, "", true},
		{"exactly at warning threshold", 1000, 800, model.AlertWarning, false},
		{"between thresholds", 1000, 999.99, model.AlertWarning, false},
		{"exactly at limit", 1000, 1000, model.AlertDanger, false},
		{"over limit", 1000, 1500, model.AlertDanger, false},
		{"zero limit disables alerting", 0, 5000, "", true},
		{"negative limit disables alerting", -100, 5000, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewMemoryStore()
			engine := NewAlertEngine(st)
			ctx := context.Background()

			cat := &model.Category{Name: "Groceries", MonthlyLimit: tt.limit, Spent: tt.spent}
			require.NoError(t, st.CreateCategory(ctx, "user-1", cat))

			require.NoError(t, engine.EvaluateCategory(ctx, "user-1", cat))

			alerts, err := st.ListAlerts(ctx, "user-1")
			require.NoError(t, err)

			if tt.wantNone {
				assert.Empty(t, alerts)
				return
			}
			require.Len(t, alerts, 1)
			assert.Equal(t, tt.wantSeverity, alerts[0].Severity)
			assert.Equal(t, cat.ID, alerts[0].CategoryID)
			assert.False(t, alerts[0].IsRead)
			assert.NotZero(t, alerts[0].Timestamp)
		})
	}
}

func TestEvaluateCategoryMessages(t *testing.T) {
	st := store.NewMemoryStore()
	engine := NewAlertEngine(st)
	ctx := context.Background()

	cat := &model.Category{Name: "Dining", MonthlyLimit: 2000, Spent: 2500}
	require.NoError(t, st.CreateCategory(ctx, "user-1", cat))
	require.NoError(t, engine.EvaluateCategory(ctx, "user-1", cat))

	alerts, err := st.ListAlerts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, fmt.Sprintf("Budget exceeded in Dining! You've spent %.2f of %.2f", 2500.0, 2000.0), alerts[0].Message)

	cat.Spent = 1700
	require.NoError(t, engine.EvaluateCategory(ctx, "user-1", cat))
	alerts, err = st.ListAlerts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "You're exceeding your budget in Dining. Consider reviewing your spending.", alerts[0].Message)
}

func TestEvaluateCategoryReplacesPriorAlerts(t *testing.T) {
	st := store.NewMemoryStore()
	engine := NewAlertEngine(st)
	ctx := context.Background()

	cat := &model.Category{Name: "Travel", MonthlyLimit: 1000, Spent: 1200}
	require.NoError(t, st.CreateCategory(ctx, "user-1", cat))

	// Repeated evaluation at the same level never accumulates alerts.
	require.NoError(t, engine.EvaluateCategory(ctx, "user-1", cat))
	require.NoError(t, engine.EvaluateCategory(ctx, "user-1", cat))
	alerts, err := st.ListAlerts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, model.AlertDanger, alerts[0].Severity)

	// Dropping back under the warning threshold clears the alert entirely.
	cat.Spent = 100
	require.NoError(t, engine.EvaluateCategory(ctx, "user-1", cat))
	alerts, err = st.ListAlerts(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestEvaluateCategoryLeavesOtherCategoriesAlone(t *testing.T) {
	st := store.NewMemoryStore()
	engine := NewAlertEngine(st)
	ctx := context.Background()

	over := &model.Category{Name: "Dining", MonthlyLimit: 100, Spent: 150}
	other := &model.Category{Name: "Travel", MonthlyLimit: 100, Spent: 150}
	require.NoError(t, st.CreateCategory(ctx, "user-1", over))
	require.NoError(t, st.CreateCategory(ctx, "user-1", other))
	require.NoError(t, engine.EvaluateCategory(ctx, "user-1", over))
	require.NoError(t, engine.EvaluateCategory(ctx, "user-1", other))

	// Re-evaluating one category must not disturb the other's alert.
	over.Spent = 10
	require.NoError(t, engine.EvaluateCategory(ctx, "user-1", over))

	alerts, err := st.ListAlerts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, other.ID, alerts[0].CategoryID)
}
