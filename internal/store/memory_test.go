package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetbuddy/backend/internal/model"
)

func TestMemoryStoreTransactionCRUD(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	tx := &model.Transaction{Type: model.TransactionExpense, Amount: 42, CategoryName: "Groceries", Date: 100}
	require.NoError(t, m.CreateTransaction(ctx, "user-1", tx))
	assert.NotEmpty(t, tx.ID)

	got, err := m.GetTransaction(ctx, "user-1", tx.ID)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got.Amount)

	// Mutating the returned copy must not leak into the store.
	got.Amount = 999
	again, err := m.GetTransaction(ctx, "user-1", tx.ID)
	require.NoError(t, err)
	assert.Equal(t, 42.0, again.Amount)

	require.NoError(t, m.DeleteTransaction(ctx, "user-1", tx.ID))
	_, err = m.GetTransaction(ctx, "user-1", tx.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListTransactionsOrder(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.CreateTransaction(ctx, "user-1", &model.Transaction{ID: "a", Date: 100}))
	require.NoError(t, m.CreateTransaction(ctx, "user-1", &model.Transaction{ID: "b", Date: 300}))
	require.NoError(t, m.CreateTransaction(ctx, "user-1", &model.Transaction{ID: "c", Date: 200}))

	txs, err := m.ListTransactions(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, "b", txs[0].ID)
	assert.Equal(t, "c", txs[1].ID)
	assert.Equal(t, "a", txs[2].ID)
}

func TestMemoryStoreDeleteAllTransactions(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.CreateTransaction(ctx, "user-1", &model.Transaction{ID: "a"}))
	require.NoError(t, m.CreateTransaction(ctx, "user-2", &model.Transaction{ID: "b"}))

	require.NoError(t, m.DeleteAllTransactions(ctx, "user-1"))

	txs, err := m.ListTransactions(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, txs)

	other, err := m.ListTransactions(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestMemoryStoreCategorySpent(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	cat := &model.Category{Name: "Dining", MonthlyLimit: 500}
	require.NoError(t, m.CreateCategory(ctx, "user-1", cat))

	require.NoError(t, m.SetCategorySpent(ctx, "user-1", cat.ID, 123.45))
	got, err := m.GetCategory(ctx, "user-1", cat.ID)
	require.NoError(t, err)
	assert.Equal(t, 123.45, got.Spent)

	assert.ErrorIs(t, m.SetCategorySpent(ctx, "user-1", "missing", 1), ErrNotFound)
}

func TestMemoryStoreBudgetDeterministicID(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	b := &model.Budget{TotalMonthlyBudget: 1000, Month: 0, Year: 2026}
	require.NoError(t, m.SetBudget(ctx, "user-1", b))
	assert.Equal(t, "2026-01", b.ID)

	// Same month and year replaces the record.
	require.NoError(t, m.SetBudget(ctx, "user-1", &model.Budget{TotalMonthlyBudget: 2000, Month: 0, Year: 2026}))
	got, err := m.GetBudget(ctx, "user-1", 0, 2026)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, got.TotalMonthlyBudget)

	_, err = m.GetBudget(ctx, "user-1", 5, 2026)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreAlertsByCategory(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.CreateAlert(ctx, "user-1", &model.BudgetAlert{ID: "a1", CategoryID: "cat-1", Timestamp: 1}))
	require.NoError(t, m.CreateAlert(ctx, "user-1", &model.BudgetAlert{ID: "a2", CategoryID: "cat-2", Timestamp: 2}))
	require.NoError(t, m.CreateAlert(ctx, "user-1", &model.BudgetAlert{ID: "a3", CategoryID: "cat-1", Timestamp: 3}))

	forCat, err := m.ListAlertsByCategory(ctx, "user-1", "cat-1")
	require.NoError(t, err)
	require.Len(t, forCat, 2)
	assert.Equal(t, "a3", forCat[0].ID)
	assert.Equal(t, "a1", forCat[1].ID)

	require.NoError(t, m.MarkAlertRead(ctx, "user-1", "a2"))
	all, err := m.ListAlerts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, a := range all {
		if a.ID == "a2" {
			assert.True(t, a.IsRead)
		} else {
			assert.False(t, a.IsRead)
		}
	}

	assert.ErrorIs(t, m.MarkAlertRead(ctx, "user-1", "missing"), ErrNotFound)
}

func TestMemoryStoreWatchTransactions(t *testing.T) {
	m := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := m.WatchTransactions(ctx, "user-1")
	require.NoError(t, err)

	// Initial snapshot arrives immediately.
	select {
	case snap := <-ch:
		assert.Empty(t, snap)
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot")
	}

	require.NoError(t, m.CreateTransaction(context.Background(), "user-1", &model.Transaction{ID: "a", Date: 1}))
	select {
	case snap := <-ch:
		require.Len(t, snap, 1)
		assert.Equal(t, "a", snap[0].ID)
	case <-time.After(time.Second):
		t.Fatal("no snapshot after create")
	}
}

func TestMemoryStoreWatchConflatesToLatest(t *testing.T) {
	m := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := m.WatchTransactions(ctx, "user-1")
	require.NoError(t, err)

	// A slow consumer that never drained the initial snapshot still sees the
	// newest state, not the backlog.
	require.NoError(t, m.CreateTransaction(context.Background(), "user-1", &model.Transaction{ID: "a", Date: 1}))
	require.NoError(t, m.CreateTransaction(context.Background(), "user-1", &model.Transaction{ID: "b", Date: 2}))

	select {
	case snap := <-ch:
		require.Len(t, snap, 2)
	case <-time.After(time.Second):
		t.Fatal("no snapshot")
	}
}

func TestMemoryStoreWatchUnsubscribeOnCancel(t *testing.T) {
	m := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := m.WatchCategories(ctx, "user-1")
	require.NoError(t, err)
	<-ch // initial snapshot

	cancel()

	// The channel closes once the watcher is deregistered.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestMemoryStoreUserProfile(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	_, err := m.GetUserProfile(ctx, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.SaveUserProfile(ctx, &model.User{UID: "user-1", Email: "a@b.c"}))
	got, err := m.GetUserProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got.Email)
}
