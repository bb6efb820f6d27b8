package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budgetbuddy/backend/internal/auth"
	"github.com/budgetbuddy/backend/internal/model"
	"github.com/budgetbuddy/backend/internal/store"
)

// testContext creates a context with authenticated user claims for testing
func testContext(userID string) context.Context {
	return auth.WithUserClaims(context.Background(), &auth.UserClaims{
		UID:         userID,
		Email:       userID + "@test.com",
		DisplayName: "Test User",
		Verified:    true,
	})
}

func newTestService(t *testing.T) (*FinanceService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewFinanceService(st), st
}

func TestAddTransaction(t *testing.T) {
	tests := []struct {
		name     string
		tx       *model.Transaction
		wantCode ErrorCode
	}{
		{
			name: "valid expense",
			tx:   &model.Transaction{Type: model.TransactionExpense, Amount: 50, CategoryName: "Groceries"},
		},
		{
			name: "valid income",
			tx:   &model.Transaction{Type: model.TransactionIncome, Amount: 5000, CategoryName: "Salary"},
		},
		{
			name:     "negative amount",
			tx:       &model.Transaction{Type: model.TransactionExpense, Amount: -10, CategoryName: "Groceries"},
			wantCode: CodeInvalidArgument,
		},
		{
			name:     "unknown type",
			tx:       &model.Transaction{Type: "transfer", Amount: 10, CategoryName: "Groceries"},
			wantCode: CodeInvalidArgument,
		},
		{
			name:     "missing category",
			tx:       &model.Transaction{Type: model.TransactionExpense, Amount: 10},
			wantCode: CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			ctx := testContext("user-1")

			created, err := svc.AddTransaction(ctx, tt.tx)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.NotZero(t, created.Date)
			assert.Equal(t, "user-1", created.UserID)
		})
	}
}

func TestAddTransactionUnauthenticated(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddTransaction(context.Background(), &model.Transaction{
		Type: model.TransactionExpense, Amount: 10, CategoryName: "Groceries",
	})
	require.Error(t, err)
	assert.Equal(t, CodeUnauthenticated, CodeOf(err))
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestAddTransactionResolvesCategoryName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	cat, err := svc.AddCategory(ctx, &model.Category{Name: "Groceries", MonthlyLimit: 1000})
	require.NoError(t, err)

	created, err := svc.AddTransaction(ctx, &model.Transaction{
		Type: model.TransactionExpense, Amount: 120, CategoryID: cat.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", created.CategoryName)

	got, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 120.0, got[0].Spent)
}

func TestAddTransactionUnknownCategoryID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	_, err := svc.AddTransaction(ctx, &model.Transaction{
		Type: model.TransactionExpense, Amount: 10, CategoryID: "missing",
	})
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestAddTransactionStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockStore(ctrl)
	svc := NewFinanceService(mockStore)
	ctx := testContext("user-1")

	mockStore.EXPECT().
		CreateTransaction(gomock.Any(), "user-1", gomock.Any()).
		Return(errors.New("firestore unavailable"))

	_, err := svc.AddTransaction(ctx, &model.Transaction{
		Type: model.TransactionExpense, Amount: 10, CategoryName: "Groceries",
	})
	require.Error(t, err)
	assert.Equal(t, CodeStoreError, CodeOf(err))
}

func TestDeleteTransactionRecomputes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	cat, err := svc.AddCategory(ctx, &model.Category{Name: "Dining", MonthlyLimit: 1000})
	require.NoError(t, err)

	tx1, err := svc.AddTransaction(ctx, &model.Transaction{Type: model.TransactionExpense, Amount: 300, CategoryID: cat.ID})
	require.NoError(t, err)
	_, err = svc.AddTransaction(ctx, &model.Transaction{Type: model.TransactionExpense, Amount: 200, CategoryID: cat.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTransaction(ctx, tx1.ID))

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, 200.0, cats[0].Spent)
}

func TestDeleteTransactionNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	err := svc.DeleteTransaction(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestUpdateCategoryPreservesSpent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	cat, err := svc.AddCategory(ctx, &model.Category{Name: "Dining", MonthlyLimit: 1000})
	require.NoError(t, err)
	_, err = svc.AddTransaction(ctx, &model.Transaction{Type: model.TransactionExpense, Amount: 900, CategoryID: cat.ID})
	require.NoError(t, err)

	// A client update carrying a stale or zero Spent must not clobber the
	// derived total.
	updated, err := svc.UpdateCategory(ctx, &model.Category{
		ID: cat.ID, Name: "Dining Out", MonthlyLimit: 1000, Spent: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 900.0, updated.Spent)
}

func TestUpdateCategoryReevaluatesAlerts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	cat, err := svc.AddCategory(ctx, &model.Category{Name: "Dining", MonthlyLimit: 1000})
	require.NoError(t, err)
	_, err = svc.AddTransaction(ctx, &model.Transaction{Type: model.TransactionExpense, Amount: 900, CategoryID: cat.ID})
	require.NoError(t, err)

	alerts, err := svc.ListAlerts(ctx, false)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, model.AlertWarning, alerts[0].Severity)

	// Raising the limit puts spend back under the warning threshold.
	_, err = svc.UpdateCategory(ctx, &model.Category{ID: cat.ID, Name: "Dining", MonthlyLimit: 2000})
	require.NoError(t, err)

	alerts, err = svc.ListAlerts(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestDeleteCategoryCascadesAlerts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	cat, err := svc.AddCategory(ctx, &model.Category{Name: "Dining", MonthlyLimit: 100})
	require.NoError(t, err)
	_, err = svc.AddTransaction(ctx, &model.Transaction{Type: model.TransactionExpense, Amount: 150, CategoryID: cat.ID})
	require.NoError(t, err)

	alerts, err := svc.ListAlerts(ctx, false)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	require.NoError(t, svc.DeleteCategory(ctx, cat.ID))

	alerts, err = svc.ListAlerts(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestInitializeDefaultCategories(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	require.NoError(t, svc.InitializeDefaultCategories(ctx))
	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 8)

	names := make(map[string]bool)
	for _, c := range cats {
		names[c.Name] = true
		assert.NotEmpty(t, c.ID)
		assert.Zero(t, c.Spent)
		assert.Equal(t, "user-1", c.UserID)
	}
	assert.True(t, names["Food & Dining"])
	assert.True(t, names["Others"])

	// Seeding is a no-op once any categories exist.
	require.NoError(t, svc.InitializeDefaultCategories(ctx))
	cats, err = svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 8)
}

func TestSetBudget(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	month, year := model.CurrentMonthYear()
	_, err := svc.SetBudget(ctx, &model.Budget{TotalMonthlyBudget: 20000, Month: month, Year: year})
	require.NoError(t, err)

	// Setting the same month again overwrites rather than duplicating.
	saved, err := svc.SetBudget(ctx, &model.Budget{TotalMonthlyBudget: 25000, Month: month, Year: year})
	require.NoError(t, err)
	assert.Equal(t, store.BudgetID(month, year), saved.ID)

	got, err := svc.CurrentBudget(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 25000.0, got.TotalMonthlyBudget)
}

func TestSetBudgetValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	_, err := svc.SetBudget(ctx, &model.Budget{TotalMonthlyBudget: 100, Month: 12, Year: 2026})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))

	_, err = svc.SetBudget(ctx, &model.Budget{TotalMonthlyBudget: -1, Month: 3, Year: 2026})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))
}

func TestCurrentBudgetUnset(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	got, err := svc.CurrentBudget(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAlertsUnreadFilter(t *testing.T) {
	svc, st := newTestService(t)
	ctx := testContext("user-1")

	cat, err := svc.AddCategory(ctx, &model.Category{Name: "Dining", MonthlyLimit: 100})
	require.NoError(t, err)
	_, err = svc.AddTransaction(ctx, &model.Transaction{Type: model.TransactionExpense, Amount: 150, CategoryID: cat.ID})
	require.NoError(t, err)

	all, err := svc.ListAlerts(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, svc.MarkAlertRead(ctx, all[0].ID))

	unread, err := svc.ListAlerts(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err = svc.ListAlerts(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsRead)

	// Stored record agrees with the service view.
	stored, err := st.ListAlerts(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].IsRead)
}

func TestUserProfileRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	require.NoError(t, svc.SaveUserProfile(ctx, &model.User{Email: "someone@test.com", DisplayName: "Someone"}))

	got, err := svc.UserProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UID)
	assert.Equal(t, "someone@test.com", got.Email)
	assert.NotZero(t, got.CreatedAt)
	assert.NotZero(t, got.LastLoginAt)
}

func TestConfirmSMSTransaction(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	cat, err := svc.AddCategory(ctx, &model.Category{Name: "Food & Dining", MonthlyLimit: 3000})
	require.NoError(t, err)

	created, err := svc.ConfirmSMSTransaction(ctx, &model.SMSTransaction{
		Amount:     450,
		Type:       model.TransactionExpense,
		Merchant:   "SWIGGY 1234567890",
		Timestamp:  1700000000000,
		RawMessage: "Rs.450 debited at SWIGGY",
		BankName:   "HDFC Bank",
	}, cat.ID)
	require.NoError(t, err)

	assert.Equal(t, 450.0, created.Amount)
	assert.Equal(t, "Swiggy", created.Merchant)
	assert.Equal(t, "Food & Dining", created.CategoryName)
	assert.Equal(t, int64(1700000000000), created.Date)
	assert.True(t, created.AutoDetected)
	assert.Equal(t, "HDFC Bank", created.BankAccountID)

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, 450.0, cats[0].Spent)
}

func TestConfirmSMSTransactionValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	_, err := svc.ConfirmSMSTransaction(ctx, nil, "cat-1")
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))

	_, err = svc.ConfirmSMSTransaction(ctx, &model.SMSTransaction{Amount: 10, Type: model.TransactionExpense}, "")
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))
}

func TestParseSMSService(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := testContext("user-1")

	tx, suggested, err := svc.ParseSMS(ctx, "Rs.450 debited from A/c at SWIGGY via UPI", "VM-HDFCBK")
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, 450.0, tx.Amount)
	assert.Equal(t, "Food & Dining", suggested)

	// Non-bank messages yield no candidate and no error.
	tx, suggested, err = svc.ParseSMS(ctx, "Your OTP is 482913", "VM-HDFCBK")
	require.NoError(t, err)
	assert.Nil(t, tx)
	assert.Empty(t, suggested)

	_, _, err = svc.ParseSMS(ctx, "", "VM-HDFCBK")
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))
}
