package store

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/budgetbuddy/backend/internal/model"
)

// FirestoreStore implements the Store interface using Firestore.
//
// Records live under a per-user namespace:
//
//	users/{uid}                  profile document
//	users/{uid}/transactions/{id}
//	users/{uid}/categories/{id}
//	users/{uid}/budgets/{yyyy-mm}
//	users/{uid}/alerts/{id}
//
// NOTE: Field names must match Go struct field names (PascalCase), as that is
// how Firestore serializes the model structs.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) userCollection(userID, name string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(userID).Collection(name)
}

// mapStoreErr translates a Firestore error into the store's error vocabulary.
func mapStoreErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Transaction operations

func (s *FirestoreStore) CreateTransaction(ctx context.Context, userID string, t *model.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	_, err := s.userCollection(userID, "transactions").Doc(t.ID).Set(ctx, t)
	return mapStoreErr("create transaction", err)
}

func (s *FirestoreStore) GetTransaction(ctx context.Context, userID, transactionID string) (*model.Transaction, error) {
	doc, err := s.userCollection(userID, "transactions").Doc(transactionID).Get(ctx)
	if err != nil {
		return nil, mapStoreErr("get transaction", err)
	}
	var t model.Transaction
	if err := doc.DataTo(&t); err != nil {
		return nil, fmt.Errorf("failed to parse transaction: %w", err)
	}
	return &t, nil
}

func (s *FirestoreStore) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	_, err := s.userCollection(userID, "transactions").Doc(transactionID).Delete(ctx)
	return mapStoreErr("delete transaction", err)
}

func (s *FirestoreStore) ListTransactions(ctx context.Context, userID string) ([]*model.Transaction, error) {
	docs, err := s.userCollection(userID, "transactions").
		OrderBy("Date", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, mapStoreErr("list transactions", err)
	}
	return decodeTransactions(docs), nil
}

func (s *FirestoreStore) DeleteAllTransactions(ctx context.Context, userID string) error {
	docs, err := s.userCollection(userID, "transactions").Documents(ctx).GetAll()
	if err != nil {
		return mapStoreErr("list transactions for delete", err)
	}
	for _, doc := range docs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return mapStoreErr("delete transaction", err)
		}
	}
	return nil
}

func (s *FirestoreStore) WatchTransactions(ctx context.Context, userID string) (<-chan []*model.Transaction, error) {
	query := s.userCollection(userID, "transactions").OrderBy("Date", firestore.Desc)
	ch := make(chan []*model.Transaction, 1)
	go func() {
		defer close(ch)
		snaps := query.Snapshots(ctx)
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					log.Printf("[FirestoreStore] transaction watch for %s ended: %v", userID, err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				log.Printf("[FirestoreStore] transaction watch read for %s failed: %v", userID, err)
				return
			}
			pushSnapshot(ch, decodeTransactions(docs))
		}
	}()
	return ch, nil
}

// decodeTransactions converts snapshot documents, skipping any that fail to
// deserialize so one corrupt row cannot poison an aggregate.
func decodeTransactions(docs []*firestore.DocumentSnapshot) []*model.Transaction {
	out := make([]*model.Transaction, 0, len(docs))
	for _, doc := range docs {
		var t model.Transaction
		if err := doc.DataTo(&t); err != nil {
			log.Printf("[FirestoreStore] skipping malformed transaction %s: %v", doc.Ref.ID, err)
			continue
		}
		out = append(out, &t)
	}
	return out
}

// Category operations

func (s *FirestoreStore) CreateCategory(ctx context.Context, userID string, c *model.Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	_, err := s.userCollection(userID, "categories").Doc(c.ID).Set(ctx, c)
	return mapStoreErr("create category", err)
}

func (s *FirestoreStore) GetCategory(ctx context.Context, userID, categoryID string) (*model.Category, error) {
	doc, err := s.userCollection(userID, "categories").Doc(categoryID).Get(ctx)
	if err != nil {
		return nil, mapStoreErr("get category", err)
	}
	var c model.Category
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}
	return &c, nil
}

func (s *FirestoreStore) UpdateCategory(ctx context.Context, userID string, c *model.Category) error {
	_, err := s.userCollection(userID, "categories").Doc(c.ID).Set(ctx, c)
	return mapStoreErr("update category", err)
}

func (s *FirestoreStore) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	_, err := s.userCollection(userID, "categories").Doc(categoryID).Delete(ctx)
	return mapStoreErr("delete category", err)
}

func (s *FirestoreStore) ListCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	docs, err := s.userCollection(userID, "categories").
		OrderBy("Name", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, mapStoreErr("list categories", err)
	}
	return decodeCategories(docs), nil
}

func (s *FirestoreStore) SetCategorySpent(ctx context.Context, userID, categoryID string, spent float64) error {
	_, err := s.userCollection(userID, "categories").Doc(categoryID).
		Update(ctx, []firestore.Update{{Path: "Spent", Value: spent}})
	return mapStoreErr("set category spent", err)
}

func (s *FirestoreStore) WatchCategories(ctx context.Context, userID string) (<-chan []*model.Category, error) {
	query := s.userCollection(userID, "categories").OrderBy("Name", firestore.Asc)
	ch := make(chan []*model.Category, 1)
	go func() {
		defer close(ch)
		snaps := query.Snapshots(ctx)
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					log.Printf("[FirestoreStore] category watch for %s ended: %v", userID, err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				log.Printf("[FirestoreStore] category watch read for %s failed: %v", userID, err)
				return
			}
			pushSnapshot(ch, decodeCategories(docs))
		}
	}()
	return ch, nil
}

func decodeCategories(docs []*firestore.DocumentSnapshot) []*model.Category {
	out := make([]*model.Category, 0, len(docs))
	for _, doc := range docs {
		var c model.Category
		if err := doc.DataTo(&c); err != nil {
			log.Printf("[FirestoreStore] skipping malformed category %s: %v", doc.Ref.ID, err)
			continue
		}
		out = append(out, &c)
	}
	return out
}

// Budget operations

func (s *FirestoreStore) SetBudget(ctx context.Context, userID string, b *model.Budget) error {
	b.ID = BudgetID(b.Month, b.Year)
	_, err := s.userCollection(userID, "budgets").Doc(b.ID).Set(ctx, b)
	return mapStoreErr("set budget", err)
}

func (s *FirestoreStore) GetBudget(ctx context.Context, userID string, month, year int) (*model.Budget, error) {
	doc, err := s.userCollection(userID, "budgets").Doc(BudgetID(month, year)).Get(ctx)
	if err != nil {
		return nil, mapStoreErr("get budget", err)
	}
	var b model.Budget
	if err := doc.DataTo(&b); err != nil {
		return nil, fmt.Errorf("failed to parse budget: %w", err)
	}
	return &b, nil
}

// Alert operations

func (s *FirestoreStore) CreateAlert(ctx context.Context, userID string, a *model.BudgetAlert) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	_, err := s.userCollection(userID, "alerts").Doc(a.ID).Set(ctx, a)
	return mapStoreErr("create alert", err)
}

func (s *FirestoreStore) DeleteAlert(ctx context.Context, userID, alertID string) error {
	_, err := s.userCollection(userID, "alerts").Doc(alertID).Delete(ctx)
	return mapStoreErr("delete alert", err)
}

func (s *FirestoreStore) ListAlerts(ctx context.Context, userID string) ([]*model.BudgetAlert, error) {
	docs, err := s.userCollection(userID, "alerts").
		OrderBy("Timestamp", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, mapStoreErr("list alerts", err)
	}
	return decodeAlerts(docs), nil
}

func (s *FirestoreStore) ListAlertsByCategory(ctx context.Context, userID, categoryID string) ([]*model.BudgetAlert, error) {
	docs, err := s.userCollection(userID, "alerts").
		Where("CategoryID", "==", categoryID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, mapStoreErr("list alerts by category", err)
	}
	return decodeAlerts(docs), nil
}

func (s *FirestoreStore) MarkAlertRead(ctx context.Context, userID, alertID string) error {
	_, err := s.userCollection(userID, "alerts").Doc(alertID).
		Update(ctx, []firestore.Update{{Path: "IsRead", Value: true}})
	return mapStoreErr("mark alert read", err)
}

func (s *FirestoreStore) WatchAlerts(ctx context.Context, userID string) (<-chan []*model.BudgetAlert, error) {
	query := s.userCollection(userID, "alerts").OrderBy("Timestamp", firestore.Desc)
	ch := make(chan []*model.BudgetAlert, 1)
	go func() {
		defer close(ch)
		snaps := query.Snapshots(ctx)
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					log.Printf("[FirestoreStore] alert watch for %s ended: %v", userID, err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				log.Printf("[FirestoreStore] alert watch read for %s failed: %v", userID, err)
				return
			}
			pushSnapshot(ch, decodeAlerts(docs))
		}
	}()
	return ch, nil
}

func decodeAlerts(docs []*firestore.DocumentSnapshot) []*model.BudgetAlert {
	out := make([]*model.BudgetAlert, 0, len(docs))
	for _, doc := range docs {
		var a model.BudgetAlert
		if err := doc.DataTo(&a); err != nil {
			log.Printf("[FirestoreStore] skipping malformed alert %s: %v", doc.Ref.ID, err)
			continue
		}
		out = append(out, &a)
	}
	return out
}

// User profile operations

func (s *FirestoreStore) SaveUserProfile(ctx context.Context, u *model.User) error {
	_, err := s.client.Collection("users").Doc(u.UID).Set(ctx, u)
	return mapStoreErr("save user profile", err)
}

func (s *FirestoreStore) GetUserProfile(ctx context.Context, userID string) (*model.User, error) {
	doc, err := s.client.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		return nil, mapStoreErr("get user profile", err)
	}
	var u model.User
	if err := doc.DataTo(&u); err != nil {
		return nil, fmt.Errorf("failed to parse user profile: %w", err)
	}
	return &u, nil
}
