package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/budgetbuddy/backend/internal/model"
)

// MemoryStore implements Store with in-memory storage. It is used for local
// development and tests. Records are namespaced by user ID, mirroring the
// users/{uid}/... layout of the Firestore store.
type MemoryStore struct {
	mu sync.RWMutex

	// userID -> recordID -> record
	transactions map[string]map[string]*model.Transaction
	categories   map[string]map[string]*model.Category
	budgets      map[string]map[string]*model.Budget
	alerts       map[string]map[string]*model.BudgetAlert
	users        map[string]*model.User

	txWatchers    map[string][]chan []*model.Transaction
	catWatchers   map[string][]chan []*model.Category
	alertWatchers map[string][]chan []*model.BudgetAlert
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions:  make(map[string]map[string]*model.Transaction),
		categories:    make(map[string]map[string]*model.Category),
		budgets:       make(map[string]map[string]*model.Budget),
		alerts:        make(map[string]map[string]*model.BudgetAlert),
		users:         make(map[string]*model.User),
		txWatchers:    make(map[string][]chan []*model.Transaction),
		catWatchers:   make(map[string][]chan []*model.Category),
		alertWatchers: make(map[string][]chan []*model.BudgetAlert),
	}
}

// Transaction operations

func (m *MemoryStore) CreateTransaction(ctx context.Context, userID string, t *model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if m.transactions[userID] == nil {
		m.transactions[userID] = make(map[string]*model.Transaction)
	}
	cp := *t
	m.transactions[userID][t.ID] = &cp
	m.notifyTransactions(userID)
	return nil
}

func (m *MemoryStore) GetTransaction(ctx context.Context, userID, transactionID string) (*model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.transactions[userID][transactionID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *MemoryStore) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.transactions[userID], transactionID)
	m.notifyTransactions(userID)
	return nil
}

func (m *MemoryStore) ListTransactions(ctx context.Context, userID string) ([]*model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.transactionSnapshot(userID), nil
}

func (m *MemoryStore) DeleteAllTransactions(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.transactions, userID)
	m.notifyTransactions(userID)
	return nil
}

func (m *MemoryStore) WatchTransactions(ctx context.Context, userID string) (<-chan []*model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan []*model.Transaction, 1)
	ch <- m.transactionSnapshot(userID)
	m.txWatchers[userID] = append(m.txWatchers[userID], ch)

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		m.txWatchers[userID] = removeWatcher(m.txWatchers[userID], ch)
		close(ch)
	}()
	return ch, nil
}

// transactionSnapshot returns the user's transactions sorted by date
// descending. Callers must hold m.mu.
func (m *MemoryStore) transactionSnapshot(userID string) []*model.Transaction {
	out := make([]*model.Transaction, 0, len(m.transactions[userID]))
	for _, t := range m.transactions[userID] {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *MemoryStore) notifyTransactions(userID string) {
	if len(m.txWatchers[userID]) == 0 {
		return
	}
	snap := m.transactionSnapshot(userID)
	for _, ch := range m.txWatchers[userID] {
		pushSnapshot(ch, snap)
	}
}

// Category operations

func (m *MemoryStore) CreateCategory(ctx context.Context, userID string, c *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if m.categories[userID] == nil {
		m.categories[userID] = make(map[string]*model.Category)
	}
	cp := *c
	m.categories[userID][c.ID] = &cp
	m.notifyCategories(userID)
	return nil
}

func (m *MemoryStore) GetCategory(ctx context.Context, userID, categoryID string) (*model.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.categories[userID][categoryID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *MemoryStore) UpdateCategory(ctx context.Context, userID string, c *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.categories[userID][c.ID]; !ok {
		return ErrNotFound
	}
	cp := *c
	m.categories[userID][c.ID] = &cp
	m.notifyCategories(userID)
	return nil
}

func (m *MemoryStore) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.categories[userID], categoryID)
	m.notifyCategories(userID)
	return nil
}

func (m *MemoryStore) ListCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.categorySnapshot(userID), nil
}

func (m *MemoryStore) SetCategorySpent(ctx context.Context, userID, categoryID string, spent float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.categories[userID][categoryID]
	if !ok {
		return ErrNotFound
	}
	c.Spent = spent
	m.notifyCategories(userID)
	return nil
}

func (m *MemoryStore) WatchCategories(ctx context.Context, userID string) (<-chan []*model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan []*model.Category, 1)
	ch <- m.categorySnapshot(userID)
	m.catWatchers[userID] = append(m.catWatchers[userID], ch)

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		m.catWatchers[userID] = removeWatcher(m.catWatchers[userID], ch)
		close(ch)
	}()
	return ch, nil
}

// categorySnapshot returns the user's categories sorted by name. Callers must
// hold m.mu.
func (m *MemoryStore) categorySnapshot(userID string) []*model.Category {
	out := make([]*model.Category, 0, len(m.categories[userID]))
	for _, c := range m.categories[userID] {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (m *MemoryStore) notifyCategories(userID string) {
	if len(m.catWatchers[userID]) == 0 {
		return
	}
	snap := m.categorySnapshot(userID)
	for _, ch := range m.catWatchers[userID] {
		pushSnapshot(ch, snap)
	}
}

// Budget operations

func (m *MemoryStore) SetBudget(ctx context.Context, userID string, b *model.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.budgets[userID] == nil {
		m.budgets[userID] = make(map[string]*model.Budget)
	}
	b.ID = BudgetID(b.Month, b.Year)
	cp := *b
	m.budgets[userID][b.ID] = &cp
	return nil
}

func (m *MemoryStore) GetBudget(ctx context.Context, userID string, month, year int) (*model.Budget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.budgets[userID][BudgetID(month, year)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

// Alert operations

func (m *MemoryStore) CreateAlert(ctx context.Context, userID string, a *model.BudgetAlert) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if m.alerts[userID] == nil {
		m.alerts[userID] = make(map[string]*model.BudgetAlert)
	}
	cp := *a
	m.alerts[userID][a.ID] = &cp
	m.notifyAlerts(userID)
	return nil
}

func (m *MemoryStore) DeleteAlert(ctx context.Context, userID, alertID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.alerts[userID], alertID)
	m.notifyAlerts(userID)
	return nil
}

func (m *MemoryStore) ListAlerts(ctx context.Context, userID string) ([]*model.BudgetAlert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.alertSnapshot(userID), nil
}

func (m *MemoryStore) ListAlertsByCategory(ctx context.Context, userID, categoryID string) ([]*model.BudgetAlert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*model.BudgetAlert
	for _, a := range m.alertSnapshot(userID) {
		if a.CategoryID == categoryID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryStore) MarkAlertRead(ctx context.Context, userID, alertID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.alerts[userID][alertID]
	if !ok {
		return ErrNotFound
	}
	a.IsRead = true
	m.notifyAlerts(userID)
	return nil
}

func (m *MemoryStore) WatchAlerts(ctx context.Context, userID string) (<-chan []*model.BudgetAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan []*model.BudgetAlert, 1)
	ch <- m.alertSnapshot(userID)
	m.alertWatchers[userID] = append(m.alertWatchers[userID], ch)

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		m.alertWatchers[userID] = removeWatcher(m.alertWatchers[userID], ch)
		close(ch)
	}()
	return ch, nil
}

// alertSnapshot returns the user's alerts sorted by timestamp descending.
// Callers must hold m.mu.
func (m *MemoryStore) alertSnapshot(userID string) []*model.BudgetAlert {
	out := make([]*model.BudgetAlert, 0, len(m.alerts[userID]))
	for _, a := range m.alerts[userID] {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp > out[j].Timestamp
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *MemoryStore) notifyAlerts(userID string) {
	if len(m.alertWatchers[userID]) == 0 {
		return
	}
	snap := m.alertSnapshot(userID)
	for _, ch := range m.alertWatchers[userID] {
		pushSnapshot(ch, snap)
	}
}

// User profile operations

func (m *MemoryStore) SaveUserProfile(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *u
	m.users[u.UID] = &cp
	return nil
}

func (m *MemoryStore) GetUserProfile(ctx context.Context, userID string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// pushSnapshot delivers a snapshot to a watcher channel, conflating with any
// undelivered previous snapshot. Senders are serialized by m.mu, so the send
// after a drain cannot block on a one-slot channel.
func pushSnapshot[T any](ch chan []T, snap []T) {
	select {
	case ch <- snap:
	default:
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func removeWatcher[T any](watchers []chan []T, ch chan []T) []chan []T {
	for i, w := range watchers {
		if w == ch {
			return append(watchers[:i], watchers[i+1:]...)
		}
	}
	return watchers
}
