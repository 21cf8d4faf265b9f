package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

// MockStoreRepository is an in-memory StoreRepository with overridable hooks.
type MockStoreRepository struct {
	mu     sync.RWMutex
	stores map[string]*domain.Store

	CreateFunc  func(ctx context.Context, store *domain.Store) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Store, error)
}

func NewMockStoreRepository() *MockStoreRepository {
	return &MockStoreRepository{stores: make(map[string]*domain.Store)}
}

func (m *MockStoreRepository) Create(ctx context.Context, store *domain.Store) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, store)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stores[store.ID] = store
	return nil
}

func (m *MockStoreRepository) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.stores[id]; ok {
		return s, nil
	}
	return nil, domain.ErrStoreNotFound
}

func (m *MockStoreRepository) List(ctx context.Context, limit, offset int) ([]*domain.Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Store, 0, len(m.stores))
	for _, s := range m.stores {
		out = append(out, s)
	}
	return out, nil
}

func (m *MockStoreRepository) Update(ctx context.Context, store *domain.Store) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stores[store.ID]; !ok {
		return domain.ErrStoreNotFound
	}
	m.stores[store.ID] = store
	return nil
}

func (m *MockStoreRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, id)
	return nil
}

// Add seeds a store.
func (m *MockStoreRepository) Add(store *domain.Store) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stores[store.ID] = store
}

// MockSavingsAccountRepository is an in-memory SavingsAccountRepository.
type MockSavingsAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.SavingsAccount

	CreateFunc  func(ctx context.Context, account *domain.SavingsAccount) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.SavingsAccount, error)
}

func NewMockSavingsAccountRepository() *MockSavingsAccountRepository {
	return &MockSavingsAccountRepository{accounts: make(map[string]*domain.SavingsAccount)}
}

func (m *MockSavingsAccountRepository) Create(ctx context.Context, account *domain.SavingsAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockSavingsAccountRepository) GetByID(ctx context.Context, id string) (*domain.SavingsAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, domain.ErrSavingsAccountNotFound
}

func (m *MockSavingsAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.SavingsAccount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.SavingsAccount, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (m *MockSavingsAccountRepository) Update(ctx context.Context, account *domain.SavingsAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; !ok {
		return domain.ErrSavingsAccountNotFound
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *MockSavingsAccountRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, id)
	return nil
}

// Add seeds a savings account.
func (m *MockSavingsAccountRepository) Add(account *domain.SavingsAccount) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

// MockTransactionRepository is an in-memory TransactionRepository.
type MockTransactionRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.TransactionRecord

	CreateFunc func(ctx context.Context, record *domain.TransactionRecord) error
	DeleteFunc func(ctx context.Context, id string) error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{records: make(map[string]*domain.TransactionRecord)}
}

func (m *MockTransactionRepository) Create(ctx context.Context, record *domain.TransactionRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.TransactionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) List(ctx context.Context, filter usecase.TransactionFilter) ([]*domain.TransactionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.TransactionRecord, 0, len(m.records))
	for _, r := range m.records {
		if filter.Account != nil && !r.Account.Equal(*filter.Account) {
			continue
		}
		if filter.Date != nil && !r.TransactionDate.Equal(*filter.Date) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *MockTransactionRepository) SumByDate(ctx context.Context, account domain.AccountRef, date time.Time) (domain.DailyTotals, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	totals := domain.DailyTotals{
		Income:   decimal.Zero,
		Expense:  decimal.Zero,
		Transfer: decimal.Zero,
	}
	for _, r := range m.records {
		if !r.Account.Equal(account) || !r.TransactionDate.Equal(date) {
			continue
		}
		switch r.Kind {
		case domain.KindIncome:
			totals.Income = totals.Income.Add(r.Amount)
		case domain.KindExpense:
			totals.Expense = totals.Expense.Add(r.Amount)
		case domain.KindTransfer:
			totals.Transfer = totals.Transfer.Add(r.Amount)
		}
	}
	return totals, nil
}

func (m *MockTransactionRepository) SumSigned(ctx context.Context, account domain.AccountRef) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, r := range m.records {
		if r.Account.Equal(account) {
			sum = sum.Add(r.SignedAmount())
		}
	}
	return sum, nil
}

// Put stores a record directly, bypassing CreateFunc.
func (m *MockTransactionRepository) Put(record *domain.TransactionRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
}

// All returns every stored record.
func (m *MockTransactionRepository) All() []*domain.TransactionRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.TransactionRecord, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	return out
}

// MockTransferRepository is an in-memory TransferRepository.
type MockTransferRepository struct {
	mu        sync.RWMutex
	transfers map[string]*domain.TransferRecord

	CreateFunc func(ctx context.Context, transfer *domain.TransferRecord) error
}

func NewMockTransferRepository() *MockTransferRepository {
	return &MockTransferRepository{transfers: make(map[string]*domain.TransferRecord)}
}

func (m *MockTransferRepository) Create(ctx context.Context, transfer *domain.TransferRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, transfer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transfers[transfer.ID] = transfer
	return nil
}

func (m *MockTransferRepository) GetByID(ctx context.Context, id string) (*domain.TransferRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.transfers[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTransferNotFound
}

func (m *MockTransferRepository) List(ctx context.Context, limit, offset int) ([]*domain.TransferRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.TransferRecord, 0, len(m.transfers))
	for _, t := range m.transfers {
		out = append(out, t)
	}
	return out, nil
}

// MockBalanceRepository is an in-memory BalanceRepository keyed by account.
type MockBalanceRepository struct {
	mu      sync.RWMutex
	entries map[domain.AccountRef]*domain.BalanceEntry

	ApplyDeltaFunc  func(ctx context.Context, account domain.AccountRef, delta decimal.Decimal, updatedAt time.Time) (*domain.BalanceEntry, error)
	SetAbsoluteFunc func(ctx context.Context, account domain.AccountRef, value decimal.Decimal, updatedAt time.Time) (*domain.BalanceEntry, error)
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{entries: make(map[domain.AccountRef]*domain.BalanceEntry)}
}

func (m *MockBalanceRepository) Get(ctx context.Context, account domain.AccountRef) (*domain.BalanceEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[account]; ok {
		return e, nil
	}
	return nil, domain.ErrBalanceNotFound
}

func (m *MockBalanceRepository) List(ctx context.Context) ([]*domain.BalanceEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.BalanceEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, nil
}

func (m *MockBalanceRepository) ApplyDelta(ctx context.Context, account domain.AccountRef, delta decimal.Decimal, updatedAt time.Time) (*domain.BalanceEntry, error) {
	if m.ApplyDeltaFunc != nil {
		return m.ApplyDeltaFunc(ctx, account, delta, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[account]
	if !ok {
		entry = &domain.BalanceEntry{Account: account, CurrentBalance: decimal.Zero}
		m.entries[account] = entry
	}
	entry.CurrentBalance = entry.CurrentBalance.Add(delta)
	entry.LastUpdated = updatedAt
	return entry, nil
}

func (m *MockBalanceRepository) SetAbsolute(ctx context.Context, account domain.AccountRef, value decimal.Decimal, updatedAt time.Time) (*domain.BalanceEntry, error) {
	if m.SetAbsoluteFunc != nil {
		return m.SetAbsoluteFunc(ctx, account, value, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := &domain.BalanceEntry{Account: account, CurrentBalance: value, LastUpdated: updatedAt}
	m.entries[account] = entry
	return entry, nil
}

// Seed sets an account's balance directly.
func (m *MockBalanceRepository) Seed(account domain.AccountRef, balance decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[account] = &domain.BalanceEntry{Account: account, CurrentBalance: balance}
}

type historyKey struct {
	account domain.AccountRef
	date    time.Time
}

// MockHistoryRepository is an in-memory HistoryRepository keyed by (account, date).
type MockHistoryRepository struct {
	mu      sync.RWMutex
	records map[historyKey]*domain.DailyHistoryRecord

	UpsertFunc func(ctx context.Context, record *domain.DailyHistoryRecord) error
}

func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{records: make(map[historyKey]*domain.DailyHistoryRecord)}
}

func (m *MockHistoryRepository) Upsert(ctx context.Context, record *domain.DailyHistoryRecord) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[historyKey{record.Account, record.Date}] = record
	return nil
}

func (m *MockHistoryRepository) GetByAccountDate(ctx context.Context, account domain.AccountRef, date time.Time) (*domain.DailyHistoryRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[historyKey{account, date}]; ok {
		return r, nil
	}
	return nil, domain.ErrHistoryNotFound
}

func (m *MockHistoryRepository) List(ctx context.Context, filter usecase.HistoryFilter) ([]*domain.DailyHistoryRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.DailyHistoryRecord, 0, len(m.records))
	for _, r := range m.records {
		if filter.Account != nil && !r.Account.Equal(*filter.Account) {
			continue
		}
		if filter.Date != nil && !r.Date.Equal(*filter.Date) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// MockUserRepository is an in-memory UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// MockIDGenerator generates sequential IDs.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%04d", m.counter)
}
