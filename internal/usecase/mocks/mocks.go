// Package mocks provides hand-written test doubles for the usecase
// ports. Each mock keeps simple in-memory state and allows overriding
// individual methods via XxxFunc fields.
package mocks

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iskender/paycore/internal/domain"
	"github.com/iskender/paycore/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account // keyed by account ID

	CreateFunc        func(ctx context.Context, account *domain.Account) error
	GetByIbanFunc     func(ctx context.Context, iban string) (*domain.Account, error)
	GetByIbanTxFunc   func(ctx context.Context, tx usecase.Transaction, iban string) (*domain.Account, error)
	GetAllByOwnerFunc func(ctx context.Context, ownerID string) ([]*domain.Account, error)
	SaveBalanceFunc   func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, expectedVersion int64, updatedAt time.Time) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Seed adds an account directly to the in-memory store.
func (m *MockAccountRepository) Seed(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

// Get returns a seeded account by ID.
func (m *MockAccountRepository) Get(id string) *domain.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accounts[id]
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByIban(ctx context.Context, iban string) (*domain.Account, error) {
	if m.GetByIbanFunc != nil {
		return m.GetByIbanFunc(ctx, iban)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, acc := range m.accounts {
		if acc.IBAN == iban {
			return acc, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIbanTx(ctx context.Context, tx usecase.Transaction, iban string) (*domain.Account, error) {
	if m.GetByIbanTxFunc != nil {
		return m.GetByIbanTxFunc(ctx, tx, iban)
	}
	return m.GetByIban(ctx, iban)
}

func (m *MockAccountRepository) GetAllByOwner(ctx context.Context, ownerID string) ([]*domain.Account, error) {
	if m.GetAllByOwnerFunc != nil {
		return m.GetAllByOwnerFunc(ctx, ownerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		if acc.OwnerID == ownerID {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) SaveBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, expectedVersion int64, updatedAt time.Time) error {
	if m.SaveBalanceFunc != nil {
		return m.SaveBalanceFunc(ctx, tx, id, balance, expectedVersion, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if acc.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	acc.Balance = balance
	acc.Version++
	acc.UpdatedAt = updatedAt
	return nil
}

// MockLedgerRepository is a mock implementation of LedgerRepository.
type MockLedgerRepository struct {
	mu      sync.RWMutex
	entries []*domain.LedgerEntry

	ExistsWithCorrelationPrefixFunc func(ctx context.Context, tx usecase.Transaction, prefix string) (bool, error)
	AppendFunc                      func(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error
	ListByAccountFunc               func(ctx context.Context, accountID string, limit, offset int) ([]*domain.LedgerEntry, error)
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{}
}

// Entries returns a copy of all appended entries.
func (m *MockLedgerRepository) Entries() []*domain.LedgerEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.LedgerEntry(nil), m.entries...)
}

func (m *MockLedgerRepository) ExistsWithCorrelationPrefix(ctx context.Context, tx usecase.Transaction, prefix string) (bool, error) {
	if m.ExistsWithCorrelationPrefixFunc != nil {
		return m.ExistsWithCorrelationPrefixFunc(ctx, tx, prefix)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if strings.HasPrefix(e.CorrelationID, prefix) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockLedgerRepository) Append(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.CorrelationID == entry.CorrelationID {
			return domain.ErrAlreadyProcessed
		}
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockLedgerRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.LedgerEntry, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.LedgerEntry
	for _, e := range m.entries {
		if e.AccountID == accountID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu       sync.RWMutex
	messages []*domain.OutboxMessage

	SaveFunc       func(ctx context.Context, tx usecase.Transaction, msg *domain.OutboxMessage) error
	FindUnsentFunc func(ctx context.Context, limit int) ([]*domain.OutboxMessage, error)
	MarkSentFunc   func(ctx context.Context, id string, sentAt time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

// Messages returns a copy of all saved messages.
func (m *MockOutboxRepository) Messages() []*domain.OutboxMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.OutboxMessage(nil), m.messages...)
}

func (m *MockOutboxRepository) Save(ctx context.Context, tx usecase.Transaction, msg *domain.OutboxMessage) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tx, msg)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *MockOutboxRepository) FindUnsent(ctx context.Context, limit int) ([]*domain.OutboxMessage, error) {
	if m.FindUnsentFunc != nil {
		return m.FindUnsentFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var unsent []*domain.OutboxMessage
	for _, msg := range m.messages {
		if !msg.Sent {
			unsent = append(unsent, msg)
			if len(unsent) == limit {
				break
			}
		}
	}
	return unsent, nil
}

func (m *MockOutboxRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	if m.MarkSentFunc != nil {
		return m.MarkSentFunc(ctx, id, sentAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.messages {
		if msg.ID == id {
			msg.Sent = true
			t := sentAt
			msg.SentAt = &t
			return nil
		}
	}
	return nil
}

// MockTransaction is a no-op transaction that records its outcome.
type MockTransaction struct {
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	mu           sync.Mutex
	transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.transactions = append(m.transactions, tx)
	return tx, nil
}

// Commits counts committed transactions.
func (m *MockTransactionManager) Commits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, tx := range m.transactions {
		if tx.Committed {
			n++
		}
	}
	return n
}

// MockIDGenerator generates deterministic sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

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
	m.next++
	return "id-" + strconv.Itoa(m.next)
}
