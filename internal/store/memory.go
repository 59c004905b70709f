package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/confidential-vault/models"
)

// MemoryStore keeps accounts in process memory. Row locking is left to the
// caller; the ledger host serialises invocations that share writable accounts.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[models.AccountID]models.Account
}

// NewMemoryStore returns an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[models.AccountID]models.Account)}
}

func (m *MemoryStore) Begin(ctx context.Context) (AccountTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &memoryTx{store: m, staged: make(map[models.AccountID]models.Account)}, nil
}

func (m *MemoryStore) GetAccount(ctx context.Context, key models.AccountID) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.get(key), nil
}

// Classify implements [ErrorClassificator]. Nothing in memory is transient.
func (m *MemoryStore) Classify(error) ErrorClassification {
	return NonRetryable
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) get(key models.AccountID) models.Account {
	acc, ok := m.accounts[key]
	if !ok {
		return models.Account{Key: key}
	}
	return acc.Clone()
}

type memoryTx struct {
	store  *MemoryStore
	staged map[models.AccountID]models.Account
	done   bool
}

func (t *memoryTx) GetForUpdate(ctx context.Context, key models.AccountID) (models.Account, error) {
	if t.done {
		return models.Account{}, ErrTxDone
	}
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}
	if acc, ok := t.staged[key]; ok {
		return acc.Clone(), nil
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return t.store.get(key), nil
}

func (t *memoryTx) Put(ctx context.Context, acc models.Account) error {
	if t.done {
		return ErrTxDone
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	t.staged[acc.Key] = acc.Clone()
	return nil
}

func (t *memoryTx) Commit() error {
	if t.done {
		return ErrTxDone
	}
	t.done = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for key, acc := range t.staged {
		if acc.Exists() {
			t.store.accounts[key] = acc
		} else {
			delete(t.store.accounts, key)
		}
	}
	return nil
}

func (t *memoryTx) Rollback() error {
	t.done = true
	t.staged = nil
	return nil
}
