package ledger

import (
    "context"
    "sort"
    "sync"
)

// MemoryRepository is an in-process ledger used when no DSN is configured and
// in tests.
type MemoryRepository struct {
    mu  sync.RWMutex
    txs []Transaction
}

func NewMemoryRepository() *MemoryRepository { return &MemoryRepository{} }

func (r *MemoryRepository) Save(_ context.Context, tx *Transaction) error {
    fill(tx)
    r.mu.Lock()
    defer r.mu.Unlock()
    r.txs = append(r.txs, *tx)
    return nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]Transaction, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    out := make([]Transaction, 0, 8)
    for _, tx := range r.txs {
        if tx.UserID == userID {
            out = append(out, tx)
        }
    }
    sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
    return out, nil
}

func (r *MemoryRepository) MemoPending(_ context.Context, memo string) (bool, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    for _, tx := range r.txs {
        if tx.Memo == memo && tx.Status == StatusPending {
            return true, nil
        }
    }
    return false, nil
}
