// Package ledger persists finalized conversion transactions. The quoting core
// never touches it; only the HTTP layer does.
package ledger

import (
    "context"
    "fmt"
    "time"

    "nairaquote/internal/memo"
)

const StatusPending = "PENDING"

// Transaction is one finalized conversion record.
type Transaction struct {
    ID           string    `gorm:"primaryKey" json:"id"`
    UserID       string    `gorm:"index;not null" json:"userId"`
    Type         string    `gorm:"not null" json:"type"`
    AmountCrypto float64   `json:"amountCrypto"`
    AmountFiat   float64   `json:"amountFiat"`
    Currency     string    `json:"currency"`
    Status       string    `gorm:"index;default:PENDING" json:"status"`
    Memo         string    `gorm:"index" json:"memo"`
    TxHash       string    `json:"txHash,omitempty"`
    CreatedAt    time.Time `json:"createdAt"`
}

type Repository interface {
    Save(ctx context.Context, tx *Transaction) error
    ListByUser(ctx context.Context, userID string) ([]Transaction, error)
    // MemoPending reports whether a PENDING transaction already claims memo.
    MemoPending(ctx context.Context, memo string) (bool, error)
}

// UniqueMemo draws memo tokens until one is free of collisions with pending
// deposits, with a bounded number of attempts.
func UniqueMemo(ctx context.Context, repo Repository, attempts int) (string, error) {
    if attempts <= 0 { attempts = 10 }
    for i := 0; i < attempts; i++ {
        m := memo.New()
        taken, err := repo.MemoPending(ctx, m)
        if err != nil {
            return "", err
        }
        if !taken {
            return m, nil
        }
    }
    return "", fmt.Errorf("no free memo after %d attempts", attempts)
}
