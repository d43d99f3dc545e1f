package ledger

import (
    "context"
    "fmt"
    "time"

    "github.com/google/uuid"
    "gorm.io/driver/postgres"
    "gorm.io/gorm"
)

// PostgresRepository stores transactions in Postgres via gorm.
type PostgresRepository struct {
    db *gorm.DB
}

func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
    db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
    if err != nil {
        return nil, fmt.Errorf("open ledger db: %w", err)
    }
    if err := db.AutoMigrate(&Transaction{}); err != nil {
        return nil, fmt.Errorf("migrate ledger db: %w", err)
    }
    return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Save(ctx context.Context, tx *Transaction) error {
    fill(tx)
    return r.db.WithContext(ctx).Create(tx).Error
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Transaction, error) {
    var txs []Transaction
    err := r.db.WithContext(ctx).
        Where("user_id = ?", userID).
        Order("created_at DESC").
        Find(&txs).Error
    return txs, err
}

func (r *PostgresRepository) MemoPending(ctx context.Context, memo string) (bool, error) {
    var count int64
    err := r.db.WithContext(ctx).
        Model(&Transaction{}).
        Where("memo = ? AND status = ?", memo, StatusPending).
        Count(&count).Error
    return count > 0, err
}

func fill(tx *Transaction) {
    if tx.ID == "" { tx.ID = uuid.NewString() }
    if tx.Status == "" { tx.Status = StatusPending }
    if tx.CreatedAt.IsZero() { tx.CreatedAt = time.Now().UTC() }
}
