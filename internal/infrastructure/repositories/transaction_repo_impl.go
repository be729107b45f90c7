package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/infrastructure/models"
)

// TransactionRepository implements transaction status caching
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Upsert records or refreshes the last-known status for a hash
func (r *TransactionRepository) Upsert(ctx context.Context, record *entities.TransactionRecord) error {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	m := &models.Transaction{
		Hash:      record.Hash,
		Status:    record.Status,
		CreatedAt: createdAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hash"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(m).Error
}

// GetByHash gets the cached record for a hash
func (r *TransactionRepository) GetByHash(ctx context.Context, hash string) (*entities.TransactionRecord, error) {
	var m models.Transaction
	if err := r.db.WithContext(ctx).Where("hash = ?", hash).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.TransactionRecord{
		Hash:      m.Hash,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}, nil
}
