package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
)

func TestTransactionRepository_UpsertRefreshesStatus(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entities.TransactionRecord{Hash: "0xabc", Status: entities.TxStatusSubmitted}))
	require.NoError(t, repo.Upsert(ctx, &entities.TransactionRecord{Hash: "0xabc", Status: "ACCEPTED_ON_L2"}))

	got, err := repo.GetByHash(ctx, "0xabc")
	require.NoError(t, err)
	require.Equal(t, "ACCEPTED_ON_L2", got.Status)

	var count int64
	require.NoError(t, db.Table("transactions").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestTransactionRepository_GetMissing(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)

	_, err := repo.GetByHash(context.Background(), "0xmissing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
