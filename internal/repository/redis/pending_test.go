package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresmdz/rifa-go/internal/domain"
	"github.com/andresmdz/rifa-go/internal/repository"
)

func testPendingSale() domain.PendingSale {
	return domain.PendingSale{
		ID:        uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e"),
		RaffleID:  uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7"),
		Numbers:   []int{3, 7, 11},
		Total:     decimal.NewFromInt(45),
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPendingSaleStorePutAndGet(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewPendingSaleStore(rdb, time.Hour)

	sale := testPendingSale()
	payload, err := json.Marshal(sale)
	require.NoError(t, err)

	key := KeyPendingSale(sale.ID.String())
	mock.ExpectSet(key, payload, time.Hour).SetVal("OK")
	mock.ExpectGet(key).SetVal(string(payload))

	require.NoError(t, store.Put(context.Background(), sale))

	got, err := store.Get(context.Background(), sale.ID.String())
	require.NoError(t, err)
	assert.Equal(t, sale.ID, got.ID)
	assert.Equal(t, sale.Numbers, got.Numbers)
	assert.True(t, got.Total.Equal(sale.Total))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingSaleStoreGetMissing(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewPendingSaleStore(rdb, time.Hour)

	id := uuid.NewString()
	mock.ExpectGet(KeyPendingSale(id)).RedisNil()

	_, err := store.Get(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingSaleStoreDelete(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewPendingSaleStore(rdb, time.Hour)

	id := uuid.NewString()
	mock.ExpectDel(KeyPendingSale(id)).SetVal(1)

	assert.NoError(t, store.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingSaleStoreDefaultTTL(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewPendingSaleStore(rdb, 0)

	sale := testPendingSale()
	payload, err := json.Marshal(sale)
	require.NoError(t, err)

	mock.ExpectSet(KeyPendingSale(sale.ID.String()), payload, 24*time.Hour).SetVal("OK")

	assert.NoError(t, store.Put(context.Background(), sale))
	assert.NoError(t, mock.ExpectationsWereMet())
}
