package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStoreLockThenSave(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewIdempotencyStore(rdb, time.Hour)

	key := KeyIdemSale("raffle-1", "client-key")
	mock.ExpectSetNX(key, "LOCK", 30*time.Second).SetVal(true)
	mock.ExpectSet(key, `RES:{"numbers":[3]}`, time.Hour).SetVal("OK")
	mock.ExpectGet(key).SetVal(`RES:{"numbers":[3]}`)

	locked, err := store.AcquireLock(context.Background(), key, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, locked)

	require.NoError(t, store.SaveResult(context.Background(), key, `{"numbers":[3]}`))

	payload, ok, err := store.GetResult(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"numbers":[3]}`, payload)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyStoreLockIsNotAResult(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewIdempotencyStore(rdb, time.Hour)

	key := KeyIdemSale("raffle-1", "client-key")
	mock.ExpectGet(key).SetVal("LOCK")
	mock.ExpectGet(key).SetVal("LOCK")

	_, ok, err := store.GetResult(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, ok)

	locked, err := store.IsLocked(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, locked)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyStoreMissingKey(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewIdempotencyStore(rdb, time.Hour)

	key := KeyIdemSale("raffle-1", "absent")
	mock.ExpectGet(key).RedisNil()

	_, ok, err := store.GetResult(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}
