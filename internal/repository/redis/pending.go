package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andresmdz/rifa-go/internal/domain"
	"github.com/andresmdz/rifa-go/internal/repository"
)

// PendingSaleStore holds sales waiting on the confirmation dialog. The
// dialog itself has no timeout; the TTL only reaps records whose dialog
// was abandoned without an explicit cancel. A pending sale reserves no
// tickets, so expiry has no side effects.
type PendingSaleStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPendingSaleStore(rdb *redis.Client, ttl time.Duration) *PendingSaleStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &PendingSaleStore{rdb: rdb, ttl: ttl}
}

func (s *PendingSaleStore) Put(ctx context.Context, sale domain.PendingSale) error {
	const op = "redis.PendingSaleStore.Put"

	b, err := json.Marshal(sale)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	if err := s.rdb.Set(ctx, KeyPendingSale(sale.ID.String()), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

func (s *PendingSaleStore) Get(ctx context.Context, id string) (domain.PendingSale, error) {
	const op = "redis.PendingSaleStore.Get"

	v, err := s.rdb.Get(ctx, KeyPendingSale(id)).Result()
	if err == redis.Nil {
		return domain.PendingSale{}, fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}
	if err != nil {
		return domain.PendingSale{}, fmt.Errorf("%s:%w", op, err)
	}

	var sale domain.PendingSale
	if err := json.Unmarshal([]byte(v), &sale); err != nil {
		return domain.PendingSale{}, fmt.Errorf("%s:%w", op, err)
	}

	return sale, nil
}

func (s *PendingSaleStore) Delete(ctx context.Context, id string) error {
	const op = "redis.PendingSaleStore.Delete"

	if err := s.rdb.Del(ctx, KeyPendingSale(id)).Err(); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}
