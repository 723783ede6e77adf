package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andresmdz/rifa-go/internal/domain"
	"github.com/andresmdz/rifa-go/internal/repository"
)

// CollectionRepo reads and writes the serialized raffle collection and
// the selected-raffle key.
type CollectionRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *CollectionRepo) With(db DB) *CollectionRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *CollectionRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Load returns the full raffle collection in stored order. A missing
// storage key means no raffle has been created yet and yields an empty
// collection, not an error.
func (r *CollectionRepo) Load(ctx context.Context) ([]domain.Raffle, error) {
	const op = "postgres.CollectionRepo.Load"

	db := r.handle()

	var raw []byte
	err := db.QueryRow(ctx,
		`SELECT value FROM storage WHERE key = $1`,
		KeyRaffles,
	).Scan(&raw)
	if err != nil {
		if wrapped := wrapDBErr(op, err); errors.Is(wrapped, repository.ErrNotFound) {
			return []domain.Raffle{}, nil
		}
		return nil, wrapDBErr(op, err)
	}

	var raffles []domain.Raffle
	if err := json.Unmarshal(raw, &raffles); err != nil {
		return nil, fmt.Errorf("%s: decode collection: %w", op, err)
	}

	return raffles, nil
}

// Save writes the whole collection back under the raffles key.
func (r *CollectionRepo) Save(ctx context.Context, raffles []domain.Raffle) error {
	const op = "postgres.CollectionRepo.Save"

	raw, err := json.Marshal(raffles)
	if err != nil {
		return fmt.Errorf("%s: encode collection: %w", op, err)
	}

	db := r.handle()

	_, err = db.Exec(ctx,
		`INSERT INTO storage (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE
		     SET value = EXCLUDED.value, updated_at = now()`,
		KeyRaffles, raw,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Selected returns the id of the currently selected raffle, reporting
// ok=false when no selection is stored.
func (r *CollectionRepo) Selected(ctx context.Context) (uuid.UUID, bool, error) {
	const op = "postgres.CollectionRepo.Selected"

	db := r.handle()

	var raw []byte
	err := db.QueryRow(ctx,
		`SELECT value FROM storage WHERE key = $1`,
		KeySelected,
	).Scan(&raw)
	if err != nil {
		if wrapped := wrapDBErr(op, err); errors.Is(wrapped, repository.ErrNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, wrapDBErr(op, err)
	}

	var id uuid.UUID
	if err := json.Unmarshal(raw, &id); err != nil {
		return uuid.Nil, false, fmt.Errorf("%s: decode selection: %w", op, err)
	}

	return id, true, nil
}

// SetSelected stores the selected-raffle id.
func (r *CollectionRepo) SetSelected(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.CollectionRepo.SetSelected"

	raw, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	db := r.handle()

	_, err = db.Exec(ctx,
		`INSERT INTO storage (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE
		     SET value = EXCLUDED.value, updated_at = now()`,
		KeySelected, raw,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// ClearSelected drops the selection key, e.g. after the selected raffle
// was archived.
func (r *CollectionRepo) ClearSelected(ctx context.Context) error {
	const op = "postgres.CollectionRepo.ClearSelected"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`DELETE FROM storage WHERE key = $1`, KeySelected,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}
