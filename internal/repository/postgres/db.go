// Package postgres persists the application state the way the original
// deployment did: whole serialized values under a handful of storage
// keys. The raffle collection, the selected-raffle id and the operator
// settings each live in one row of the storage table.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage keys, one per externally visible piece of state.
const (
	KeyRaffles  = "raffles"
	KeySelected = "selected_raffle"
	KeySettings = "settings"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Init creates the storage table when it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	const op = "postgres.Store.Init"

	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS storage (
		     key        TEXT PRIMARY KEY,
		     value      JSONB NOT NULL,
		     updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		 )`,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

// RunTx runs fn inside a serializable transaction. Mutating operations
// use it to re-read the collection immediately before writing it back.
func (s *Store) RunTx(
	ctx context.Context,
	opts *pgx.TxOptions,
	fn func(ctx context.Context, tx DB) error,
) error {
	txOpts := pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	}

	if opts != nil {
		txOpts = *opts
	}

	tx, err := s.pool.BeginTx(ctx, txOpts)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (s *Store) Collection() *CollectionRepo { return &CollectionRepo{pool: s.pool} }
func (s *Store) Settings() *SettingsRepo     { return &SettingsRepo{pool: s.pool} }
