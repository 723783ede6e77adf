package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andresmdz/rifa-go/internal/domain"
	"github.com/andresmdz/rifa-go/internal/repository"
)

// SettingsRepo reads and writes the operator configuration key.
type SettingsRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *SettingsRepo) With(db DB) *SettingsRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *SettingsRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Load returns the stored operator settings, falling back to defaults
// when none were saved yet.
func (r *SettingsRepo) Load(ctx context.Context) (domain.Settings, error) {
	const op = "postgres.SettingsRepo.Load"

	db := r.handle()

	var raw []byte
	err := db.QueryRow(ctx,
		`SELECT value FROM storage WHERE key = $1`,
		KeySettings,
	).Scan(&raw)
	if err != nil {
		if wrapped := wrapDBErr(op, err); errors.Is(wrapped, repository.ErrNotFound) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, wrapDBErr(op, err)
	}

	var s domain.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.Settings{}, fmt.Errorf("%s: decode settings: %w", op, err)
	}

	if s.Currency == "" {
		s.Currency = domain.DefaultSettings().Currency
	}
	if s.CountryCode == "" {
		s.CountryCode = domain.DefaultSettings().CountryCode
	}

	return s, nil
}

// Save stores the operator settings.
func (r *SettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	const op = "postgres.SettingsRepo.Save"

	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	db := r.handle()

	_, err = db.Exec(ctx,
		`INSERT INTO storage (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE
		     SET value = EXCLUDED.value, updated_at = now()`,
		KeySettings, raw,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}
