package raffles

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresmdz/rifa-go/internal/domain"
	"github.com/andresmdz/rifa-go/internal/ledger"
	postgresrepo "github.com/andresmdz/rifa-go/internal/repository/postgres"
	redisrepo "github.com/andresmdz/rifa-go/internal/repository/redis"
)

// memDB answers the storage-table statements from an in-memory map.
type memDB struct {
	rows map[string][]byte
}

func (m *memDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	key := args[0].(string)
	if strings.HasPrefix(sql, "DELETE") {
		delete(m.rows, key)
		return pgconn.CommandTag{}, nil
	}
	m.rows[key] = args[1].([]byte)
	return pgconn.CommandTag{}, nil
}

func (m *memDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	raw, ok := m.rows[args[0].(string)]
	return memRow{raw: raw, ok: ok}
}

func (m *memDB) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected query")
}

func (m *memDB) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }

type memRow struct {
	raw []byte
	ok  bool
}

func (r memRow) Scan(dest ...any) error {
	if !r.ok {
		return pgx.ErrNoRows
	}
	*(dest[0].(*[]byte)) = r.raw
	return nil
}

type memStorage struct {
	db *memDB
}

func newMemStorage() *memStorage {
	return &memStorage{db: &memDB{rows: map[string][]byte{}}}
}

func (s *memStorage) RunTx(
	ctx context.Context,
	_ *pgx.TxOptions,
	fn func(ctx context.Context, tx postgresrepo.DB) error,
) error {
	return fn(ctx, s.db)
}

func (s *memStorage) Collection() *postgresrepo.CollectionRepo {
	return (&postgresrepo.CollectionRepo{}).With(s.db)
}

func (s *memStorage) Settings() *postgresrepo.SettingsRepo {
	return (&postgresrepo.SettingsRepo{}).With(s.db)
}

func newTestService(t *testing.T) (*Service, *memStorage) {
	t.Helper()
	rdb, _ := redismock.NewClientMock()
	st := newMemStorage()
	return New(st, redisrepo.New(rdb), redisrepo.NewEventsPubSub(rdb)), st
}

func createTestRaffle(t *testing.T, svc *Service) domain.Raffle {
	t.Helper()
	created, err := svc.Create(context.Background(), CreateInput{
		Name:         "Feria de Verano",
		DrawDate:     time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC),
		TotalTickets: 100,
		TicketPrice:  decimal.NewFromInt(10),
		SpecialPrice: decimal.NewFromInt(25),
		Prizes:       domain.PrizeList{Main: []string{"TV"}},
		PrizeCost:    decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	return created
}

func TestArchiveHidesRaffleButKeepsRecords(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	created := createTestRaffle(t, svc)

	// record a sale so archiving has records to preserve
	col, err := st.Collection().Load(ctx)
	require.NoError(t, err)
	_, err = ledger.Sell(&col[0], []int{5}, domain.Buyer{Name: "Ana", Phone: "8095551234"}, time.Now())
	require.NoError(t, err)
	require.NoError(t, st.Collection().Save(ctx, col))

	require.NoError(t, svc.Select(ctx, created.ID))
	require.NoError(t, svc.Archive(ctx, created.ID))

	active, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.RaffleArchived, all[0].Status)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RaffleArchived, got.Status)
	rec, sold := got.Tickets[5]
	require.True(t, sold)
	assert.Equal(t, "Ana", rec.Buyer)

	_, ok, err := st.Collection().Selected(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "archiving the selected raffle must clear the selection")

	_, err = svc.Selected(ctx)
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestArchiveLeavesOtherSelectionAlone(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	first := createTestRaffle(t, svc)
	second := createTestRaffle(t, svc)

	require.NoError(t, svc.Select(ctx, first.ID))
	require.NoError(t, svc.Archive(ctx, second.ID))

	id, ok, err := st.Collection().Selected(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.ID, id)
}

func TestSelectRejectsArchivedRaffle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created := createTestRaffle(t, svc)
	require.NoError(t, svc.Archive(ctx, created.ID))

	assert.ErrorIs(t, svc.Select(ctx, created.ID), ErrRaffleArchived)
}

func TestArchiveUnknownRaffle(t *testing.T) {
	svc, _ := newTestService(t)
	createTestRaffle(t, svc)

	err := svc.Archive(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRaffleNotFound)
}
