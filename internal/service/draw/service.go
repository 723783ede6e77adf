package draw

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andresmdz/rifa-go/internal/domain"
	"github.com/andresmdz/rifa-go/internal/ledger"
	"github.com/andresmdz/rifa-go/internal/monitoring"
	postgresrepo "github.com/andresmdz/rifa-go/internal/repository/postgres"
)

var ErrRaffleNotFound = errors.New("raffle not found")

// Service runs prize draws. A draw reads the ledger and never writes
// it: results are returned to the caller and nothing persists, so the
// same raffle can be drawn again.
type Service struct {
	store *postgresrepo.Store
	rng   *rand.Rand
}

func New(store *postgresrepo.Store) *Service {
	return &Service{
		store: store,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Result is the outcome of one draw.
type Result struct {
	RaffleID uuid.UUID       `json:"raffle_id"`
	Winners  []domain.Winner `json:"winners"`
	Revenue  decimal.Decimal `json:"revenue"`
	Target   decimal.Decimal `json:"target"`
}

// Run draws every main prize of the raffle without replacement. The
// profitability gate runs first; its error carries the shortfall so the
// operator sees exactly how much revenue is missing.
func (s *Service) Run(ctx context.Context, raffleID uuid.UUID) (*Result, error) {
	const op = "service.draw.Run"

	col, err := s.store.Collection().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	i := ledger.FindRaffle(col, raffleID)
	if i < 0 {
		return nil, fmt.Errorf("%s:%w", op, ErrRaffleNotFound)
	}
	r := &col[i]

	winners, err := ledger.Draw(r, s.rng)
	if err != nil {
		monitoring.RecordDraw("rejected")
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	monitoring.RecordDraw("completed")

	return &Result{
		RaffleID: raffleID,
		Winners:  winners,
		Revenue:  ledger.Summarize(r).TotalRevenue,
		Target:   ledger.RevenueTarget(r),
	}, nil
}
