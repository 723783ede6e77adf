package raffles

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/andresmdz/rifa-go/internal/domain"
	"github.com/andresmdz/rifa-go/internal/ledger"
	postgresrepo "github.com/andresmdz/rifa-go/internal/repository/postgres"
	redisrepo "github.com/andresmdz/rifa-go/internal/repository/redis"
	"github.com/andresmdz/rifa-go/internal/uow"
)

// Storage is the slice of the store this service uses.
type Storage interface {
	RunTx(ctx context.Context, opts *pgx.TxOptions, fn func(ctx context.Context, tx postgresrepo.DB) error) error
	Collection() *postgresrepo.CollectionRepo
	Settings() *postgresrepo.SettingsRepo
}

// Service manages the raffle collection: creation, edits, archiving,
// selection and the operator settings.
type Service struct {
	store  Storage
	cache  *redisrepo.Cache
	pubsub *redisrepo.EventsPubSub
	uow    *uow.UoW
	rng    *rand.Rand
}

func New(
	store Storage,
	cache *redisrepo.Cache,
	pubsub *redisrepo.EventsPubSub,
) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

type CreateInput struct {
	Name          string
	DrawDate      time.Time
	TotalTickets  int
	TicketPrice   decimal.Decimal
	SpecialPrice  decimal.Decimal
	SpecialMethod ledger.SpecialMethod
	SpecialCount  int
	Prizes        domain.PrizeList
	PrizeCost     decimal.Decimal
}

// Create validates the input, generates the special-number set and
// appends the new raffle to the collection.
//
// Returns:
//   - domain.Raffle: the created raffle.
//   - error: raffles.ErrInvalidRaffle when the input is rejected.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Raffle, error) {
	const op = "service.raffles.Create"

	if strings.TrimSpace(in.Name) == "" {
		return domain.Raffle{}, fmt.Errorf("%s: %w: name is required", op, ErrInvalidRaffle)
	}
	if in.TotalTickets < 1 {
		return domain.Raffle{}, fmt.Errorf("%s: %w: total tickets must be positive", op, ErrInvalidRaffle)
	}
	if in.TicketPrice.IsNegative() || in.SpecialPrice.IsNegative() || in.PrizeCost.IsNegative() {
		return domain.Raffle{}, fmt.Errorf("%s: %w: prices must not be negative", op, ErrInvalidRaffle)
	}
	if len(in.Prizes.MainPrizes()) == 0 {
		return domain.Raffle{}, fmt.Errorf("%s: %w: at least one main prize is required", op, ErrInvalidRaffle)
	}

	if in.SpecialMethod == "" {
		in.SpecialMethod = ledger.SpecialRepeated
	}

	specials, err := ledger.GenerateSpecials(in.TotalTickets, in.SpecialMethod, in.SpecialCount, s.rng)
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("%s: %w: %v", op, ErrInvalidRaffle, err)
	}

	raffle := domain.Raffle{
		ID:             uuid.New(),
		Name:           in.Name,
		Status:         domain.RaffleActive,
		DrawDate:       in.DrawDate,
		TotalTickets:   in.TotalTickets,
		TicketPrice:    in.TicketPrice,
		SpecialPrice:   in.SpecialPrice,
		SpecialNumbers: specials,
		Prizes:         in.Prizes,
		PrizeCost:      in.PrizeCost,
		CreatedAt:      time.Now(),
		Tickets:        map[int]domain.SaleRecord{},
	}

	err = s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		col, err := s.store.Collection().With(tx).Load(ctx)
		if err != nil {
			return err
		}

		col = append(col, raffle)

		if err := s.store.Collection().With(tx).Save(ctx, col); err != nil {
			return err
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateRaffle(ctx, raffle.ID.String())
			_ = s.pubsub.Publish(ctx, redisrepo.EventRaffleCreated, raffle.ID)
		})

		return nil
	})
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("%s:%w", op, err)
	}

	return raffle, nil
}

// UpdateInput carries the editable raffle fields. Ticket count and
// prices are frozen once the raffle exists; they are deliberately not
// here.
type UpdateInput struct {
	Name      *string
	DrawDate  *time.Time
	Prizes    *domain.PrizeList
	PrizeCost *decimal.Decimal
}

// Update edits a raffle's name, prizes, prize cost or draw date.
//
// Returns:
//   - domain.Raffle: the raffle after the edit.
//   - error: raffles.ErrRaffleNotFound when the id is unknown.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (domain.Raffle, error) {
	const op = "service.raffles.Update"

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return domain.Raffle{}, fmt.Errorf("%s: %w: name must not be empty", op, ErrInvalidRaffle)
	}
	if in.PrizeCost != nil && in.PrizeCost.IsNegative() {
		return domain.Raffle{}, fmt.Errorf("%s: %w: prize cost must not be negative", op, ErrInvalidRaffle)
	}
	if in.Prizes != nil && len(in.Prizes.MainPrizes()) == 0 {
		return domain.Raffle{}, fmt.Errorf("%s: %w: at least one main prize is required", op, ErrInvalidRaffle)
	}

	var updated domain.Raffle

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		col, err := s.store.Collection().With(tx).Load(ctx)
		if err != nil {
			return err
		}

		i := ledger.FindRaffle(col, id)
		if i < 0 {
			return ErrRaffleNotFound
		}

		r := &col[i]
		if in.Name != nil {
			r.Name = *in.Name
		}
		if in.DrawDate != nil {
			r.DrawDate = *in.DrawDate
		}
		if in.Prizes != nil {
			r.Prizes = *in.Prizes
		}
		if in.PrizeCost != nil {
			r.PrizeCost = *in.PrizeCost
		}
		updated = *r

		if err := s.store.Collection().With(tx).Save(ctx, col); err != nil {
			return err
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateRaffle(ctx, id.String())
			_ = s.pubsub.Publish(ctx, redisrepo.EventRaffleEdited, id)
		})

		return nil
	})
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("%s:%w", op, err)
	}

	return updated, nil
}

// Archive soft-deletes a raffle: it disappears from active listings and
// the selector, but its record and every sale record stay retrievable
// forever. Archiving the selected raffle clears the selection.
//
// Returns:
//   - error: raffles.ErrRaffleNotFound when the id is unknown.
func (s *Service) Archive(ctx context.Context, id uuid.UUID) error {
	const op = "service.raffles.Archive"

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		col, err := s.store.Collection().With(tx).Load(ctx)
		if err != nil {
			return err
		}

		i := ledger.FindRaffle(col, id)
		if i < 0 {
			return ErrRaffleNotFound
		}

		col[i].Status = domain.RaffleArchived

		if err := s.store.Collection().With(tx).Save(ctx, col); err != nil {
			return err
		}

		selected, ok, err := s.store.Collection().With(tx).Selected(ctx)
		if err != nil {
			return err
		}
		if ok && selected == id {
			if err := s.store.Collection().With(tx).ClearSelected(ctx); err != nil {
				return err
			}
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateRaffle(ctx, id.String())
			_ = s.pubsub.Publish(ctx, redisrepo.EventRaffleArchived, id)
		})

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

// List returns the collection in stored order, hiding archived raffles
// unless asked for.
func (s *Service) List(ctx context.Context, includeArchived bool) ([]domain.Raffle, error) {
	const op = "service.raffles.List"

	col, err := s.store.Collection().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if includeArchived {
		return col, nil
	}

	out := make([]domain.Raffle, 0, len(col))
	for _, r := range col {
		if r.Status != domain.RaffleArchived {
			out = append(out, r)
		}
	}

	return out, nil
}

// Get returns one raffle, archived or not.
//
// Returns:
//   - error: raffles.ErrRaffleNotFound when the id is unknown.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Raffle, error) {
	const op = "service.raffles.Get"

	col, err := s.store.Collection().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	i := ledger.FindRaffle(col, id)
	if i < 0 {
		return nil, fmt.Errorf("%s:%w", op, ErrRaffleNotFound)
	}

	return &col[i], nil
}

// Select stores id as the operator's working raffle.
//
// Returns:
//   - error: raffles.ErrRaffleNotFound / raffles.ErrRaffleArchived.
func (s *Service) Select(ctx context.Context, id uuid.UUID) error {
	const op = "service.raffles.Select"

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		col, err := s.store.Collection().With(tx).Load(ctx)
		if err != nil {
			return err
		}

		i := ledger.FindRaffle(col, id)
		if i < 0 {
			return ErrRaffleNotFound
		}
		if col[i].Status == domain.RaffleArchived {
			return ErrRaffleArchived
		}

		if err := s.store.Collection().With(tx).SetSelected(ctx, id); err != nil {
			return err
		}

		after(func(ctx context.Context) {
			_ = s.pubsub.Publish(ctx, redisrepo.EventRaffleSelected, id)
		})

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

// ClearSelection drops the working-raffle key.
func (s *Service) ClearSelection(ctx context.Context) error {
	const op = "service.raffles.ClearSelection"

	if err := s.store.Collection().ClearSelected(ctx); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

// Selected resolves the working raffle. A selection pointing at a
// raffle that no longer exists or was archived is stale: it is cleared
// and reported as no selection, so the view resets to its empty state.
//
// Returns:
//   - error: raffles.ErrNoSelection when nothing usable is selected.
func (s *Service) Selected(ctx context.Context) (*domain.Raffle, error) {
	const op = "service.raffles.Selected"

	id, ok, err := s.store.Collection().Selected(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s:%w", op, ErrNoSelection)
	}

	col, err := s.store.Collection().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	i := ledger.FindRaffle(col, id)
	if i < 0 || col[i].Status == domain.RaffleArchived {
		_ = s.store.Collection().ClearSelected(ctx)
		return nil, fmt.Errorf("%s:%w", op, ErrNoSelection)
	}

	return &col[i], nil
}

// Settings returns the operator configuration.
func (s *Service) Settings(ctx context.Context) (domain.Settings, error) {
	const op = "service.raffles.Settings"

	settings, err := s.store.Settings().Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%s:%w", op, err)
	}

	return settings, nil
}

// SaveSettings stores the operator configuration.
func (s *Service) SaveSettings(ctx context.Context, settings domain.Settings) error {
	const op = "service.raffles.SaveSettings"

	if err := s.store.Settings().Save(ctx, settings); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}
