package sales

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andresmdz/rifa-go/internal/domain"
	"github.com/andresmdz/rifa-go/internal/ledger"
	"github.com/andresmdz/rifa-go/internal/monitoring"
	"github.com/andresmdz/rifa-go/internal/repository"
	postgresrepo "github.com/andresmdz/rifa-go/internal/repository/postgres"
	redisrepo "github.com/andresmdz/rifa-go/internal/repository/redis"
	"github.com/andresmdz/rifa-go/internal/uow"
)

// Service records ticket sales. Every path funnels into sellBatch so
// the all-or-nothing rule holds no matter how the numbers were picked.
type Service struct {
	log     *slog.Logger
	store   *postgresrepo.Store
	cache   *redisrepo.Cache
	pubsub  *redisrepo.EventsPubSub
	pending *redisrepo.PendingSaleStore
	idem    *redisrepo.IdempotencyStore
	limiter *redisrepo.SlidingWindowLimiter
	uow     *uow.UoW
	rng     *rand.Rand
}

func New(
	log *slog.Logger,
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.EventsPubSub,
	pending *redisrepo.PendingSaleStore,
	idem *redisrepo.IdempotencyStore,
	limiter *redisrepo.SlidingWindowLimiter,
) *Service {
	return &Service{
		log:     log,
		store:   store,
		cache:   cache,
		pubsub:  pubsub,
		pending: pending,
		idem:    idem,
		limiter: limiter,
		uow:     uow.NewUoW(store),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// SellInput is a sale submission: the buyer identity from the
// confirmation dialog plus the chosen numbers.
type SellInput struct {
	Numbers []int
	Buyer   domain.Buyer
}

// Receipt is the confirmation returned by a completed sale.
type Receipt struct {
	RaffleID uuid.UUID            `json:"raffle_id"`
	Numbers  []int                `json:"numbers"`
	Total    decimal.Decimal      `json:"total"`
	Buyer    string               `json:"buyer"`
	Phone    string               `json:"phone"`
	SoldAt   time.Time            `json:"sold_at"`
	Payment  domain.PaymentStatus `json:"payment"`
}

// Sell records a direct sale of the given numbers. idemKey may be empty;
// when set, a repeated submission with the same key replays the stored
// receipt instead of selling twice.
func (s *Service) Sell(ctx context.Context, raffleID uuid.UUID, in SellInput, idemKey string) (*Receipt, error) {
	const op = "service.sales.Sell"

	if err := s.allow(ctx, raffleID); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if idemKey == "" {
		rcpt, err := s.sellBatch(ctx, raffleID, in)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		return rcpt, nil
	}

	key := redisrepo.KeyIdemSale(raffleID.String(), idemKey)

	if cached, ok, err := s.idem.GetResult(ctx, key); err == nil && ok {
		var rcpt Receipt
		if err := json.Unmarshal([]byte(cached), &rcpt); err == nil {
			return &rcpt, nil
		}
	}

	locked, err := s.idem.AcquireLock(ctx, key, 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	if !locked {
		if cached, ok, err := s.idem.GetResult(ctx, key); err == nil && ok {
			var rcpt Receipt
			if err := json.Unmarshal([]byte(cached), &rcpt); err == nil {
				return &rcpt, nil
			}
		}
		return nil, fmt.Errorf("%s:%w", op, ErrInFlight)
	}

	rcpt, err := s.sellBatch(ctx, raffleID, in)
	if err != nil {
		_ = s.idem.Release(ctx, key)
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if b, mErr := json.Marshal(rcpt); mErr == nil {
		if sErr := s.idem.SaveResult(ctx, key, string(b)); sErr != nil {
			s.log.Warn("idempotency save failed", "key", key, "err", sErr)
		}
	}

	return rcpt, nil
}

// SellRandom sells qty tickets picked at random from the available pool.
func (s *Service) SellRandom(ctx context.Context, raffleID uuid.UUID, qty int, buyer domain.Buyer) (*Receipt, error) {
	const op = "service.sales.SellRandom"

	if err := s.allow(ctx, raffleID); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	var rcpt *Receipt

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		col, err := s.store.Collection().With(tx).Load(ctx)
		if err != nil {
			return err
		}

		r, err := activeRaffle(col, raffleID)
		if err != nil {
			return err
		}

		numbers, err := ledger.RandomPick(r, qty, s.rng)
		if err != nil {
			monitoring.RecordSaleRejected()
			return fmt.Errorf("%w: %v", ErrInvalidSale, err)
		}

		rcpt, err = s.sellInTx(ctx, tx, col, r, SellInput{Numbers: numbers, Buyer: buyer}, after)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return rcpt, nil
}

// Open quotes the requested numbers against the current ledger and
// parks the quote as a pending sale while the operator fills in the
// confirmation dialog. Nothing is reserved.
func (s *Service) Open(ctx context.Context, raffleID uuid.UUID, numbers []int) (*domain.PendingSale, error) {
	const op = "service.sales.Open"

	col, err := s.store.Collection().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	r, err := activeRaffle(col, raffleID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	batch, total, err := ledger.Quote(r, numbers)
	if err != nil {
		return nil, fmt.Errorf("%s:%w: %w", op, ErrInvalidSale, err)
	}

	sale := domain.PendingSale{
		ID:        uuid.New(),
		RaffleID:  raffleID,
		Numbers:   batch,
		Total:     total,
		CreatedAt: time.Now(),
	}

	if err := s.pending.Put(ctx, sale); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &sale, nil
}

// Confirm completes a pending sale with the buyer identity entered in
// the dialog. The numbers are re-validated; another sale may have taken
// them while the dialog was open.
func (s *Service) Confirm(ctx context.Context, pendingID uuid.UUID, buyer domain.Buyer) (*Receipt, error) {
	const op = "service.sales.Confirm"

	sale, err := s.pending.Get(ctx, pendingID.String())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrPendingNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	rcpt, err := s.sellBatch(ctx, sale.RaffleID, SellInput{Numbers: sale.Numbers, Buyer: buyer})
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if err := s.pending.Delete(ctx, pendingID.String()); err != nil {
		s.log.Warn("pending sale cleanup failed", "pending_id", pendingID, "err", err)
	}

	return rcpt, nil
}

// Cancel discards a pending sale. Cancelling an unknown or expired id
// succeeds; the outcome the operator wanted already holds.
func (s *Service) Cancel(ctx context.Context, pendingID uuid.UUID) error {
	const op = "service.sales.Cancel"

	if err := s.pending.Delete(ctx, pendingID.String()); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

// EditParticipant rewrites the buyer identity on every sale record in
// the raffle that exactly matches old. It returns the number of records
// rewritten; zero is not an error.
func (s *Service) EditParticipant(ctx context.Context, raffleID uuid.UUID, old, updated domain.Identity) (int, error) {
	const op = "service.sales.EditParticipant"

	if strings.TrimSpace(updated.Name) == "" {
		return 0, fmt.Errorf("%s: %w: name must not be empty", op, ErrInvalidSale)
	}

	var count int

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		col, err := s.store.Collection().With(tx).Load(ctx)
		if err != nil {
			return err
		}

		i := ledger.FindRaffle(col, raffleID)
		if i < 0 {
			return ErrRaffleNotFound
		}

		count = ledger.EditParticipant(&col[i], old, updated)
		if count == 0 {
			return nil
		}

		if err := s.store.Collection().With(tx).Save(ctx, col); err != nil {
			return err
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateRaffle(ctx, raffleID.String())
			_ = s.pubsub.Publish(ctx, redisrepo.EventRaffleEdited, raffleID)
		})

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	return count, nil
}

// sellBatch is the single write path for sales: load, validate, record,
// save, all inside one transaction.
func (s *Service) sellBatch(ctx context.Context, raffleID uuid.UUID, in SellInput) (*Receipt, error) {
	var rcpt *Receipt

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		col, err := s.store.Collection().With(tx).Load(ctx)
		if err != nil {
			return err
		}

		r, err := activeRaffle(col, raffleID)
		if err != nil {
			return err
		}

		rcpt, err = s.sellInTx(ctx, tx, col, r, in, after)
		return err
	})
	if err != nil {
		return nil, err
	}

	return rcpt, nil
}

func (s *Service) sellInTx(
	ctx context.Context,
	tx postgresrepo.DB,
	col []domain.Raffle,
	r *domain.Raffle,
	in SellInput,
	after func(uow.AfterCommit),
) (*Receipt, error) {
	if strings.TrimSpace(in.Buyer.Name) == "" {
		monitoring.RecordSaleRejected()
		return nil, fmt.Errorf("%w: buyer name is required", ErrInvalidSale)
	}

	res, err := ledger.Sell(r, in.Numbers, in.Buyer, time.Now())
	if err != nil {
		monitoring.RecordSaleRejected()
		return nil, fmt.Errorf("%w: %w", ErrInvalidSale, err)
	}

	if err := s.store.Collection().With(tx).Save(ctx, col); err != nil {
		return nil, err
	}

	payment := in.Buyer.Payment
	if payment == "" {
		payment = domain.PaymentPaid
	}

	rcpt := &Receipt{
		RaffleID: r.ID,
		Numbers:  res.Numbers,
		Total:    res.Total,
		Buyer:    in.Buyer.Name,
		Phone:    in.Buyer.Phone,
		SoldAt:   res.SoldAt,
		Payment:  payment,
	}

	raffleID := r.ID
	sold := len(res.Numbers)
	amount, _ := res.Total.Float64()

	after(func(ctx context.Context) {
		monitoring.RecordSale(sold, amount)
		_ = s.cache.InvalidateRaffle(ctx, raffleID.String())
		_ = s.pubsub.Publish(ctx, redisrepo.EventTicketSold, raffleID)
	})

	return rcpt, nil
}

func (s *Service) allow(ctx context.Context, raffleID uuid.UUID) error {
	if s.limiter == nil {
		return nil
	}

	allowed, _, retryAfter, err := s.limiter.Allow(ctx, raffleID.String())
	if err != nil {
		// Redis being down must not block sales.
		s.log.Warn("rate limiter unavailable", "err", err)
		return nil
	}
	if !allowed {
		return fmt.Errorf("%w: retry in %s", ErrRateLimited, retryAfter)
	}

	return nil
}

func activeRaffle(col []domain.Raffle, id uuid.UUID) (*domain.Raffle, error) {
	i := ledger.FindRaffle(col, id)
	if i < 0 {
		return nil, ErrRaffleNotFound
	}
	if col[i].Status == domain.RaffleArchived {
		return nil, ErrRaffleArchived
	}
	return &col[i], nil
}
