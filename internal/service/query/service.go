package query

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andresmdz/rifa-go/internal/domain"
	"github.com/andresmdz/rifa-go/internal/ledger"
	"github.com/andresmdz/rifa-go/internal/phone"
	postgresrepo "github.com/andresmdz/rifa-go/internal/repository/postgres"
	redisrepo "github.com/andresmdz/rifa-go/internal/repository/redis"
)

// Service answers read-only questions about the collection. Summary and
// dashboard views go through the cache; participant listings never do,
// they are recomputed from the ledger on every call.
type Service struct {
	store    *postgresrepo.Store
	cache    *redisrepo.Cache
	cacheTTL time.Duration
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &Service{store: store, cache: cache, cacheTTL: cacheTTL}
}

func (s *Service) raffle(ctx context.Context, id uuid.UUID) (*domain.Raffle, error) {
	col, err := s.store.Collection().Load(ctx)
	if err != nil {
		return nil, err
	}

	i := ledger.FindRaffle(col, id)
	if i < 0 {
		return nil, ErrRaffleNotFound
	}

	return &col[i], nil
}

// Summary returns the raffle's financial summary, served from cache
// when a sale has not invalidated it.
func (s *Service) Summary(ctx context.Context, raffleID uuid.UUID) (domain.Summary, error) {
	const op = "service.query.Summary"

	summary, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyRaffleSummary(raffleID.String()),
		s.cacheTTL,
		func(ctx context.Context) (domain.Summary, error) {
			r, err := s.raffle(ctx, raffleID)
			if err != nil {
				return domain.Summary{}, err
			}
			return ledger.Summarize(r), nil
		},
	)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("%s:%w", op, err)
	}

	return summary, nil
}

// TicketPage is one page of the ticket selection grid.
type TicketPage struct {
	Total   int                 `json:"total"`
	Offset  int                 `json:"offset"`
	Tickets []domain.TicketInfo `json:"tickets"`
}

// Tickets returns the grid cells for numbers [offset, offset+limit),
// each labeled with the raffle's zero padding.
func (s *Service) Tickets(ctx context.Context, raffleID uuid.UUID, offset, limit int) (TicketPage, error) {
	const op = "service.query.Tickets"

	r, err := s.raffle(ctx, raffleID)
	if err != nil {
		return TicketPage{}, fmt.Errorf("%s:%w", op, err)
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > r.TotalTickets {
		limit = r.TotalTickets
	}

	end := offset + limit
	if end > r.TotalTickets {
		end = r.TotalTickets
	}

	page := TicketPage{Total: r.TotalTickets, Offset: offset}
	if offset >= end {
		page.Tickets = []domain.TicketInfo{}
		return page, nil
	}

	page.Tickets = make([]domain.TicketInfo, 0, end-offset)
	for n := offset; n < end; n++ {
		info := domain.TicketInfo{
			Number:  n,
			Label:   ledger.FormatTicket(n, r.TotalTickets),
			Special: r.IsSpecial(n),
		}
		if rec, ok := r.Tickets[n]; ok {
			info.Sold = true
			info.Buyer = rec.Buyer
			info.Payment = rec.Payment
		}
		page.Tickets = append(page.Tickets, info)
	}

	return page, nil
}

// Participants regroups one raffle's sale records, optionally filtered
// by name, phone or ticket label.
func (s *Service) Participants(ctx context.Context, raffleID uuid.UUID, filter string) ([]domain.Participant, error) {
	const op = "service.query.Participants"

	r, err := s.raffle(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return ledger.FilterParticipants(r, filter), nil
}

// GlobalParticipants aggregates participants across every non-archived
// raffle, grouped per raffle so the same buyer appears once per raffle
// they entered.
func (s *Service) GlobalParticipants(ctx context.Context, filter string) ([]domain.Participant, error) {
	const op = "service.query.GlobalParticipants"

	col, err := s.store.Collection().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return ledger.ParticipantsAcross(col, filter), nil
}

// Dashboard returns the cached cross-raffle aggregate.
func (s *Service) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	const op = "service.query.Dashboard"

	stats, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyDashboard(),
		s.cacheTTL,
		func(ctx context.Context) (domain.DashboardStats, error) {
			col, err := s.store.Collection().Load(ctx)
			if err != nil {
				return domain.DashboardStats{}, err
			}
			return ledger.Dashboard(col), nil
		},
	)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("%s:%w", op, err)
	}

	return stats, nil
}

// Available returns the unsold ticket numbers.
func (s *Service) Available(ctx context.Context, raffleID uuid.UUID) ([]int, error) {
	const op = "service.query.Available"

	r, err := s.raffle(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return ledger.Available(r), nil
}

// Receipt builds the purchase receipt for one participant of a raffle,
// including the WhatsApp contact link built from the operator settings.
func (s *Service) Receipt(ctx context.Context, raffleID uuid.UUID, identity domain.Identity) (domain.Receipt, error) {
	const op = "service.query.Receipt"

	r, err := s.raffle(ctx, raffleID)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%s:%w", op, err)
	}

	settings, err := s.store.Settings().Load(ctx)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%s:%w", op, err)
	}

	p, ok := ledger.FindParticipant(r, identity)
	if !ok {
		return domain.Receipt{}, fmt.Errorf("%s:%w", op, ErrParticipantNotFound)
	}

	var latest time.Time
	for _, n := range p.Tickets {
		if rec, recOK := r.Tickets[n]; recOK && rec.SoldAt.After(latest) {
			latest = rec.SoldAt
		}
	}

	return domain.Receipt{
		RaffleID:   r.ID,
		RaffleName: r.Name,
		Buyer:      p.Name,
		Phone:      p.Phone,
		Numbers:    p.Tickets,
		Total:      p.Total,
		SoldAt:     latest,
		DrawDate:   r.DrawDate,
		Prizes:     r.Prizes,
		WhatsApp:   phone.WhatsAppURL(p.Phone, settings.CountryCode, p.Name, r.Name),
	}, nil
}
