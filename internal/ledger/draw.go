package ledger

import (
	"math/rand/v2"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/andresmdz/rifa-go/internal/domain"
)

// profitMargin is the revenue target multiplier: a draw is allowed only
// once revenue covers the prize cost plus a 20% margin.
var profitMargin = decimal.NewFromFloat(1.20)

// RevenueTarget returns the revenue a raffle must collect before its
// draw is allowed.
func RevenueTarget(r *domain.Raffle) decimal.Decimal {
	return r.PrizeCost.Mul(profitMargin)
}

// Draw selects one winning ticket per non-empty main prize, uniformly
// at random from the currently remaining sold-ticket pool. A ticket
// drawn for an earlier place leaves the pool, so no ticket wins twice
// even when one buyer holds several. The result is display-only; the
// ledger is not mutated.
//
// rng may be nil to use the shared source; the draw is intentionally
// non-reproducible.
func Draw(r *domain.Raffle, rng *rand.Rand) ([]domain.Winner, error) {
	summary := Summarize(r)

	target := RevenueTarget(r)
	if summary.TotalRevenue.LessThan(target) {
		return nil, InsufficientRevenueError{
			Required:  target,
			Revenue:   summary.TotalRevenue,
			Shortfall: target.Sub(summary.TotalRevenue),
		}
	}

	if summary.TicketsSold == 0 {
		return nil, ErrNoParticipants
	}

	prizes := r.Prizes.MainPrizes()
	if summary.TicketsSold < len(prizes) {
		return nil, InsufficientParticipantsError{
			Sold:   summary.TicketsSold,
			Prizes: len(prizes),
		}
	}

	pool := make([]int, 0, len(r.Tickets))
	for n := range r.Tickets {
		pool = append(pool, n)
	}
	sort.Ints(pool)

	intn := rand.IntN
	if rng != nil {
		intn = rng.IntN
	}

	winners := make([]domain.Winner, 0, len(prizes))
	for place, prize := range prizes {
		i := intn(len(pool))
		ticket := pool[i]
		pool = append(pool[:i], pool[i+1:]...)

		winners = append(winners, domain.Winner{
			Place:  place + 1,
			Prize:  prize,
			Name:   r.Tickets[ticket].Buyer,
			Ticket: ticket,
		})
	}

	return winners, nil
}
