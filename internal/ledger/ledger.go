// Package ledger implements the raffle ticket ledger: batch sales,
// participant aggregation, identity edits, financial summaries and the
// prize draw. Everything here is pure and operates on domain values;
// loading and persisting the raffle collection is the caller's job.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andresmdz/rifa-go/internal/domain"
)

// FindRaffle returns the index of the raffle with the given id in the
// collection, or -1 when it is not there.
func FindRaffle(raffles []domain.Raffle, id uuid.UUID) int {
	for i := range raffles {
		if raffles[i].ID == id {
			return i
		}
	}
	return -1
}

// SaleResult is what a successful batch sale returns: the sorted ticket
// numbers, the total charged, and the created records keyed by number.
// The caller uses it to render a receipt.
type SaleResult struct {
	Numbers []int
	Total   decimal.Decimal
	Records map[int]domain.SaleRecord
	SoldAt  time.Time
}

// Price returns the price of ticket n: premium when n is in the special
// set, base otherwise.
func Price(r *domain.Raffle, n int) decimal.Decimal {
	if r.IsSpecial(n) {
		return r.SpecialPrice
	}
	return r.TicketPrice
}

// validateBatch checks a requested batch against the current ledger
// without mutating anything. It returns the deduplicated numbers in
// ascending order.
func validateBatch(r *domain.Raffle, numbers []int) ([]int, error) {
	if len(numbers) == 0 {
		return nil, ErrNothingSelected
	}

	seen := make(map[int]struct{}, len(numbers))
	batch := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		batch = append(batch, n)
	}
	sort.Ints(batch)

	var outOfRange, sold []int
	for _, n := range batch {
		if n < 0 || n >= r.TotalTickets {
			outOfRange = append(outOfRange, n)
			continue
		}
		if _, ok := r.Tickets[n]; ok {
			sold = append(sold, n)
		}
	}

	if len(outOfRange) > 0 {
		return nil, OutOfRangeError{Numbers: outOfRange, Total: r.TotalTickets}
	}

	if len(sold) > 0 {
		return nil, AlreadySoldError{Numbers: sold}
	}

	return batch, nil
}

// Quote validates a batch and returns the numbers it would sell and the
// total it would charge, without touching the ledger.
func Quote(r *domain.Raffle, numbers []int) ([]int, decimal.Decimal, error) {
	batch, err := validateBatch(r, numbers)
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	for _, n := range batch {
		total = total.Add(Price(r, n))
	}

	return batch, total, nil
}

// Sell records the purchase of a batch of tickets by a single buyer.
// The whole batch is validated against the current ledger first: either
// every requested ticket is recorded or none is.
func Sell(r *domain.Raffle, numbers []int, buyer domain.Buyer, now time.Time) (*SaleResult, error) {
	batch, total, err := Quote(r, numbers)
	if err != nil {
		return nil, err
	}

	payment := buyer.Payment
	if payment == "" {
		payment = domain.PaymentPaid
	}

	if r.Tickets == nil {
		r.Tickets = make(map[int]domain.SaleRecord, len(batch))
	}

	records := make(map[int]domain.SaleRecord, len(batch))
	for _, n := range batch {
		rec := domain.SaleRecord{
			Buyer:   buyer.Name,
			Phone:   buyer.Phone,
			SoldAt:  now,
			Amount:  Price(r, n),
			Payment: payment,
		}
		r.Tickets[n] = rec
		records[n] = rec
	}

	return &SaleResult{
		Numbers: batch,
		Total:   total,
		Records: records,
		SoldAt:  now,
	}, nil
}

// EditParticipant rewrites the buyer identity on every sale record that
// exactly matches old and returns how many records were updated. Zero
// matches is a no-op, not an error. Amounts, timestamps and payment
// status are untouched.
func EditParticipant(r *domain.Raffle, old, updated domain.Identity) int {
	count := 0
	for n, rec := range r.Tickets {
		if rec.Buyer != old.Name || rec.Phone != old.Phone {
			continue
		}
		rec.Buyer = updated.Name
		rec.Phone = updated.Phone
		r.Tickets[n] = rec
		count++
	}
	return count
}

func groupKey(name, phone string) string {
	return strings.ToLower(name) + "\x00" + phone
}

// Participants groups the raffle's sale records by buyer, name matched
// case-insensitively and phone exactly. Ticket lists come back sorted
// ascending; group order is by buyer name, then phone. When records in
// a group differ in name casing, the record on the lowest ticket number
// supplies the displayed name, so the output does not depend on map
// iteration order.
func Participants(r *domain.Raffle) []domain.Participant {
	groups := make(map[string]*domain.Participant)
	nameTicket := make(map[string]int)
	for n, rec := range r.Tickets {
		key := groupKey(rec.Buyer, rec.Phone)
		p, ok := groups[key]
		if !ok {
			p = &domain.Participant{
				RaffleID:   r.ID,
				RaffleName: r.Name,
				Name:       rec.Buyer,
				Phone:      rec.Phone,
				Payments:   make(map[int]domain.PaymentStatus),
				Total:      decimal.Zero,
			}
			groups[key] = p
			nameTicket[key] = n
		} else if n < nameTicket[key] {
			nameTicket[key] = n
			p.Name = rec.Buyer
		}
		p.Tickets = append(p.Tickets, n)
		p.Payments[n] = rec.Payment
		p.Total = p.Total.Add(rec.Amount)
	}

	out := make([]domain.Participant, 0, len(groups))
	for _, p := range groups {
		sort.Ints(p.Tickets)
		out = append(out, *p)
	}

	sort.Slice(out, func(i, j int) bool {
		ni, nj := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if ni != nj {
			return ni < nj
		}
		return out[i].Phone < out[j].Phone
	})

	return out
}

// FindParticipant resolves one participant by identity, matching the
// same way grouping does: name case-insensitively, phone exactly.
func FindParticipant(r *domain.Raffle, identity domain.Identity) (domain.Participant, bool) {
	want := groupKey(identity.Name, identity.Phone)
	for _, p := range Participants(r) {
		if groupKey(p.Name, p.Phone) == want {
			return p, true
		}
	}
	return domain.Participant{}, false
}

// MatchesFilter reports whether a participant matches a free-text
// filter: case-insensitive substring of the raffle name, buyer name,
// phone, or any zero-padded ticket number. An empty filter passes
// everything. padWidth is the raffle's ticket padding width.
func MatchesFilter(p domain.Participant, filter string, padWidth int) bool {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return true
	}

	if strings.Contains(strings.ToLower(p.RaffleName), filter) ||
		strings.Contains(strings.ToLower(p.Name), filter) ||
		strings.Contains(p.Phone, filter) {
		return true
	}

	for _, n := range p.Tickets {
		if strings.Contains(padTicket(n, padWidth), filter) {
			return true
		}
	}

	return false
}

// FilterParticipants aggregates one raffle and applies the filter.
func FilterParticipants(r *domain.Raffle, filter string) []domain.Participant {
	width := PadWidth(r.TotalTickets)

	all := Participants(r)
	out := make([]domain.Participant, 0, len(all))
	for _, p := range all {
		if MatchesFilter(p, filter, width) {
			out = append(out, p)
		}
	}
	return out
}

// ParticipantsAcross aggregates every non-archived raffle in collection
// order. The same buyer in two raffles yields two distinct participants.
func ParticipantsAcross(raffles []domain.Raffle, filter string) []domain.Participant {
	var out []domain.Participant
	for i := range raffles {
		if raffles[i].Status == domain.RaffleArchived {
			continue
		}
		out = append(out, FilterParticipants(&raffles[i], filter)...)
	}
	return out
}

// Summarize computes the raffle's financial summary.
func Summarize(r *domain.Raffle) domain.Summary {
	revenue := decimal.Zero
	for _, rec := range r.Tickets {
		revenue = revenue.Add(rec.Amount)
	}

	sold := len(r.Tickets)
	return domain.Summary{
		TicketsSold:      sold,
		TicketsRemaining: r.TotalTickets - sold,
		TotalRevenue:     revenue,
		Profit:           revenue.Sub(r.PrizeCost),
	}
}

// Dashboard aggregates the whole collection: archived raffles count
// toward revenue and ticket totals but not toward the active count.
// TopRaffles ranks every raffle by revenue, best five first.
func Dashboard(raffles []domain.Raffle) domain.DashboardStats {
	stats := domain.DashboardStats{TotalRevenue: decimal.Zero}

	ranking := make([]domain.RaffleRevenue, 0, len(raffles))
	for i := range raffles {
		r := &raffles[i]
		s := Summarize(r)

		stats.TotalRevenue = stats.TotalRevenue.Add(s.TotalRevenue)
		stats.TicketsSold += s.TicketsSold
		stats.TicketsTotal += r.TotalTickets
		if r.Status != domain.RaffleArchived {
			stats.ActiveRaffles++
		}

		ranking = append(ranking, domain.RaffleRevenue{
			RaffleID: r.ID,
			Name:     r.Name,
			Revenue:  s.TotalRevenue,
		})
	}
	stats.TicketsRemaining = stats.TicketsTotal - stats.TicketsSold

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Revenue.GreaterThan(ranking[j].Revenue)
	})
	if len(ranking) > 5 {
		ranking = ranking[:5]
	}
	stats.TopRaffles = ranking

	return stats
}

// Available returns the unsold ticket numbers in ascending order.
func Available(r *domain.Raffle) []int {
	out := make([]int, 0, r.TotalTickets-len(r.Tickets))
	for n := 0; n < r.TotalTickets; n++ {
		if _, sold := r.Tickets[n]; !sold {
			out = append(out, n)
		}
	}
	return out
}
