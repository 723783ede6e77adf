package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresmdz/rifa-go/internal/domain"
)

func newTestRaffle(total int, specials ...int) *domain.Raffle {
	return &domain.Raffle{
		Name:           "Test Raffle",
		Status:         domain.RaffleActive,
		TotalTickets:   total,
		TicketPrice:    decimal.NewFromInt(10),
		SpecialPrice:   decimal.NewFromInt(25),
		SpecialNumbers: specials,
		PrizeCost:      decimal.NewFromInt(100),
		Prizes:         domain.PrizeList{Main: []string{"TV"}},
		Tickets:        map[int]domain.SaleRecord{},
	}
}

func buyer(name, phone string) domain.Buyer {
	return domain.Buyer{Name: name, Phone: phone, Payment: domain.PaymentPaid}
}

func TestSellRecordsBatch(t *testing.T) {
	r := newTestRaffle(100, 11)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	res, err := Sell(r, []int{11, 3, 7}, buyer("Ana Pérez", "8095551234"), now)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 7, 11}, res.Numbers)
	// 10 + 10 + 25: ticket 11 is special
	assert.True(t, res.Total.Equal(decimal.NewFromInt(45)), "total %s", res.Total)
	assert.Len(t, r.Tickets, 3)

	for _, n := range res.Numbers {
		rec := r.Tickets[n]
		assert.Equal(t, "Ana Pérez", rec.Buyer)
		assert.Equal(t, "8095551234", rec.Phone)
		assert.Equal(t, now, rec.SoldAt)
		assert.Equal(t, domain.PaymentPaid, rec.Payment)
		if n == 11 {
			assert.True(t, rec.Amount.Equal(decimal.NewFromInt(25)))
		} else {
			assert.True(t, rec.Amount.Equal(decimal.NewFromInt(10)))
		}
	}
}

func TestSellSoldPlusRemainingIsTotal(t *testing.T) {
	r := newTestRaffle(50)
	now := time.Now()

	_, err := Sell(r, []int{0, 1, 2}, buyer("A", "1"), now)
	require.NoError(t, err)
	_, err = Sell(r, []int{10, 20}, buyer("B", "2"), now)
	require.NoError(t, err)

	s := Summarize(r)
	assert.Equal(t, r.TotalTickets, s.TicketsSold+s.TicketsRemaining)
	assert.Equal(t, 5, s.TicketsSold)
}

func TestSellRejectsEmptySelection(t *testing.T) {
	r := newTestRaffle(10)

	_, err := Sell(r, nil, buyer("A", "1"), time.Now())
	assert.ErrorIs(t, err, ErrNothingSelected)
	assert.Empty(t, r.Tickets)
}

func TestSellRejectsOutOfRange(t *testing.T) {
	r := newTestRaffle(10)

	_, err := Sell(r, []int{4, 10, -1}, buyer("A", "1"), time.Now())

	var oor OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, []int{-1, 10}, oor.Numbers)
	assert.Empty(t, r.Tickets, "failed sale must not touch the ledger")
}

func TestSellIsAtomicOnConflict(t *testing.T) {
	r := newTestRaffle(10)
	now := time.Now()

	_, err := Sell(r, []int{5}, buyer("Primero", "1"), now)
	require.NoError(t, err)

	_, err = Sell(r, []int{3, 4, 5}, buyer("Segundo", "2"), now)

	var conflict AlreadySoldError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []int{5}, conflict.Numbers)

	// Only ticket 5 is sold, still to the first buyer.
	require.Len(t, r.Tickets, 1)
	assert.Equal(t, "Primero", r.Tickets[5].Buyer)
}

func TestSellDeduplicatesRequest(t *testing.T) {
	r := newTestRaffle(10)

	res, err := Sell(r, []int{2, 2, 3}, buyer("A", "1"), time.Now())
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, res.Numbers)
	assert.True(t, res.Total.Equal(decimal.NewFromInt(20)))
}

func TestSellDefaultsPaymentToPaid(t *testing.T) {
	r := newTestRaffle(10)

	_, err := Sell(r, []int{1}, domain.Buyer{Name: "A", Phone: "1"}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, r.Tickets[1].Payment)
}

func TestParticipantsGroupingIsOrderIndependent(t *testing.T) {
	r := newTestRaffle(100)
	now := time.Now()

	_, err := Sell(r, []int{1, 2}, buyer("Ana", "809"), now)
	require.NoError(t, err)
	_, err = Sell(r, []int{3}, buyer("ana", "809"), now) // same buyer, different case
	require.NoError(t, err)
	_, err = Sell(r, []int{4}, buyer("Ana", "829"), now) // same name, other phone
	require.NoError(t, err)

	ps := Participants(r)
	require.Len(t, ps, 2)

	assert.Equal(t, []int{1, 2, 3}, ps[0].Tickets)
	assert.True(t, ps[0].Total.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "809", ps[0].Phone)

	assert.Equal(t, []int{4}, ps[1].Tickets)
}

func TestEditParticipantRewritesAllMatchingRecords(t *testing.T) {
	r := newTestRaffle(100)
	now := time.Now()

	_, err := Sell(r, []int{1, 2, 3}, buyer("Ana", "809"), now)
	require.NoError(t, err)
	_, err = Sell(r, []int{9}, buyer("Luis", "829"), now)
	require.NoError(t, err)

	updated := EditParticipant(r,
		domain.Identity{Name: "Ana", Phone: "809"},
		domain.Identity{Name: "Ana María", Phone: "849"},
	)
	assert.Equal(t, 3, updated)

	// Re-aggregation shows the new identity with the same tickets and total.
	ps := Participants(r)
	require.Len(t, ps, 2)
	assert.Equal(t, "Ana María", ps[0].Name)
	assert.Equal(t, "849", ps[0].Phone)
	assert.Equal(t, []int{1, 2, 3}, ps[0].Tickets)
	assert.True(t, ps[0].Total.Equal(decimal.NewFromInt(30)))

	// The other buyer is untouched.
	assert.Equal(t, "Luis", ps[1].Name)
}

func TestEditParticipantNoMatchIsNoop(t *testing.T) {
	r := newTestRaffle(10)
	_, err := Sell(r, []int{1}, buyer("Ana", "809"), time.Now())
	require.NoError(t, err)

	updated := EditParticipant(r,
		domain.Identity{Name: "Nadie", Phone: "000"},
		domain.Identity{Name: "X", Phone: "1"},
	)
	assert.Zero(t, updated)
	assert.Equal(t, "Ana", r.Tickets[1].Buyer)
}

func TestMatchesFilter(t *testing.T) {
	p := domain.Participant{
		RaffleName: "Rifa Navideña",
		Name:       "Ana Pérez",
		Phone:      "8095551234",
		Tickets:    []int{7, 42},
	}

	tests := []struct {
		name   string
		filter string
		want   bool
	}{
		{"empty filter passes", "", true},
		{"raffle name, case-insensitive", "navide", true},
		{"buyer name", "pérez", true},
		{"phone substring", "555", true},
		{"padded ticket", "07", true},
		{"ticket without padding", "42", true},
		{"no match", "zzz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesFilter(p, tt.filter, 2))
		})
	}
}

func TestParticipantsAcrossSkipsArchivedAndKeysByRaffle(t *testing.T) {
	a := newTestRaffle(10)
	a.Name = "Rifa A"
	b := newTestRaffle(10)
	b.Name = "Rifa B"
	archived := newTestRaffle(10)
	archived.Status = domain.RaffleArchived

	now := time.Now()
	_, err := Sell(a, []int{1}, buyer("Ana", "809"), now)
	require.NoError(t, err)
	_, err = Sell(b, []int{1}, buyer("Ana", "809"), now)
	require.NoError(t, err)
	_, err = Sell(archived, []int{1}, buyer("Ana", "809"), now)
	require.NoError(t, err)

	ps := ParticipantsAcross([]domain.Raffle{*a, *b, *archived}, "")

	// Same person in two live raffles stays two participants; the
	// archived raffle does not show up at all.
	require.Len(t, ps, 2)
	assert.Equal(t, "Rifa A", ps[0].RaffleName)
	assert.Equal(t, "Rifa B", ps[1].RaffleName)
}

func TestSummarize(t *testing.T) {
	r := newTestRaffle(100, 11)
	now := time.Now()
	_, err := Sell(r, []int{11, 1}, buyer("Ana", "809"), now)
	require.NoError(t, err)

	s := Summarize(r)
	assert.Equal(t, 2, s.TicketsSold)
	assert.Equal(t, 98, s.TicketsRemaining)
	assert.True(t, s.TotalRevenue.Equal(decimal.NewFromInt(35)))
	assert.True(t, s.Profit.Equal(decimal.NewFromInt(-65)))
}

func TestDashboard(t *testing.T) {
	a := newTestRaffle(10)
	a.Name = "Low"
	b := newTestRaffle(10)
	b.Name = "High"
	archived := newTestRaffle(10)
	archived.Name = "Old"
	archived.Status = domain.RaffleArchived

	now := time.Now()
	_, err := Sell(a, []int{1}, buyer("Ana", "809"), now)
	require.NoError(t, err)
	_, err = Sell(b, []int{1, 2, 3}, buyer("Luis", "829"), now)
	require.NoError(t, err)
	_, err = Sell(archived, []int{1, 2}, buyer("Rosa", "849"), now)
	require.NoError(t, err)

	stats := Dashboard([]domain.Raffle{*a, *b, *archived})

	// Archived raffles still count toward totals, not the active count.
	assert.Equal(t, 2, stats.ActiveRaffles)
	assert.Equal(t, 6, stats.TicketsSold)
	assert.Equal(t, 30, stats.TicketsTotal)
	assert.Equal(t, 24, stats.TicketsRemaining)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(60)))

	require.NotEmpty(t, stats.TopRaffles)
	assert.Equal(t, "High", stats.TopRaffles[0].Name)
}

func TestAvailable(t *testing.T) {
	r := newTestRaffle(5)
	_, err := Sell(r, []int{0, 3}, buyer("Ana", "809"), time.Now())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 4}, Available(r))
}

func TestParticipantsDisplayNameIsDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		r := newTestRaffle(100)
		_, err := Sell(r, []int{7}, buyer("ana", "8095551234"), now)
		require.NoError(t, err)
		_, err = Sell(r, []int{2}, buyer("Ana", "8095551234"), now)
		require.NoError(t, err)

		groups := Participants(r)
		require.Len(t, groups, 1)
		// the record on the lowest ticket number names the group
		assert.Equal(t, "Ana", groups[0].Name)
		assert.Equal(t, []int{2, 7}, groups[0].Tickets)
	}
}

func TestFindParticipantIsCaseInsensitive(t *testing.T) {
	r := newTestRaffle(100)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err := Sell(r, []int{4, 9}, buyer("Ana Perez", "8095551234"), now)
	require.NoError(t, err)

	p, ok := FindParticipant(r, domain.Identity{Name: "ana perez", Phone: "8095551234"})
	require.True(t, ok)
	assert.Equal(t, "Ana Perez", p.Name)
	assert.Equal(t, []int{4, 9}, p.Tickets)

	_, ok = FindParticipant(r, domain.Identity{Name: "Ana Perez", Phone: "0000000000"})
	assert.False(t, ok)
}
