package ledger

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresmdz/rifa-go/internal/domain"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 13))
}

func sellTickets(t *testing.T, r *domain.Raffle, numbers []int, name string) {
	t.Helper()
	_, err := Sell(r, numbers, buyer(name, "809"), time.Now())
	require.NoError(t, err)
}

func TestDrawRequiresRevenueTarget(t *testing.T) {
	// prizeCost=100 → target 120: revenue 110 fails, 121 passes the gate.
	r := newTestRaffle(100)
	r.TicketPrice = decimal.NewFromInt(11)
	sellTickets(t, r, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, "Ana") // revenue 110

	_, err := Draw(r, testRNG())

	var short InsufficientRevenueError
	require.ErrorAs(t, err, &short)
	assert.True(t, short.Required.Equal(decimal.NewFromInt(120)), "required %s", short.Required)
	assert.True(t, short.Shortfall.Equal(decimal.NewFromInt(10)), "shortfall %s", short.Shortfall)

	sellTickets(t, r, []int{10}, "Luis") // revenue 121

	winners, err := Draw(r, testRNG())
	require.NoError(t, err)
	assert.Len(t, winners, 1)
}

func TestDrawFailsWithoutParticipants(t *testing.T) {
	r := newTestRaffle(10)
	r.PrizeCost = decimal.Zero // gate passes trivially

	_, err := Draw(r, testRNG())
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestDrawFailsWithFewerTicketsThanPrizes(t *testing.T) {
	r := newTestRaffle(10)
	r.PrizeCost = decimal.Zero
	r.Prizes.Main = []string{"TV", "Nevera", "Estufa"}
	sellTickets(t, r, []int{0, 1}, "Ana")

	_, err := Draw(r, testRNG())

	var few InsufficientParticipantsError
	require.ErrorAs(t, err, &few)
	assert.Equal(t, 2, few.Sold)
	assert.Equal(t, 3, few.Prizes)
}

func TestDrawNeverRepeatsTickets(t *testing.T) {
	r := newTestRaffle(20)
	r.PrizeCost = decimal.Zero
	r.Prizes.Main = []string{"TV", "Nevera", "Estufa"}
	// One buyer holding every ticket: places must still differ by ticket.
	sellTickets(t, r, []int{0, 1, 2, 3, 4}, "Ana")

	for i := 0; i < 50; i++ {
		winners, err := Draw(r, testRNG())
		require.NoError(t, err)
		require.Len(t, winners, 3)

		seen := map[int]bool{}
		for place, w := range winners {
			assert.Equal(t, place+1, w.Place)
			assert.False(t, seen[w.Ticket], "ticket %d won twice", w.Ticket)
			seen[w.Ticket] = true
			assert.Equal(t, "Ana", w.Name)
			assert.NotEmpty(t, w.Prize)
		}
	}
}

func TestDrawSkipsEmptyPrizeSlots(t *testing.T) {
	r := newTestRaffle(10)
	r.PrizeCost = decimal.Zero
	r.Prizes.Main = []string{"TV", "", "  "}
	sellTickets(t, r, []int{0, 1, 2}, "Ana")

	winners, err := Draw(r, testRNG())
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, "TV", winners[0].Prize)
}

func TestDrawDoesNotMutateLedger(t *testing.T) {
	r := newTestRaffle(10)
	r.PrizeCost = decimal.Zero
	sellTickets(t, r, []int{0, 1, 2}, "Ana")

	before := Summarize(r)
	_, err := Draw(r, testRNG())
	require.NoError(t, err)

	assert.Equal(t, before, Summarize(r))
	assert.Len(t, r.Tickets, 3)
}
