package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadWidth(t *testing.T) {
	assert.Equal(t, 2, PadWidth(10))
	assert.Equal(t, 2, PadWidth(100)) // highest ticket is 99
	assert.Equal(t, 3, PadWidth(101))
	assert.Equal(t, 3, PadWidth(1000))
	assert.Equal(t, 2, PadWidth(5))
}

func TestFormatTicket(t *testing.T) {
	assert.Equal(t, "07", FormatTicket(7, 100))
	assert.Equal(t, "042", FormatTicket(42, 500))
}

func TestGenerateSpecialsRepeated(t *testing.T) {
	specials, err := GenerateSpecials(100, SpecialRepeated, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 11, 22, 33, 44, 55, 66, 77, 88, 99}, specials)
}

func TestGenerateSpecialsRandom(t *testing.T) {
	specials, err := GenerateSpecials(50, SpecialRandom, 5, testRNG())
	require.NoError(t, err)
	require.Len(t, specials, 5)

	seen := map[int]bool{}
	for _, n := range specials {
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 50)
		assert.False(t, seen[n], "duplicate special %d", n)
		seen[n] = true
	}
}

func TestGenerateSpecialsRandomRejectsBadCount(t *testing.T) {
	_, err := GenerateSpecials(10, SpecialRandom, 11, nil)
	assert.Error(t, err)
}

func TestGenerateSpecialsUnknownMethod(t *testing.T) {
	_, err := GenerateSpecials(10, SpecialMethod("bogus"), 0, nil)
	assert.Error(t, err)
}

func TestRandomPick(t *testing.T) {
	r := newTestRaffle(10)
	_, err := Sell(r, []int{0, 1, 2, 3, 4, 5, 6}, buyer("Ana", "809"), time.Now())
	require.NoError(t, err)

	picked, err := RandomPick(r, 3, testRNG())
	require.NoError(t, err)
	require.Len(t, picked, 3)
	for _, n := range picked {
		_, sold := r.Tickets[n]
		assert.False(t, sold, "picked sold ticket %d", n)
	}
}

func TestRandomPickNotEnoughAvailable(t *testing.T) {
	r := newTestRaffle(10)
	_, err := Sell(r, []int{0, 1, 2, 3, 4, 5, 6, 7}, buyer("Ana", "809"), time.Now())
	require.NoError(t, err)

	_, err = RandomPick(r, 3, testRNG())

	var short NotEnoughTicketsError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 2, short.Available)
}

func TestRandomPickRejectsZeroQuantity(t *testing.T) {
	r := newTestRaffle(10)
	_, err := RandomPick(r, 0, testRNG())
	assert.ErrorIs(t, err, ErrNothingSelected)
}
