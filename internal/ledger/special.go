package ledger

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/andresmdz/rifa-go/internal/domain"
)

// SpecialMethod selects how premium ticket numbers are generated when a
// raffle is created.
type SpecialMethod string

const (
	// SpecialRandom picks N distinct numbers uniformly without
	// replacement.
	SpecialRandom SpecialMethod = "random"
	// SpecialRepeated marks numbers whose two-digit rendering starts
	// with two equal digits (00, 11, ... and, past 99, runs like 110-119).
	SpecialRepeated SpecialMethod = "repeated"
)

// PadWidth is the zero-padding width for ticket numbers: the digit count
// of the highest ticket number, never less than two.
func PadWidth(total int) int {
	w := len(strconv.Itoa(total - 1))
	if w < 2 {
		w = 2
	}
	return w
}

func padTicket(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

// FormatTicket renders a ticket number zero-padded for its raffle.
func FormatTicket(n, total int) string {
	return padTicket(n, PadWidth(total))
}

// GenerateSpecials produces the special-number set for a new raffle.
// count is only used by SpecialRandom. rng may be nil to use the shared
// source.
func GenerateSpecials(total int, method SpecialMethod, count int, rng *rand.Rand) ([]int, error) {
	switch method {
	case SpecialRandom:
		if count < 0 || count > total {
			return nil, fmt.Errorf("special count %d out of range [0,%d]", count, total)
		}
		return pickN(allNumbers(total), count, rng), nil
	case SpecialRepeated:
		var out []int
		for n := 0; n < total; n++ {
			s := fmt.Sprintf("%02d", n)
			if s[0] == s[1] {
				out = append(out, n)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown special method %q", method)
	}
}

// RandomPick selects qty unsold tickets uniformly without replacement,
// for quantity-based sales.
func RandomPick(r *domain.Raffle, qty int, rng *rand.Rand) ([]int, error) {
	if qty < 1 {
		return nil, ErrNothingSelected
	}

	free := Available(r)
	if len(free) < qty {
		return nil, NotEnoughTicketsError{Requested: qty, Available: len(free)}
	}

	return pickN(free, qty, rng), nil
}

func allNumbers(total int) []int {
	out := make([]int, total)
	for i := range out {
		out[i] = i
	}
	return out
}

// pickN draws n elements from pool without replacement. pool is
// consumed.
func pickN(pool []int, n int, rng *rand.Rand) []int {
	intn := rand.IntN
	if rng != nil {
		intn = rng.IntN
	}

	out := make([]int, 0, n)
	for len(out) < n {
		i := intn(len(pool))
		out = append(out, pool[i])
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return out
}
