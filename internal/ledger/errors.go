package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNothingSelected = errors.New("no tickets selected")
	ErrNoParticipants  = errors.New("no tickets sold")
)

// OutOfRangeError reports ticket numbers outside [0, Total).
type OutOfRangeError struct {
	Numbers []int
	Total   int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("tickets out of range [0,%d): %v", e.Total, e.Numbers)
}

// AlreadySoldError reports a batch that overlaps sold tickets. The whole
// batch is rejected; the ledger is left untouched.
type AlreadySoldError struct {
	Numbers []int
}

func (e AlreadySoldError) Error() string {
	return fmt.Sprintf("tickets already sold: %v", e.Numbers)
}

// NotEnoughTicketsError reports a random pick that asked for more
// tickets than remain unsold.
type NotEnoughTicketsError struct {
	Requested int
	Available int
}

func (e NotEnoughTicketsError) Error() string {
	return fmt.Sprintf("not enough tickets available: requested %d, only %d left", e.Requested, e.Available)
}

// InsufficientRevenueError reports a draw attempted before the revenue
// target (prize cost plus the profit margin) has been reached.
type InsufficientRevenueError struct {
	Required  decimal.Decimal
	Revenue   decimal.Decimal
	Shortfall decimal.Decimal
}

func (e InsufficientRevenueError) Error() string {
	return fmt.Sprintf("revenue target %s not reached: collected %s, short by %s",
		e.Required.StringFixed(2), e.Revenue.StringFixed(2), e.Shortfall.StringFixed(2))
}

// InsufficientParticipantsError reports fewer sold tickets than main
// prizes to draw.
type InsufficientParticipantsError struct {
	Sold   int
	Prizes int
}

func (e InsufficientParticipantsError) Error() string {
	return fmt.Sprintf("not enough participants (%d) to draw %d prizes", e.Sold, e.Prizes)
}
