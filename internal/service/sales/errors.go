package sales

import "errors"

var (
	ErrRaffleNotFound  = errors.New("raffle not found")
	ErrRaffleArchived  = errors.New("raffle is archived")
	ErrInvalidSale     = errors.New("invalid sale")
	ErrPendingNotFound = errors.New("pending sale not found")
	ErrRateLimited     = errors.New("rate limited")
	ErrInFlight        = errors.New("request already in flight")
)
