package raffles

import "errors"

var (
	ErrRaffleNotFound = errors.New("raffle not found")
	ErrRaffleArchived = errors.New("raffle is archived")
	ErrInvalidRaffle  = errors.New("invalid raffle")
	ErrNoSelection    = errors.New("no raffle selected")
)
