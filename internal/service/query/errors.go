package query

import "errors"

var (
	ErrRaffleNotFound      = errors.New("raffle not found")
	ErrParticipantNotFound = errors.New("participant not found")
)
