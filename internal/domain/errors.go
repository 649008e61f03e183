package domain

import "errors"

// Rejection reasons surfaced to callers. Handlers map these onto HTTP
// statuses; no state is mutated when one of them is returned.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrLeagueExists             = errors.New("league already exists")
	ErrLeagueNotFound           = errors.New("league not found")
	ErrLeagueFull               = errors.New("league is full")
	ErrInvalidLeagueCredentials = errors.New("invalid league credentials")
	ErrNotLeagueMember          = errors.New("not a member of the league")

	ErrInvalidStake        = errors.New("stake must be a positive integer")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrWagerExists         = errors.New("wager already placed for this match")
)
