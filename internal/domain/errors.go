package domain

import "errors"

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("no active session")

	ErrInsufficientFunds = errors.New("insufficient coins")
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrUnknownSection    = errors.New("unknown content section")

	ErrChallengeActive = errors.New("challenge already active")
	ErrExcessiveGoal   = errors.New("target loss above the 60-day limit")
	ErrLogIndex        = errors.New("weight log index out of range")

	ErrMissingFields = errors.New("missing required fields")
)
