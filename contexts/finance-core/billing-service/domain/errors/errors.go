package errors

import "errors"

var (
	ErrListingNotFound   = errors.New("listing not found")
	ErrPayoutNotFound    = errors.New("payout not found")
	ErrNoPayoutAvailable = errors.New("no payout available")
	ErrInvalidOrderInput = errors.New("invalid order input")
	ErrPayoutAlreadyPaid = errors.New("payout already paid")
)
