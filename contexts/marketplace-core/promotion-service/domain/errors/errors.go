package errors

import (
	"errors"
	"strings"
)

var (
	ErrCampaignNotFound     = errors.New("promotion campaign not found")
	ErrListingNotFound      = errors.New("target listing not found")
	ErrListingNotOwned      = errors.New("promotion can only be created for an owned listing")
	ErrBidBelowMinimum      = errors.New("bid cpm is below the configured minimum")
	ErrBudgetBelowMinimum   = errors.New("daily budget is below the configured minimum")
	ErrInvalidCampaignInput = errors.New("invalid promotion campaign input")
	ErrListingNotEligible   = errors.New("listing is not promotion eligible")
	ErrCampaignExhausted    = errors.New("exhausted campaigns cannot be reactivated")

	// ErrBudgetExhausted marks a rejected charge. The feed allocator swallows
	// it and moves to the next sponsored candidate; it is never a caller error.
	ErrBudgetExhausted = errors.New("campaign daily budget exhausted")
)

// IneligibleListingError carries the policy failure reasons alongside the
// ErrListingNotEligible sentinel.
type IneligibleListingError struct {
	ListingID string
	Reasons   []string
}

func (e *IneligibleListingError) Error() string {
	if len(e.Reasons) == 0 {
		return ErrListingNotEligible.Error()
	}
	return ErrListingNotEligible.Error() + ": " + strings.Join(e.Reasons, " ")
}

func (e *IneligibleListingError) Unwrap() error {
	return ErrListingNotEligible
}
