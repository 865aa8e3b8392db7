package errors

import "errors"

var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrSellerNotFound     = errors.New("seller not found")
	ErrInvalidListRequest = errors.New("invalid listing list request")
)
