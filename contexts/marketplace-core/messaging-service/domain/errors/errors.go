package errors

import "errors"

var (
	ErrSellerContactUnavailable = errors.New("seller contact is unavailable")
	ErrInvalidMessageInput      = errors.New("invalid message input")
)
