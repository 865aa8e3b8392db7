package entities

import (
	"time"

	"ruleset/internal/shared/round"
)

// PlatformFeeRate is the marketplace cut taken from every order.
const PlatformFeeRate = 0.12

type OrderStatus string

const OrderStatusCompleted OrderStatus = "completed"

// Order is a completed listing purchase. Fee and payout are fixed at order
// time so later rate changes never rewrite history.
type Order struct {
	OrderID        string
	BuyerUserID    string
	ListingID      string
	SellerID       string
	AmountUSD      float64
	PlatformFeeUSD float64
	PayoutUSD      float64
	Status         OrderStatus
	CreatedAt      time.Time
}

// SplitAmount derives the platform fee and seller payout for a sale amount.
func SplitAmount(amountUSD float64) (feeUSD, payoutUSD float64) {
	feeUSD = round.To2(amountUSD * PlatformFeeRate)
	payoutUSD = round.To2(amountUSD - feeUSD)
	return feeUSD, payoutUSD
}
