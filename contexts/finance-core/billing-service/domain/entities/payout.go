package entities

import "time"

type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "pending"
	PayoutStatusPaid    PayoutStatus = "paid"
)

type Payout struct {
	PayoutID          string
	SellerID          string
	RequestedByUserID string
	AmountUSD         float64
	Status            PayoutStatus
	CreatedAt         time.Time
}

// SellerFinance is the seller's money summary across orders, payouts and ad
// spend. Derived on demand, never persisted.
type SellerFinance struct {
	SellerID               string
	GrossRevenueUSD        float64
	PlatformFeesUSD        float64
	EarnedPayoutUSD        float64
	RequestedPayoutUSD     float64
	AvailablePayoutUSD     float64
	AdSpendUSD             float64
	NetEarningsAfterAdsUSD float64
	OrderCount             int
	PendingPayoutCount     int
	ActivePromotionCount   int
}
