package ports

import (
	"context"
	"time"

	"ruleset/contexts/finance-core/billing-service/domain/entities"
)

type OrderRepository interface {
	AddOrder(ctx context.Context, order entities.Order) error
	ListOrdersByBuyer(ctx context.Context, buyerUserID string) ([]entities.Order, error)
	ListOrdersBySeller(ctx context.Context, sellerID string) ([]entities.Order, error)
}

type PayoutRepository interface {
	AddPayout(ctx context.Context, payout entities.Payout) error
	GetPayout(ctx context.Context, payoutID string) (entities.Payout, error)
	ListPayoutsBySeller(ctx context.Context, sellerID string) ([]entities.Payout, error)
	ListPendingPayouts(ctx context.Context) ([]entities.Payout, error)
	MarkPayoutPaid(ctx context.Context, payoutID string) (entities.Payout, error)
}

// ListingPricing is the slice of a catalog listing billing needs to settle an
// order.
type ListingPricing struct {
	ListingID string
	SellerID  string
	PriceUSD  float64
}

type CatalogSource interface {
	GetListingPricing(ctx context.Context, listingID string) (ListingPricing, bool, error)
}

// AdSpendSummary aggregates a seller's promotion ledger for the finance view.
type AdSpendSummary struct {
	SpendUSD             float64
	ActivePromotionCount int
}

type AdSpendSource interface {
	SellerAdSpend(ctx context.Context, sellerID string) (AdSpendSummary, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
