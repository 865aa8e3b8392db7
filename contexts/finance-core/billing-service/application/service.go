package application

import (
	"context"
	"log/slog"
	"strings"

	"ruleset/contexts/finance-core/billing-service/domain/entities"
	domainerrors "ruleset/contexts/finance-core/billing-service/domain/errors"
	"ruleset/contexts/finance-core/billing-service/ports"
	"ruleset/internal/shared/round"
)

type Service struct {
	Orders  ports.OrderRepository
	Payouts ports.PayoutRepository
	Catalog ports.CatalogSource
	AdSpend ports.AdSpendSource
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

// CreateOrder settles a purchase at the listing's current price, splitting
// off the platform fee.
func (s Service) CreateOrder(ctx context.Context, buyerUserID, listingID string) (entities.Order, error) {
	buyerUserID = strings.TrimSpace(buyerUserID)
	listingID = strings.TrimSpace(listingID)
	if buyerUserID == "" || listingID == "" {
		return entities.Order{}, domainerrors.ErrInvalidOrderInput
	}

	pricing, found, err := s.Catalog.GetListingPricing(ctx, listingID)
	if err != nil {
		return entities.Order{}, err
	}
	if !found {
		return entities.Order{}, domainerrors.ErrListingNotFound
	}

	feeUSD, payoutUSD := entities.SplitAmount(pricing.PriceUSD)
	orderID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	order := entities.Order{
		OrderID:        orderID,
		BuyerUserID:    buyerUserID,
		ListingID:      listingID,
		SellerID:       pricing.SellerID,
		AmountUSD:      pricing.PriceUSD,
		PlatformFeeUSD: feeUSD,
		PayoutUSD:      payoutUSD,
		Status:         entities.OrderStatusCompleted,
		CreatedAt:      s.Clock.Now().UTC(),
	}
	if err := s.Orders.AddOrder(ctx, order); err != nil {
		return entities.Order{}, err
	}

	ResolveLogger(s.Logger).Info("order completed",
		"event", "order_completed",
		"module", "finance-core/billing-service",
		"layer", "application",
		"order_id", order.OrderID,
		"listing_id", order.ListingID,
		"seller_id", order.SellerID,
		"amount_usd", order.AmountUSD,
		"platform_fee_usd", order.PlatformFeeUSD,
	)
	return order, nil
}

func (s Service) ListBuyerOrders(ctx context.Context, buyerUserID string) ([]entities.Order, error) {
	return s.Orders.ListOrdersByBuyer(ctx, strings.TrimSpace(buyerUserID))
}

// SellerFinance aggregates the seller's order revenue, payout pipeline and
// promotion spend into one summary.
func (s Service) SellerFinance(ctx context.Context, sellerID string) (entities.SellerFinance, error) {
	sellerID = strings.TrimSpace(sellerID)
	orders, err := s.Orders.ListOrdersBySeller(ctx, sellerID)
	if err != nil {
		return entities.SellerFinance{}, err
	}
	payouts, err := s.Payouts.ListPayoutsBySeller(ctx, sellerID)
	if err != nil {
		return entities.SellerFinance{}, err
	}
	adSpend, err := s.AdSpend.SellerAdSpend(ctx, sellerID)
	if err != nil {
		return entities.SellerFinance{}, err
	}

	finance := entities.SellerFinance{SellerID: sellerID, OrderCount: len(orders)}
	gross, fees, earned := 0.0, 0.0, 0.0
	for _, order := range orders {
		gross += order.AmountUSD
		fees += order.PlatformFeeUSD
		earned += order.PayoutUSD
	}
	requested := 0.0
	for _, payout := range payouts {
		requested += payout.AmountUSD
		if payout.Status == entities.PayoutStatusPending {
			finance.PendingPayoutCount++
		}
	}

	finance.GrossRevenueUSD = round.To2(gross)
	finance.PlatformFeesUSD = round.To2(fees)
	finance.EarnedPayoutUSD = round.To2(earned)
	finance.RequestedPayoutUSD = round.To2(requested)
	finance.AvailablePayoutUSD = round.To2(finance.EarnedPayoutUSD - finance.RequestedPayoutUSD)
	finance.AdSpendUSD = round.To2(adSpend.SpendUSD)
	finance.NetEarningsAfterAdsUSD = round.To2(finance.EarnedPayoutUSD - finance.AdSpendUSD)
	finance.ActivePromotionCount = adSpend.ActivePromotionCount
	return finance, nil
}

// RequestPayout locks in whatever is currently available. Pending and paid
// payouts both count against future availability.
func (s Service) RequestPayout(ctx context.Context, sellerID, requestedByUserID string) (entities.Payout, error) {
	finance, err := s.SellerFinance(ctx, sellerID)
	if err != nil {
		return entities.Payout{}, err
	}
	if finance.AvailablePayoutUSD <= 0 {
		return entities.Payout{}, domainerrors.ErrNoPayoutAvailable
	}

	payoutID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Payout{}, err
	}
	payout := entities.Payout{
		PayoutID:          payoutID,
		SellerID:          finance.SellerID,
		RequestedByUserID: strings.TrimSpace(requestedByUserID),
		AmountUSD:         finance.AvailablePayoutUSD,
		Status:            entities.PayoutStatusPending,
		CreatedAt:         s.Clock.Now().UTC(),
	}
	if err := s.Payouts.AddPayout(ctx, payout); err != nil {
		return entities.Payout{}, err
	}

	ResolveLogger(s.Logger).Info("payout requested",
		"event", "payout_requested",
		"module", "finance-core/billing-service",
		"layer", "application",
		"payout_id", payout.PayoutID,
		"seller_id", payout.SellerID,
		"amount_usd", payout.AmountUSD,
	)
	return payout, nil
}

func (s Service) ListPendingPayouts(ctx context.Context) ([]entities.Payout, error) {
	return s.Payouts.ListPendingPayouts(ctx)
}

func (s Service) MarkPayoutPaid(ctx context.Context, payoutID string) (entities.Payout, error) {
	payout, err := s.Payouts.MarkPayoutPaid(ctx, strings.TrimSpace(payoutID))
	if err != nil {
		return entities.Payout{}, err
	}
	ResolveLogger(s.Logger).Info("payout paid",
		"event", "payout_paid",
		"module", "finance-core/billing-service",
		"layer", "application",
		"payout_id", payout.PayoutID,
		"seller_id", payout.SellerID,
		"amount_usd", payout.AmountUSD,
	)
	return payout, nil
}
