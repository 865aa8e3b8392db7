package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"ruleset/contexts/finance-core/billing-service/application"
	"ruleset/contexts/finance-core/billing-service/domain/entities"
	httptransport "ruleset/contexts/finance-core/billing-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateOrderHandler(ctx context.Context, buyerUserID string, request httptransport.CreateOrderRequest) (httptransport.OrderResponse, error) {
	order, err := h.Service.CreateOrder(ctx, buyerUserID, request.ListingID)
	if err != nil {
		return httptransport.OrderResponse{}, err
	}
	return httptransport.OrderResponse{Order: mapOrder(order)}, nil
}

func (h Handler) ListBuyerOrdersHandler(ctx context.Context, buyerUserID string) (httptransport.ListOrdersResponse, error) {
	orders, err := h.Service.ListBuyerOrders(ctx, buyerUserID)
	if err != nil {
		return httptransport.ListOrdersResponse{}, err
	}
	items := make([]httptransport.OrderDTO, 0, len(orders))
	for _, order := range orders {
		items = append(items, mapOrder(order))
	}
	return httptransport.ListOrdersResponse{Items: items}, nil
}

func (h Handler) SellerFinanceHandler(ctx context.Context, sellerID string) (httptransport.SellerFinanceResponse, error) {
	finance, err := h.Service.SellerFinance(ctx, sellerID)
	if err != nil {
		return httptransport.SellerFinanceResponse{}, err
	}
	return httptransport.SellerFinanceResponse{
		SellerID:               finance.SellerID,
		GrossRevenueUSD:        finance.GrossRevenueUSD,
		PlatformFeesUSD:        finance.PlatformFeesUSD,
		EarnedPayoutUSD:        finance.EarnedPayoutUSD,
		RequestedPayoutUSD:     finance.RequestedPayoutUSD,
		AvailablePayoutUSD:     finance.AvailablePayoutUSD,
		AdSpendUSD:             finance.AdSpendUSD,
		NetEarningsAfterAdsUSD: finance.NetEarningsAfterAdsUSD,
		OrderCount:             finance.OrderCount,
		PendingPayoutCount:     finance.PendingPayoutCount,
		ActivePromotionCount:   finance.ActivePromotionCount,
	}, nil
}

func (h Handler) RequestPayoutHandler(ctx context.Context, sellerID, requestedByUserID string) (httptransport.PayoutResponse, error) {
	payout, err := h.Service.RequestPayout(ctx, sellerID, requestedByUserID)
	if err != nil {
		return httptransport.PayoutResponse{}, err
	}
	return httptransport.PayoutResponse{Payout: mapPayout(payout)}, nil
}

func (h Handler) ListPendingPayoutsHandler(ctx context.Context) (httptransport.ListPayoutsResponse, error) {
	payouts, err := h.Service.ListPendingPayouts(ctx)
	if err != nil {
		return httptransport.ListPayoutsResponse{}, err
	}
	items := make([]httptransport.PayoutDTO, 0, len(payouts))
	for _, payout := range payouts {
		items = append(items, mapPayout(payout))
	}
	return httptransport.ListPayoutsResponse{Items: items}, nil
}

func (h Handler) MarkPayoutPaidHandler(ctx context.Context, payoutID string) (httptransport.PayoutResponse, error) {
	payout, err := h.Service.MarkPayoutPaid(ctx, payoutID)
	if err != nil {
		return httptransport.PayoutResponse{}, err
	}
	return httptransport.PayoutResponse{Payout: mapPayout(payout)}, nil
}

func mapOrder(order entities.Order) httptransport.OrderDTO {
	return httptransport.OrderDTO{
		OrderID:        order.OrderID,
		BuyerUserID:    order.BuyerUserID,
		ListingID:      order.ListingID,
		SellerID:       order.SellerID,
		AmountUSD:      order.AmountUSD,
		PlatformFeeUSD: order.PlatformFeeUSD,
		PayoutUSD:      order.PayoutUSD,
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapPayout(payout entities.Payout) httptransport.PayoutDTO {
	return httptransport.PayoutDTO{
		PayoutID:          payout.PayoutID,
		SellerID:          payout.SellerID,
		RequestedByUserID: payout.RequestedByUserID,
		AmountUSD:         payout.AmountUSD,
		Status:            string(payout.Status),
		CreatedAt:         payout.CreatedAt.UTC().Format(time.RFC3339),
	}
}
