package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateOrderRequest struct {
	ListingID string `json:"listing_id"`
}

type OrderDTO struct {
	OrderID        string  `json:"order_id"`
	BuyerUserID    string  `json:"buyer_user_id"`
	ListingID      string  `json:"listing_id"`
	SellerID       string  `json:"seller_id"`
	AmountUSD      float64 `json:"amount_usd"`
	PlatformFeeUSD float64 `json:"platform_fee_usd"`
	PayoutUSD      float64 `json:"payout_usd"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

type OrderResponse struct {
	Order OrderDTO `json:"order"`
}

type ListOrdersResponse struct {
	Items []OrderDTO `json:"items"`
}

type SellerFinanceResponse struct {
	SellerID               string  `json:"seller_id"`
	GrossRevenueUSD        float64 `json:"gross_revenue_usd"`
	PlatformFeesUSD        float64 `json:"platform_fees_usd"`
	EarnedPayoutUSD        float64 `json:"earned_payout_usd"`
	RequestedPayoutUSD     float64 `json:"requested_payout_usd"`
	AvailablePayoutUSD     float64 `json:"available_payout_usd"`
	AdSpendUSD             float64 `json:"ad_spend_usd"`
	NetEarningsAfterAdsUSD float64 `json:"net_earnings_after_ads_usd"`
	OrderCount             int     `json:"order_count"`
	PendingPayoutCount     int     `json:"pending_payout_count"`
	ActivePromotionCount   int     `json:"active_promotion_count"`
}

type SetPayoutStatusRequest struct {
	Status string `json:"status"`
}

type PayoutDTO struct {
	PayoutID          string  `json:"payout_id"`
	SellerID          string  `json:"seller_id"`
	RequestedByUserID string  `json:"requested_by_user_id"`
	AmountUSD         float64 `json:"amount_usd"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"created_at"`
}

type PayoutResponse struct {
	Payout PayoutDTO `json:"payout"`
}

type ListPayoutsResponse struct {
	Items []PayoutDTO `json:"items"`
}
