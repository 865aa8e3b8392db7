package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateCampaignRequest struct {
	ListingID      string  `json:"listing_id"`
	BidCPMUSD      float64 `json:"bid_cpm_usd"`
	DailyBudgetUSD float64 `json:"daily_budget_usd"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type CampaignDTO struct {
	CampaignID     string  `json:"campaign_id"`
	SellerID       string  `json:"seller_id"`
	ListingID      string  `json:"listing_id"`
	BidCPMUSD      float64 `json:"bid_cpm_usd"`
	DailyBudgetUSD float64 `json:"daily_budget_usd"`
	SpentUSD       float64 `json:"spent_usd"`
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type CampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type CampaignSummaryDTO struct {
	CampaignDTO
	ListingTitle       string  `json:"listing_title"`
	RemainingBudgetUSD float64 `json:"remaining_budget_usd"`
	CTRPercent         float64 `json:"ctr_percent"`
}

type ListCampaignsResponse struct {
	Items []CampaignSummaryDTO `json:"items"`
}

type FeedListingDTO struct {
	ListingID       string   `json:"listing_id"`
	SellerID        string   `json:"seller_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Type            string   `json:"type"`
	PriceUSD        float64  `json:"price_usd"`
	Tags            []string `json:"tags"`
	CreatedAt       string   `json:"created_at"`
	Likes           int      `json:"likes"`
	EfficiencyScore float64  `json:"efficiency_score"`
	SpeedScore      float64  `json:"speed_score"`
	StabilityScore  float64  `json:"stability_score"`
	QualityTier     string   `json:"quality_tier"`
}

type SponsoredPlacementDTO struct {
	CampaignID string  `json:"campaign_id"`
	BidCPMUSD  float64 `json:"bid_cpm_usd"`
}

type FeedRowDTO struct {
	Slot      int                    `json:"slot"`
	Placement string                 `json:"placement"`
	Listing   FeedListingDTO         `json:"listing"`
	Sponsored *SponsoredPlacementDTO `json:"sponsored,omitempty"`
}

type DiscoveryFeedResponse struct {
	Slots int          `json:"slots"`
	Items []FeedRowDTO `json:"items"`
}
