package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MetricsDTO struct {
	SuccessRate      float64 `json:"success_rate"`
	AvgSetupMinutes  float64 `json:"avg_setup_minutes"`
	ReuseRate        float64 `json:"reuse_rate"`
	SupportScore     float64 `json:"support_score"`
	RefundRate       float64 `json:"refund_rate"`
	Adoption30d      int     `json:"adoption_30d"`
	IssuesPer100Runs float64 `json:"issues_per_100_runs"`
}

type ScoreDTO struct {
	ListingID       string  `json:"listing_id"`
	EfficiencyScore float64 `json:"efficiency_score"`
	SpeedScore      float64 `json:"speed_score"`
	StabilityScore  float64 `json:"stability_score"`
	QualityTier     string  `json:"quality_tier"`
}

type ListingDTO struct {
	ListingID   string   `json:"listing_id"`
	SellerID    string   `json:"seller_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	PriceUSD    float64  `json:"price_usd"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
	Likes       int      `json:"likes"`
	Score       ScoreDTO `json:"score"`
}

type ListListingsResponse struct {
	Items []ListingDTO `json:"items"`
}

type GetListingResponse struct {
	Listing ListingDTO `json:"listing"`
	Metrics MetricsDTO `json:"metrics"`
}

type LikeListingResponse struct {
	Listing ListingDTO `json:"listing"`
}

type RankedListingDTO struct {
	Rank int `json:"rank"`
	ListingDTO
}

type ProductLeaderboardResponse struct {
	Items []RankedListingDTO `json:"items"`
}

type SellerScoreDTO struct {
	Rank                int     `json:"rank,omitempty"`
	SellerID            string  `json:"seller_id"`
	SellerName          string  `json:"seller_name"`
	Verified            bool    `json:"verified"`
	ListingCount        int     `json:"listing_count"`
	AvgEfficiencyScore  float64 `json:"avg_efficiency_score"`
	TotalLikes          int     `json:"total_likes"`
	BusinessHealthScore float64 `json:"business_health_score"`
}

type SellerLeaderboardResponse struct {
	Items []SellerScoreDTO `json:"items"`
}

type PolicyChecksDTO struct {
	ContentQuality       bool `json:"content_quality"`
	PerformanceThreshold bool `json:"performance_threshold"`
	TrustThreshold       bool `json:"trust_threshold"`
	SellerVerified       bool `json:"seller_verified"`
}

type ListingPolicyResponse struct {
	ListingID        string          `json:"listing_id"`
	PromotedEligible bool            `json:"promoted_eligible"`
	Reasons          []string        `json:"reasons"`
	Checks           PolicyChecksDTO `json:"checks"`
}
