package ports

import (
	"context"
	"strings"
	"time"

	"ruleset/contexts/marketplace-core/promotion-service/domain/entities"
)

// CampaignRepository owns promotion campaign records. ChargeImpression is the
// sole write path for spend: the check-and-update must be atomic per campaign
// so spend can never exceed the daily budget under concurrent feed builds.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
	ListCampaignsBySeller(ctx context.Context, sellerID string) ([]entities.Campaign, error)
	ListActiveCampaigns(ctx context.Context) ([]entities.Campaign, error)

	// ChargeImpression applies one impression at the given cost. When the
	// rounded new spend would exceed the daily budget the charge is rejected,
	// the campaign transitions to exhausted and ErrBudgetExhausted is
	// returned alongside the updated record.
	ChargeImpression(ctx context.Context, campaignID string, cost float64) (entities.Campaign, error)
	RecordClick(ctx context.Context, campaignID string) (entities.Campaign, error)
	SetStatus(ctx context.Context, campaignID string, status entities.CampaignStatus) (entities.Campaign, error)
}

// ListingCard is the promotion-side projection of a catalog listing with its
// current score, enough to rank, filter and render feed rows.
type ListingCard struct {
	ListingID       string
	SellerID        string
	Title           string
	Description     string
	Type            string
	PriceUSD        float64
	Tags            []string
	CreatedAt       time.Time
	Likes           int
	EfficiencyScore float64
	SpeedScore      float64
	StabilityScore  float64
	QualityTier     string
}

// Matches mirrors the organic filter semantics for sponsored targets.
func (c ListingCard) Matches(query, assetType string) bool {
	if assetType != "" && c.Type != assetType {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	haystack := strings.ToLower(c.Title + " " + c.Description + " " + strings.Join(c.Tags, " "))
	return strings.Contains(haystack, q)
}

// ListingSource exposes the organic ranking and listing snapshots from the
// catalog context.
type ListingSource interface {
	// RankedListings returns listings matching the filters sorted by
	// descending efficiency score, ties stable by original listing order.
	RankedListings(ctx context.Context, query, assetType string) ([]ListingCard, error)
	GetListingCard(ctx context.Context, listingID string) (ListingCard, bool, error)
}

type PolicyVerdict struct {
	Eligible bool
	Reasons  []string
}

// PolicySource gates campaign creation on the listing policy check.
type PolicySource interface {
	CheckPromotionEligibility(ctx context.Context, listingID string) (PolicyVerdict, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
