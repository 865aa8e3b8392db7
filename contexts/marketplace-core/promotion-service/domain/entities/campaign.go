package entities

import (
	"math"
	"time"

	"ruleset/internal/shared/round"
)

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusExhausted CampaignStatus = "exhausted"
)

const (
	MinBidCPMUSD      = 1.0
	MinDailyBudgetUSD = 10.0
)

// Campaign is a paid-placement record. Spend never exceeds the daily budget:
// a charge that would cross it is rejected and the campaign is exhausted.
// Exhausted is terminal within a budget period.
type Campaign struct {
	CampaignID     string
	SellerID       string
	ListingID      string
	BidCPMUSD      float64
	DailyBudgetUSD float64
	SpentUSD       float64
	Impressions    int
	Clicks         int
	Status         CampaignStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func IsSupportedStatus(value CampaignStatus) bool {
	switch value {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusExhausted:
		return true
	default:
		return false
	}
}

func (c Campaign) RemainingBudgetUSD() float64 {
	return round.To2(math.Max(0, c.DailyBudgetUSD-c.SpentUSD))
}

// ImpressionCostUSD is the per-impression charge derived from the CPM bid.
func (c Campaign) ImpressionCostUSD() float64 {
	return round.To4(c.BidCPMUSD / 1000)
}

// DeliveryBoost grows as the campaign spends less of its budget, pacing
// delivery across the day instead of front-loading the highest bidder.
func (c Campaign) DeliveryBoost() float64 {
	ratio := 1.0
	if c.DailyBudgetUSD > 0 {
		ratio = c.SpentUSD / c.DailyBudgetUSD
	}
	return math.Max(0.15, 1-ratio)
}

// RankScore orders sponsored candidates for feed allocation.
func (c Campaign) RankScore(efficiencyScore float64) float64 {
	return c.BidCPMUSD*0.75 + efficiencyScore*0.25 + c.DeliveryBoost()*6
}

func (c Campaign) CTRPercent() float64 {
	if c.Impressions == 0 {
		return 0
	}
	return round.To2(float64(c.Clicks) / float64(c.Impressions) * 100)
}
