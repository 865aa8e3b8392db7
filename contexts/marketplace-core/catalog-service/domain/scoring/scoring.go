package scoring

import (
	"math"

	"ruleset/contexts/marketplace-core/catalog-service/domain/entities"
	"ruleset/internal/shared/round"
)

type QualityTier string

const (
	TierPlatinum         QualityTier = "Platinum"
	TierGold             QualityTier = "Gold"
	TierSilver           QualityTier = "Silver"
	TierNeedsImprovement QualityTier = "Needs Improvement"
)

// ProductScore is derived on every read and never cached, so it always
// reflects the current listing state.
type ProductScore struct {
	ListingID       string
	EfficiencyScore float64
	SpeedScore      float64
	StabilityScore  float64
	QualityTier     QualityTier
}

type SellerScore struct {
	SellerID            string
	SellerName          string
	Verified            bool
	ListingCount        int
	AvgEfficiencyScore  float64
	TotalLikes          int
	BusinessHealthScore float64
}

// ScoreListing converts a listing's metrics bundle into its quality score.
// Deterministic and side-effect-free: two calls with the same listing return
// bit-identical output.
func ScoreListing(listing entities.Listing) ProductScore {
	m := listing.Metrics

	speedScore := round.Clamp(100-m.AvgSetupMinutes*2, 0, 100)
	stabilityScore := round.Clamp(100-m.IssuesPer100Runs*5, 0, 100)
	baseScore := m.SuccessRate*0.30 +
		speedScore*0.20 +
		stabilityScore*0.20 +
		m.ReuseRate*0.15 +
		m.SupportScore*0.15

	refundPenalty := m.RefundRate * 0.70
	engagementBonus := math.Min(float64(listing.Likes)*0.4, 8)
	adoptionBonus := math.Min(math.Log10(float64(m.Adoption30d)+1)*8, 7)

	efficiency := round.To2(round.Clamp(baseScore-refundPenalty+engagementBonus+adoptionBonus, 0, 100))

	return ProductScore{
		ListingID:       listing.ListingID,
		EfficiencyScore: efficiency,
		SpeedScore:      round.To2(speedScore),
		StabilityScore:  round.To2(stabilityScore),
		QualityTier:     tierFor(efficiency),
	}
}

// tierFor classifies the rounded efficiency score, so the published value and
// the tier can never disagree at a boundary.
func tierFor(efficiency float64) QualityTier {
	switch {
	case efficiency >= 85:
		return TierPlatinum
	case efficiency >= 75:
		return TierGold
	case efficiency >= 60:
		return TierSilver
	default:
		return TierNeedsImprovement
	}
}

// ScoreSeller aggregates a seller's owned listings into a business health
// score. A seller with no listings gets a zero-valued score.
func ScoreSeller(seller entities.Seller, allListings []entities.Listing) SellerScore {
	owned := make([]entities.Listing, 0, len(allListings))
	for _, listing := range allListings {
		if listing.SellerID == seller.SellerID {
			owned = append(owned, listing)
		}
	}
	if len(owned) == 0 {
		return SellerScore{
			SellerID:   seller.SellerID,
			SellerName: seller.Name,
			Verified:   seller.Verified,
		}
	}

	var effSum, successSum, refundSum float64
	totalLikes := 0
	for _, listing := range owned {
		effSum += ScoreListing(listing).EfficiencyScore
		successSum += listing.Metrics.SuccessRate
		refundSum += listing.Metrics.RefundRate
		totalLikes += listing.Likes
	}
	count := float64(len(owned))
	avgEfficiency := effSum / count
	avgSuccess := successSum / count
	avgRefund := refundSum / count

	verifiedBonus := 0.0
	if seller.Verified {
		verifiedBonus = 5
	}
	health := round.Clamp(avgEfficiency*0.75+avgSuccess*0.20-avgRefund*0.15+verifiedBonus, 0, 100)

	return SellerScore{
		SellerID:            seller.SellerID,
		SellerName:          seller.Name,
		Verified:            seller.Verified,
		ListingCount:        len(owned),
		AvgEfficiencyScore:  round.To2(avgEfficiency),
		TotalLikes:          totalLikes,
		BusinessHealthScore: round.To2(health),
	}
}
