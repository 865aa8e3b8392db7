package policy

import (
	"ruleset/contexts/marketplace-core/catalog-service/domain/entities"
	"ruleset/contexts/marketplace-core/catalog-service/domain/scoring"
)

const (
	ReasonContentQuality       = "Listing content quality is below threshold."
	ReasonPerformanceThreshold = "Performance metrics do not meet promoted criteria."
	ReasonTrustThreshold       = "Seller health score is below promoted threshold."
	ReasonSellerVerified       = "Seller verification is required for promotions."
)

type Checks struct {
	ContentQuality       bool
	PerformanceThreshold bool
	TrustThreshold       bool
	SellerVerified       bool
}

type ListingPolicy struct {
	ListingID        string
	PromotedEligible bool
	Reasons          []string
	Checks           Checks
}

// Evaluate gates promoted eligibility with four independent checks. The
// reasons list keeps the fixed check order no matter which subset fails.
func Evaluate(listing entities.Listing, seller entities.Seller, sellerScore scoring.SellerScore) ListingPolicy {
	checks := Checks{
		ContentQuality: len(listing.Title) >= 8 &&
			len(listing.Description) >= 40 &&
			len(listing.Tags) >= 2,
		PerformanceThreshold: listing.Metrics.SuccessRate >= 85 &&
			listing.Metrics.RefundRate <= 8,
		TrustThreshold: sellerScore.BusinessHealthScore >= 70,
		SellerVerified: seller.Verified,
	}

	reasons := make([]string, 0, 4)
	if !checks.ContentQuality {
		reasons = append(reasons, ReasonContentQuality)
	}
	if !checks.PerformanceThreshold {
		reasons = append(reasons, ReasonPerformanceThreshold)
	}
	if !checks.TrustThreshold {
		reasons = append(reasons, ReasonTrustThreshold)
	}
	if !checks.SellerVerified {
		reasons = append(reasons, ReasonSellerVerified)
	}

	return ListingPolicy{
		ListingID: listing.ListingID,
		PromotedEligible: checks.ContentQuality &&
			checks.PerformanceThreshold &&
			checks.TrustThreshold &&
			checks.SellerVerified,
		Reasons: reasons,
		Checks:  checks,
	}
}
