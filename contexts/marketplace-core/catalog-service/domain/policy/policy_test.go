package policy

import (
	"testing"

	"ruleset/contexts/marketplace-core/catalog-service/domain/entities"
	"ruleset/contexts/marketplace-core/catalog-service/domain/scoring"
)

func eligibleListing() entities.Listing {
	return entities.Listing{
		ListingID:   "lst_1",
		SellerID:    "seller_1",
		Title:       "Strict PR Review Rule Pack",
		Description: "Pull request review ruleset enforcing coverage gates and style checks.",
		Tags:        []string{"code-review", "ci"},
		Metrics: entities.ListingMetrics{
			SuccessRate: 92,
			RefundRate:  2,
		},
	}
}

func TestEvaluateEligibleListing(t *testing.T) {
	seller := entities.Seller{SellerID: "seller_1", Verified: true}
	sellerScore := scoring.SellerScore{SellerID: "seller_1", BusinessHealthScore: 84}

	verdict := Evaluate(eligibleListing(), seller, sellerScore)
	if !verdict.PromotedEligible {
		t.Fatalf("expected listing to be eligible: %+v", verdict)
	}
	if len(verdict.Reasons) != 0 {
		t.Fatalf("eligible listing must carry no reasons, got %v", verdict.Reasons)
	}
	checks := verdict.Checks
	if !checks.ContentQuality || !checks.PerformanceThreshold || !checks.TrustThreshold || !checks.SellerVerified {
		t.Fatalf("expected all checks passing: %+v", checks)
	}
}

func TestEvaluateSingleCheckFailures(t *testing.T) {
	seller := entities.Seller{SellerID: "seller_1", Verified: true}
	healthy := scoring.SellerScore{SellerID: "seller_1", BusinessHealthScore: 84}

	thin := eligibleListing()
	thin.Tags = []string{"ci"}
	verdict := Evaluate(thin, seller, healthy)
	if verdict.PromotedEligible || len(verdict.Reasons) != 1 || verdict.Reasons[0] != ReasonContentQuality {
		t.Fatalf("expected content quality rejection, got %+v", verdict)
	}

	refundHeavy := eligibleListing()
	refundHeavy.Metrics.RefundRate = 12
	verdict = Evaluate(refundHeavy, seller, healthy)
	if verdict.PromotedEligible || len(verdict.Reasons) != 1 || verdict.Reasons[0] != ReasonPerformanceThreshold {
		t.Fatalf("expected performance rejection, got %+v", verdict)
	}

	verdict = Evaluate(eligibleListing(), seller, scoring.SellerScore{BusinessHealthScore: 55})
	if verdict.PromotedEligible || len(verdict.Reasons) != 1 || verdict.Reasons[0] != ReasonTrustThreshold {
		t.Fatalf("expected trust rejection, got %+v", verdict)
	}

	verdict = Evaluate(eligibleListing(), entities.Seller{SellerID: "seller_1"}, healthy)
	if verdict.PromotedEligible || len(verdict.Reasons) != 1 || verdict.Reasons[0] != ReasonSellerVerified {
		t.Fatalf("expected verification rejection, got %+v", verdict)
	}
}

func TestEvaluateReasonsKeepCheckOrder(t *testing.T) {
	listing := entities.Listing{
		ListingID: "lst_bad",
		SellerID:  "seller_2",
		Title:     "Short",
		Metrics: entities.ListingMetrics{
			SuccessRate: 50,
			RefundRate:  20,
		},
	}
	verdict := Evaluate(listing, entities.Seller{SellerID: "seller_2"}, scoring.SellerScore{})

	want := []string{
		ReasonContentQuality,
		ReasonPerformanceThreshold,
		ReasonTrustThreshold,
		ReasonSellerVerified,
	}
	if len(verdict.Reasons) != len(want) {
		t.Fatalf("expected %d reasons, got %v", len(want), verdict.Reasons)
	}
	for i, reason := range want {
		if verdict.Reasons[i] != reason {
			t.Fatalf("reason %d out of order: got %q, want %q", i, verdict.Reasons[i], reason)
		}
	}
	if verdict.PromotedEligible {
		t.Fatalf("expected listing to be ineligible")
	}
}
