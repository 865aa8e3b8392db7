package queries

import (
	"context"
	"testing"

	"ruleset/contexts/marketplace-core/promotion-service/adapters/memory"
)

func TestListCampaignsEnrichesWithListingTitle(t *testing.T) {
	store := memory.NewStore()
	listings := newFeedListings(2)
	seedActiveCampaign(t, store, "camp_known", "lst_1", 6, 30)
	seedActiveCampaign(t, store, "camp_orphan", "lst_gone", 6, 30)

	uc := ListCampaignsUseCase{Campaigns: store, Listings: listings}
	summaries, err := uc.Execute(context.Background(), "seller_0")
	if err != nil {
		t.Fatalf("list campaigns failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	byID := make(map[string]CampaignSummary, len(summaries))
	for _, summary := range summaries {
		byID[summary.Campaign.CampaignID] = summary
	}
	if got := byID["camp_known"].ListingTitle; got != "Workflow Asset 1" {
		t.Fatalf("expected resolved listing title, got %q", got)
	}
	if got := byID["camp_orphan"].ListingTitle; got != "Unknown product" {
		t.Fatalf("expected placeholder title for a missing listing, got %q", got)
	}
}
