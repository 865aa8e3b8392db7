package queries

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ruleset/contexts/marketplace-core/promotion-service/adapters/memory"
	"ruleset/contexts/marketplace-core/promotion-service/domain/entities"
	"ruleset/contexts/marketplace-core/promotion-service/ports"
)

func TestBuildFeedPlacesSponsoredInPreferredSlots(t *testing.T) {
	store := memory.NewStore()
	listings := newFeedListings(10)
	seedActiveCampaign(t, store, "camp_1", "lst_9", 8, 40)

	uc := BuildFeedUseCase{Campaigns: store, Listings: listings}
	rows, err := uc.Execute(context.Background(), BuildFeedQuery{Slots: 8})
	if err != nil {
		t.Fatalf("build feed failed: %v", err)
	}
	if len(rows) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(rows))
	}

	if rows[0].Placement != PlacementSponsored || rows[0].Listing.ListingID != "lst_9" {
		t.Fatalf("expected sponsored lst_9 in slot 1, got %s %s", rows[0].Placement, rows[0].Listing.ListingID)
	}
	if rows[0].Sponsored == nil || rows[0].Sponsored.CampaignID != "camp_1" {
		t.Fatalf("expected sponsored placement detail, got %+v", rows[0].Sponsored)
	}
	for _, row := range rows[1:] {
		if row.Placement != PlacementOrganic {
			t.Fatalf("slot %d should be organic once sponsored stream is empty, got %s", row.Slot, row.Placement)
		}
		if row.Sponsored != nil {
			t.Fatalf("organic row must not carry sponsored detail: %+v", row)
		}
	}

	campaign, err := store.GetCampaign(context.Background(), "camp_1")
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if campaign.Impressions != 1 {
		t.Fatalf("expected one charged impression, got %d", campaign.Impressions)
	}
	if campaign.SpentUSD != 0.008 {
		t.Fatalf("expected spend 0.008, got %v", campaign.SpentUSD)
	}
}

func TestBuildFeedNeverDuplicatesListing(t *testing.T) {
	store := memory.NewStore()
	listings := newFeedListings(6)
	// Top organic listing is also the sponsored target.
	seedActiveCampaign(t, store, "camp_top", "lst_0", 5, 25)

	uc := BuildFeedUseCase{Campaigns: store, Listings: listings}
	rows, err := uc.Execute(context.Background(), BuildFeedQuery{Slots: 6})
	if err != nil {
		t.Fatalf("build feed failed: %v", err)
	}

	seen := make(map[string]int)
	for _, row := range rows {
		seen[row.Listing.ListingID]++
	}
	if seen["lst_0"] != 1 {
		t.Fatalf("expected lst_0 exactly once, got %d", seen["lst_0"])
	}
}

func TestBuildFeedSkipsExhaustedChargeWithoutLosingSlot(t *testing.T) {
	store := memory.NewStore()
	listings := newFeedListings(8)
	// Budget already spent: the first charge attempt is rejected.
	seedCampaign(t, store, entities.Campaign{
		CampaignID:     "camp_drained",
		SellerID:       "seller_0",
		ListingID:      "lst_7",
		BidCPMUSD:      20,
		DailyBudgetUSD: 10,
		SpentUSD:       10,
		Status:         entities.CampaignStatusActive,
	})
	seedActiveCampaign(t, store, "camp_live", "lst_6", 2, 20)

	uc := BuildFeedUseCase{Campaigns: store, Listings: listings}
	rows, err := uc.Execute(context.Background(), BuildFeedQuery{Slots: 4})
	if err != nil {
		t.Fatalf("build feed failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected full feed despite rejected charge, got %d rows", len(rows))
	}
	if rows[0].Placement != PlacementSponsored || rows[0].Listing.ListingID != "lst_6" {
		t.Fatalf("expected fallback sponsored lst_6 in slot 1, got %s %s", rows[0].Placement, rows[0].Listing.ListingID)
	}

	drained, err := store.GetCampaign(context.Background(), "camp_drained")
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if drained.Status != entities.CampaignStatusExhausted {
		t.Fatalf("expected drained campaign exhausted, got %s", drained.Status)
	}
	if drained.Impressions != 0 {
		t.Fatalf("rejected charge must not count an impression, got %d", drained.Impressions)
	}
}

func TestBuildFeedClampsSlotsAndStopsEarly(t *testing.T) {
	store := memory.NewStore()
	listings := newFeedListings(2)

	uc := BuildFeedUseCase{Campaigns: store, Listings: listings}
	rows, err := uc.Execute(context.Background(), BuildFeedQuery{Slots: 1})
	if err != nil {
		t.Fatalf("build feed failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected early stop at 2 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.Slot != i+1 {
			t.Fatalf("expected contiguous slots, got %+v", rows)
		}
	}

	rows, err = uc.Execute(context.Background(), BuildFeedQuery{Slots: -1})
	if err != nil {
		t.Fatalf("build feed failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("default slot count must not change early stop, got %d", len(rows))
	}
}

func TestBuildFeedSlotCountConventions(t *testing.T) {
	store := memory.NewStore()
	listings := newFeedListings(35)
	uc := BuildFeedUseCase{Campaigns: store, Listings: listings}

	cases := []struct {
		name     string
		slots    int
		wantRows int
	}{
		{"unspecified takes default", -1, 12},
		{"explicit zero clamps to minimum", 0, 4},
		{"below minimum clamps up", 2, 4},
		{"above maximum clamps down", 50, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := uc.Execute(context.Background(), BuildFeedQuery{Slots: tc.slots})
			if err != nil {
				t.Fatalf("build feed failed: %v", err)
			}
			if len(rows) != tc.wantRows {
				t.Fatalf("slots=%d: expected %d rows, got %d", tc.slots, tc.wantRows, len(rows))
			}
		})
	}
}

func TestBuildFeedFiltersSponsoredByQuery(t *testing.T) {
	store := memory.NewStore()
	listings := newFeedListings(4)
	seedActiveCampaign(t, store, "camp_1", "lst_3", 6, 30)

	uc := BuildFeedUseCase{Campaigns: store, Listings: listings}
	rows, err := uc.Execute(context.Background(), BuildFeedQuery{Query: "asset 1", Slots: 4})
	if err != nil {
		t.Fatalf("build feed failed: %v", err)
	}
	for _, row := range rows {
		if row.Placement == PlacementSponsored {
			t.Fatalf("sponsored target does not match the query, got %+v", row)
		}
	}
	campaign, err := store.GetCampaign(context.Background(), "camp_1")
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if campaign.Impressions != 0 {
		t.Fatalf("filtered-out campaign must not be charged, got %d impressions", campaign.Impressions)
	}
}

// feedListings serves n cards ranked lst_0 first with descending scores.
type feedListings struct {
	cards []ports.ListingCard
}

func newFeedListings(n int) feedListings {
	cards := make([]ports.ListingCard, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, ports.ListingCard{
			ListingID:       fmt.Sprintf("lst_%d", i),
			SellerID:        "seller_0",
			Title:           fmt.Sprintf("Workflow Asset %d", i),
			Type:            "workflow",
			EfficiencyScore: float64(90 - i),
		})
	}
	return feedListings{cards: cards}
}

func (f feedListings) RankedListings(_ context.Context, query, assetType string) ([]ports.ListingCard, error) {
	matched := make([]ports.ListingCard, 0, len(f.cards))
	for _, card := range f.cards {
		if card.Matches(query, assetType) {
			matched = append(matched, card)
		}
	}
	return matched, nil
}

func (f feedListings) GetListingCard(_ context.Context, listingID string) (ports.ListingCard, bool, error) {
	for _, card := range f.cards {
		if card.ListingID == listingID {
			return card, true, nil
		}
	}
	return ports.ListingCard{}, false, nil
}

func seedActiveCampaign(t *testing.T, store *memory.Store, campaignID, listingID string, bid, budget float64) {
	t.Helper()
	seedCampaign(t, store, entities.Campaign{
		CampaignID:     campaignID,
		SellerID:       "seller_0",
		ListingID:      listingID,
		BidCPMUSD:      bid,
		DailyBudgetUSD: budget,
		Status:         entities.CampaignStatusActive,
	})
}

func seedCampaign(t *testing.T, store *memory.Store, campaign entities.Campaign) {
	t.Helper()
	campaign.CreatedAt = time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)
	campaign.UpdatedAt = campaign.CreatedAt
	if err := store.CreateCampaign(context.Background(), campaign); err != nil {
		t.Fatalf("seed campaign %s failed: %v", campaign.CampaignID, err)
	}
}
