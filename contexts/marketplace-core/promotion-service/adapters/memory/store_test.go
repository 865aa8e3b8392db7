package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"ruleset/contexts/marketplace-core/promotion-service/domain/entities"
	domainerrors "ruleset/contexts/marketplace-core/promotion-service/domain/errors"
)

func TestChargeImpressionSpendsExactBudget(t *testing.T) {
	store := NewStore()
	campaign := seedCampaign(t, store, entities.Campaign{
		CampaignID:     "camp_1",
		SellerID:       "seller_1",
		ListingID:      "lst_1",
		BidCPMUSD:      6,
		DailyBudgetUSD: 30,
		Status:         entities.CampaignStatusActive,
	})
	cost := campaign.ImpressionCostUSD()
	if cost != 0.006 {
		t.Fatalf("expected impression cost 0.006, got %v", cost)
	}

	for i := 0; i < 5000; i++ {
		if _, err := store.ChargeImpression(context.Background(), "camp_1", cost); err != nil {
			t.Fatalf("charge %d failed: %v", i+1, err)
		}
	}

	updated, err := store.GetCampaign(context.Background(), "camp_1")
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if updated.SpentUSD != 30 {
		t.Fatalf("expected spend 30.0 after 5000 charges, got %v", updated.SpentUSD)
	}
	if updated.Impressions != 5000 {
		t.Fatalf("expected 5000 impressions, got %d", updated.Impressions)
	}

	if _, err := store.ChargeImpression(context.Background(), "camp_1", cost); !errors.Is(err, domainerrors.ErrBudgetExhausted) {
		t.Fatalf("expected budget exhausted on charge past budget, got %v", err)
	}
	updated, err = store.GetCampaign(context.Background(), "camp_1")
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if updated.Status != entities.CampaignStatusExhausted {
		t.Fatalf("expected exhausted status, got %s", updated.Status)
	}
	if updated.SpentUSD != 30 {
		t.Fatalf("rejected charge must not move spend, got %v", updated.SpentUSD)
	}
	if updated.Impressions != 5000 {
		t.Fatalf("rejected charge must not count an impression, got %d", updated.Impressions)
	}
}

func TestChargeImpressionRejectsInactiveCampaign(t *testing.T) {
	store := NewStore()
	seedCampaign(t, store, entities.Campaign{
		CampaignID:     "camp_paused",
		SellerID:       "seller_1",
		ListingID:      "lst_1",
		BidCPMUSD:      2,
		DailyBudgetUSD: 20,
		Status:         entities.CampaignStatusPaused,
	})

	if _, err := store.ChargeImpression(context.Background(), "camp_paused", 0.002); !errors.Is(err, domainerrors.ErrBudgetExhausted) {
		t.Fatalf("expected paused campaign to reject charge, got %v", err)
	}
}

func TestSetStatusExhaustedIsTerminal(t *testing.T) {
	store := NewStore()
	seedCampaign(t, store, entities.Campaign{
		CampaignID:     "camp_done",
		SellerID:       "seller_1",
		ListingID:      "lst_1",
		BidCPMUSD:      1,
		DailyBudgetUSD: 10,
		SpentUSD:       10,
		Status:         entities.CampaignStatusExhausted,
	})

	if _, err := store.SetStatus(context.Background(), "camp_done", entities.CampaignStatusActive); !errors.Is(err, domainerrors.ErrCampaignExhausted) {
		t.Fatalf("expected reactivation of exhausted campaign to fail, got %v", err)
	}
}

func TestListActiveCampaignsKeepsCreationOrder(t *testing.T) {
	store := NewStore()
	seedCampaign(t, store, entities.Campaign{CampaignID: "camp_a", Status: entities.CampaignStatusActive})
	seedCampaign(t, store, entities.Campaign{CampaignID: "camp_b", Status: entities.CampaignStatusPaused})
	seedCampaign(t, store, entities.Campaign{CampaignID: "camp_c", Status: entities.CampaignStatusActive})

	active, err := store.ListActiveCampaigns(context.Background())
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(active) != 2 || active[0].CampaignID != "camp_a" || active[1].CampaignID != "camp_c" {
		t.Fatalf("unexpected active campaigns: %+v", active)
	}
}

func seedCampaign(t *testing.T, store *Store, campaign entities.Campaign) entities.Campaign {
	t.Helper()
	if campaign.CreatedAt.IsZero() {
		campaign.CreatedAt = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	}
	campaign.UpdatedAt = campaign.CreatedAt
	if err := store.CreateCampaign(context.Background(), campaign); err != nil {
		t.Fatalf("seed campaign %s failed: %v", campaign.CampaignID, err)
	}
	return campaign
}
