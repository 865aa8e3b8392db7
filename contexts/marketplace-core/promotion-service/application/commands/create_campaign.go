package commands

import (
	"context"
	"log/slog"
	"strings"

	"ruleset/contexts/marketplace-core/promotion-service/application"
	"ruleset/contexts/marketplace-core/promotion-service/domain/entities"
	domainerrors "ruleset/contexts/marketplace-core/promotion-service/domain/errors"
	"ruleset/contexts/marketplace-core/promotion-service/ports"
	"ruleset/internal/shared/round"
)

type CreateCampaignCommand struct {
	SellerID       string
	ListingID      string
	BidCPMUSD      float64
	DailyBudgetUSD float64
}

type CreateCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Listings  ports.ListingSource
	Policy    ports.PolicySource
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (entities.Campaign, error) {
	sellerID := strings.TrimSpace(cmd.SellerID)
	listingID := strings.TrimSpace(cmd.ListingID)
	if sellerID == "" || listingID == "" {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}
	if cmd.BidCPMUSD < entities.MinBidCPMUSD {
		return entities.Campaign{}, domainerrors.ErrBidBelowMinimum
	}
	if cmd.DailyBudgetUSD < entities.MinDailyBudgetUSD {
		return entities.Campaign{}, domainerrors.ErrBudgetBelowMinimum
	}

	card, found, err := uc.Listings.GetListingCard(ctx, listingID)
	if err != nil {
		return entities.Campaign{}, err
	}
	if !found {
		return entities.Campaign{}, domainerrors.ErrListingNotFound
	}
	if card.SellerID != sellerID {
		return entities.Campaign{}, domainerrors.ErrListingNotOwned
	}

	verdict, err := uc.Policy.CheckPromotionEligibility(ctx, listingID)
	if err != nil {
		return entities.Campaign{}, err
	}
	if !verdict.Eligible {
		return entities.Campaign{}, &domainerrors.IneligibleListingError{
			ListingID: listingID,
			Reasons:   append([]string(nil), verdict.Reasons...),
		}
	}

	campaignID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Campaign{}, err
	}
	now := uc.Clock.Now().UTC()
	campaign := entities.Campaign{
		CampaignID:     campaignID,
		SellerID:       sellerID,
		ListingID:      listingID,
		BidCPMUSD:      round.To2(cmd.BidCPMUSD),
		DailyBudgetUSD: round.To2(cmd.DailyBudgetUSD),
		Status:         entities.CampaignStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.Campaigns.CreateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	application.ResolveLogger(uc.Logger).Info("promotion campaign created",
		"event", "promotion_campaign_created",
		"module", "marketplace-core/promotion-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"seller_id", campaign.SellerID,
		"listing_id", campaign.ListingID,
		"bid_cpm_usd", campaign.BidCPMUSD,
		"daily_budget_usd", campaign.DailyBudgetUSD,
	)
	return campaign, nil
}
