package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"ruleset/contexts/marketplace-core/promotion-service/domain/entities"
	domainerrors "ruleset/contexts/marketplace-core/promotion-service/domain/errors"
	"ruleset/contexts/marketplace-core/promotion-service/ports"
)

const missingListingTitle = "Unknown product"

// CampaignSummary is a campaign enriched with its target listing title and
// derived delivery figures for the seller dashboard.
type CampaignSummary struct {
	Campaign           entities.Campaign
	ListingTitle       string
	RemainingBudgetUSD float64
	CTRPercent         float64
}

type ListCampaignsUseCase struct {
	Campaigns ports.CampaignRepository
	Listings  ports.ListingSource
	Logger    *slog.Logger
}

func (uc ListCampaignsUseCase) Execute(ctx context.Context, sellerID string) ([]CampaignSummary, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return nil, domainerrors.ErrInvalidCampaignInput
	}
	campaigns, err := uc.Campaigns.ListCampaignsBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]CampaignSummary, 0, len(campaigns))
	for _, campaign := range campaigns {
		// The dashboard always shows a title, even when the target listing
		// has disappeared from the catalog.
		title := missingListingTitle
		if card, found, err := uc.Listings.GetListingCard(ctx, campaign.ListingID); err != nil {
			return nil, err
		} else if found {
			title = card.Title
		}
		summaries = append(summaries, CampaignSummary{
			Campaign:           campaign,
			ListingTitle:       title,
			RemainingBudgetUSD: campaign.RemainingBudgetUSD(),
			CTRPercent:         campaign.CTRPercent(),
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Campaign.CreatedAt.After(summaries[j].Campaign.CreatedAt)
	})
	return summaries, nil
}
