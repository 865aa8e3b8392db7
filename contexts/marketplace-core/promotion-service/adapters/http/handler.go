package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"ruleset/contexts/marketplace-core/promotion-service/application/commands"
	"ruleset/contexts/marketplace-core/promotion-service/application/queries"
	"ruleset/contexts/marketplace-core/promotion-service/domain/entities"
	httptransport "ruleset/contexts/marketplace-core/promotion-service/transport/http"
)

type Handler struct {
	CreateCampaign commands.CreateCampaignUseCase
	SetStatus      commands.SetStatusUseCase
	RegisterClick  commands.RegisterClickUseCase
	ListCampaigns  queries.ListCampaignsUseCase
	BuildFeed      queries.BuildFeedUseCase
	Logger         *slog.Logger
}

func (h Handler) CreateCampaignHandler(ctx context.Context, sellerID string, request httptransport.CreateCampaignRequest) (httptransport.CampaignResponse, error) {
	campaign, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		SellerID:       sellerID,
		ListingID:      request.ListingID,
		BidCPMUSD:      request.BidCPMUSD,
		DailyBudgetUSD: request.DailyBudgetUSD,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(campaign)}, nil
}

func (h Handler) SetStatusHandler(ctx context.Context, sellerID, campaignID string, request httptransport.SetStatusRequest) (httptransport.CampaignResponse, error) {
	campaign, err := h.SetStatus.Execute(ctx, commands.SetStatusCommand{
		SellerID:   sellerID,
		CampaignID: campaignID,
		Status:     request.Status,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(campaign)}, nil
}

func (h Handler) RegisterClickHandler(ctx context.Context, campaignID string) (httptransport.CampaignResponse, error) {
	campaign, err := h.RegisterClick.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(campaign)}, nil
}

func (h Handler) ListCampaignsHandler(ctx context.Context, sellerID string) (httptransport.ListCampaignsResponse, error) {
	summaries, err := h.ListCampaigns.Execute(ctx, sellerID)
	if err != nil {
		return httptransport.ListCampaignsResponse{}, err
	}
	items := make([]httptransport.CampaignSummaryDTO, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, httptransport.CampaignSummaryDTO{
			CampaignDTO:        mapCampaign(summary.Campaign),
			ListingTitle:       summary.ListingTitle,
			RemainingBudgetUSD: summary.RemainingBudgetUSD,
			CTRPercent:         summary.CTRPercent,
		})
	}
	return httptransport.ListCampaignsResponse{Items: items}, nil
}

func (h Handler) DiscoveryFeedHandler(ctx context.Context, query, assetType string, slots int) (httptransport.DiscoveryFeedResponse, error) {
	rows, err := h.BuildFeed.Execute(ctx, queries.BuildFeedQuery{
		Query:     query,
		AssetType: assetType,
		Slots:     slots,
	})
	if err != nil {
		return httptransport.DiscoveryFeedResponse{}, err
	}
	items := make([]httptransport.FeedRowDTO, 0, len(rows))
	for _, row := range rows {
		item := httptransport.FeedRowDTO{
			Slot:      row.Slot,
			Placement: string(row.Placement),
			Listing: httptransport.FeedListingDTO{
				ListingID:       row.Listing.ListingID,
				SellerID:        row.Listing.SellerID,
				Title:           row.Listing.Title,
				Description:     row.Listing.Description,
				Type:            row.Listing.Type,
				PriceUSD:        row.Listing.PriceUSD,
				Tags:            append([]string(nil), row.Listing.Tags...),
				CreatedAt:       row.Listing.CreatedAt.UTC().Format(time.RFC3339),
				Likes:           row.Listing.Likes,
				EfficiencyScore: row.Listing.EfficiencyScore,
				SpeedScore:      row.Listing.SpeedScore,
				StabilityScore:  row.Listing.StabilityScore,
				QualityTier:     row.Listing.QualityTier,
			},
		}
		if row.Sponsored != nil {
			item.Sponsored = &httptransport.SponsoredPlacementDTO{
				CampaignID: row.Sponsored.CampaignID,
				BidCPMUSD:  row.Sponsored.BidCPMUSD,
			}
		}
		items = append(items, item)
	}
	return httptransport.DiscoveryFeedResponse{Slots: len(items), Items: items}, nil
}

func mapCampaign(campaign entities.Campaign) httptransport.CampaignDTO {
	return httptransport.CampaignDTO{
		CampaignID:     campaign.CampaignID,
		SellerID:       campaign.SellerID,
		ListingID:      campaign.ListingID,
		BidCPMUSD:      campaign.BidCPMUSD,
		DailyBudgetUSD: campaign.DailyBudgetUSD,
		SpentUSD:       campaign.SpentUSD,
		Impressions:    campaign.Impressions,
		Clicks:         campaign.Clicks,
		Status:         string(campaign.Status),
		CreatedAt:      campaign.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      campaign.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
