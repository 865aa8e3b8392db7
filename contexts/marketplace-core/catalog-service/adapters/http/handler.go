package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"ruleset/contexts/marketplace-core/catalog-service/application"
	httptransport "ruleset/contexts/marketplace-core/catalog-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListListingsHandler(ctx context.Context, query, assetType, sortMode string) (httptransport.ListListingsResponse, error) {
	rows, err := h.Service.ListListings(ctx, application.ListListingsQuery{
		Query: query,
		Type:  assetType,
		Sort:  sortMode,
	})
	if err != nil {
		return httptransport.ListListingsResponse{}, err
	}
	items := make([]httptransport.ListingDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapListing(row))
	}
	return httptransport.ListListingsResponse{Items: items}, nil
}

func (h Handler) GetListingHandler(ctx context.Context, listingID string) (httptransport.GetListingResponse, error) {
	row, err := h.Service.GetListing(ctx, listingID)
	if err != nil {
		return httptransport.GetListingResponse{}, err
	}
	return httptransport.GetListingResponse{
		Listing: mapListing(row),
		Metrics: httptransport.MetricsDTO{
			SuccessRate:      row.Listing.Metrics.SuccessRate,
			AvgSetupMinutes:  row.Listing.Metrics.AvgSetupMinutes,
			ReuseRate:        row.Listing.Metrics.ReuseRate,
			SupportScore:     row.Listing.Metrics.SupportScore,
			RefundRate:       row.Listing.Metrics.RefundRate,
			Adoption30d:      row.Listing.Metrics.Adoption30d,
			IssuesPer100Runs: row.Listing.Metrics.IssuesPer100Runs,
		},
	}, nil
}

func (h Handler) LikeListingHandler(ctx context.Context, listingID string) (httptransport.LikeListingResponse, error) {
	row, err := h.Service.LikeListing(ctx, listingID)
	if err != nil {
		return httptransport.LikeListingResponse{}, err
	}
	return httptransport.LikeListingResponse{Listing: mapListing(row)}, nil
}

func (h Handler) ProductLeaderboardHandler(ctx context.Context, limit int) (httptransport.ProductLeaderboardResponse, error) {
	rows, err := h.Service.ProductLeaderboard(ctx, limit)
	if err != nil {
		return httptransport.ProductLeaderboardResponse{}, err
	}
	items := make([]httptransport.RankedListingDTO, 0, len(rows))
	for i, row := range rows {
		items = append(items, httptransport.RankedListingDTO{
			Rank:       i + 1,
			ListingDTO: mapListing(row),
		})
	}
	return httptransport.ProductLeaderboardResponse{Items: items}, nil
}

func (h Handler) SellerLeaderboardHandler(ctx context.Context, limit int) (httptransport.SellerLeaderboardResponse, error) {
	scores, err := h.Service.SellerLeaderboard(ctx, limit)
	if err != nil {
		return httptransport.SellerLeaderboardResponse{}, err
	}
	items := make([]httptransport.SellerScoreDTO, 0, len(scores))
	for i, score := range scores {
		items = append(items, httptransport.SellerScoreDTO{
			Rank:                i + 1,
			SellerID:            score.SellerID,
			SellerName:          score.SellerName,
			Verified:            score.Verified,
			ListingCount:        score.ListingCount,
			AvgEfficiencyScore:  score.AvgEfficiencyScore,
			TotalLikes:          score.TotalLikes,
			BusinessHealthScore: score.BusinessHealthScore,
		})
	}
	return httptransport.SellerLeaderboardResponse{Items: items}, nil
}

func (h Handler) ListingPolicyHandler(ctx context.Context, listingID string) (httptransport.ListingPolicyResponse, error) {
	verdict, err := h.Service.EvaluatePolicy(ctx, listingID)
	if err != nil {
		return httptransport.ListingPolicyResponse{}, err
	}
	return httptransport.ListingPolicyResponse{
		ListingID:        verdict.ListingID,
		PromotedEligible: verdict.PromotedEligible,
		Reasons:          append([]string(nil), verdict.Reasons...),
		Checks: httptransport.PolicyChecksDTO{
			ContentQuality:       verdict.Checks.ContentQuality,
			PerformanceThreshold: verdict.Checks.PerformanceThreshold,
			TrustThreshold:       verdict.Checks.TrustThreshold,
			SellerVerified:       verdict.Checks.SellerVerified,
		},
	}, nil
}

func mapListing(row application.ScoredListing) httptransport.ListingDTO {
	return httptransport.ListingDTO{
		ListingID:   row.Listing.ListingID,
		SellerID:    row.Listing.SellerID,
		Title:       row.Listing.Title,
		Description: row.Listing.Description,
		Type:        string(row.Listing.Type),
		PriceUSD:    row.Listing.PriceUSD,
		Tags:        append([]string(nil), row.Listing.Tags...),
		CreatedAt:   row.Listing.CreatedAt.UTC().Format(time.RFC3339),
		Likes:       row.Listing.Likes,
		Score: httptransport.ScoreDTO{
			ListingID:       row.Score.ListingID,
			EfficiencyScore: row.Score.EfficiencyScore,
			SpeedScore:      row.Score.SpeedScore,
			StabilityScore:  row.Score.StabilityScore,
			QualityTier:     string(row.Score.QualityTier),
		},
	}
}
