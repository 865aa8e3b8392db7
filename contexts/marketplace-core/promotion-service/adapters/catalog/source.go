package catalogadapter

import (
	"context"
	"errors"

	catalogapp "ruleset/contexts/marketplace-core/catalog-service/application"
	catalogerrors "ruleset/contexts/marketplace-core/catalog-service/domain/errors"
	"ruleset/contexts/marketplace-core/promotion-service/ports"
)

// Source bridges the catalog context into the promotion ports. It translates
// catalog scored listings into promotion-side listing cards so the feed
// allocator never depends on catalog types directly.
type Source struct {
	Catalog catalogapp.Service
}

func NewSource(catalog catalogapp.Service) Source {
	return Source{Catalog: catalog}
}

func (s Source) RankedListings(ctx context.Context, query, assetType string) ([]ports.ListingCard, error) {
	rows, err := s.Catalog.ListListings(ctx, catalogapp.ListListingsQuery{
		Query: query,
		Type:  assetType,
		Sort:  string(catalogapp.SortByScore),
	})
	if err != nil {
		return nil, err
	}
	cards := make([]ports.ListingCard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, toCard(row))
	}
	return cards, nil
}

func (s Source) GetListingCard(ctx context.Context, listingID string) (ports.ListingCard, bool, error) {
	row, err := s.Catalog.GetListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrListingNotFound) {
			return ports.ListingCard{}, false, nil
		}
		return ports.ListingCard{}, false, err
	}
	return toCard(row), true, nil
}

func (s Source) CheckPromotionEligibility(ctx context.Context, listingID string) (ports.PolicyVerdict, error) {
	verdict, err := s.Catalog.EvaluatePolicy(ctx, listingID)
	if err != nil {
		return ports.PolicyVerdict{}, err
	}
	return ports.PolicyVerdict{
		Eligible: verdict.PromotedEligible,
		Reasons:  append([]string(nil), verdict.Reasons...),
	}, nil
}

func toCard(row catalogapp.ScoredListing) ports.ListingCard {
	return ports.ListingCard{
		ListingID:       row.Listing.ListingID,
		SellerID:        row.Listing.SellerID,
		Title:           row.Listing.Title,
		Description:     row.Listing.Description,
		Type:            string(row.Listing.Type),
		PriceUSD:        row.Listing.PriceUSD,
		Tags:            append([]string(nil), row.Listing.Tags...),
		CreatedAt:       row.Listing.CreatedAt,
		Likes:           row.Listing.Likes,
		EfficiencyScore: row.Score.EfficiencyScore,
		SpeedScore:      row.Score.SpeedScore,
		StabilityScore:  row.Score.StabilityScore,
		QualityTier:     string(row.Score.QualityTier),
	}
}
