package application

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"ruleset/contexts/marketplace-core/catalog-service/domain/entities"
	domainerrors "ruleset/contexts/marketplace-core/catalog-service/domain/errors"
	"ruleset/contexts/marketplace-core/catalog-service/domain/policy"
	"ruleset/contexts/marketplace-core/catalog-service/domain/scoring"
	"ruleset/contexts/marketplace-core/catalog-service/ports"
)

type SortMode string

const (
	SortByScore SortMode = "score"
	SortByLikes SortMode = "likes"
	SortByNew   SortMode = "new"
)

// ScoredListing pairs a listing with its freshly computed score. Scores are
// recomputed on every read so they always reflect current counters.
type ScoredListing struct {
	Listing entities.Listing
	Score   scoring.ProductScore
}

type ListListingsQuery struct {
	Query string
	Type  string
	Sort  string
}

type Service struct {
	Repo   ports.ListingRepository
	Logger *slog.Logger
}

func (s Service) ListListings(ctx context.Context, query ListListingsQuery) ([]ScoredListing, error) {
	assetType := entities.AssetType(strings.TrimSpace(query.Type))
	if assetType != "" && !entities.IsSupportedAssetType(assetType) {
		return nil, domainerrors.ErrInvalidListRequest
	}
	sortMode := SortMode(strings.TrimSpace(query.Sort))
	if sortMode == "" {
		sortMode = SortByScore
	}
	switch sortMode {
	case SortByScore, SortByLikes, SortByNew:
	default:
		return nil, domainerrors.ErrInvalidListRequest
	}

	listings, err := s.Repo.ListListings(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ScoredListing, 0, len(listings))
	for _, listing := range listings {
		if !listing.MatchesType(assetType) || !listing.MatchesQuery(query.Query) {
			continue
		}
		rows = append(rows, ScoredListing{Listing: listing, Score: scoring.ScoreListing(listing)})
	}

	switch sortMode {
	case SortByScore:
		// Stable keeps original listing order for exact score ties.
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Score.EfficiencyScore > rows[j].Score.EfficiencyScore
		})
	case SortByLikes:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Listing.Likes > rows[j].Listing.Likes
		})
	case SortByNew:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Listing.CreatedAt.After(rows[j].Listing.CreatedAt)
		})
	}
	return rows, nil
}

func (s Service) GetListing(ctx context.Context, listingID string) (ScoredListing, error) {
	listing, err := s.Repo.GetListing(ctx, strings.TrimSpace(listingID))
	if err != nil {
		return ScoredListing{}, err
	}
	return ScoredListing{Listing: listing, Score: scoring.ScoreListing(listing)}, nil
}

func (s Service) LikeListing(ctx context.Context, listingID string) (ScoredListing, error) {
	updated, err := s.Repo.IncrementLikes(ctx, strings.TrimSpace(listingID))
	if err != nil {
		return ScoredListing{}, err
	}
	row := ScoredListing{Listing: updated, Score: scoring.ScoreListing(updated)}
	ResolveLogger(s.Logger).Info("listing liked",
		"event", "listing_liked",
		"module", "marketplace-core/catalog-service",
		"layer", "application",
		"listing_id", updated.ListingID,
		"likes", updated.Likes,
		"efficiency_score", row.Score.EfficiencyScore,
	)
	return row, nil
}

func (s Service) ProductLeaderboard(ctx context.Context, limit int) ([]ScoredListing, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.ListListings(ctx, ListListingsQuery{Sort: string(SortByScore)})
	if err != nil {
		return nil, err
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (s Service) SellerLeaderboard(ctx context.Context, limit int) ([]scoring.SellerScore, error) {
	if limit <= 0 {
		limit = 10
	}
	sellers, err := s.Repo.ListSellers(ctx)
	if err != nil {
		return nil, err
	}
	listings, err := s.Repo.ListListings(ctx)
	if err != nil {
		return nil, err
	}

	scores := make([]scoring.SellerScore, 0, len(sellers))
	for _, seller := range sellers {
		scores = append(scores, scoring.ScoreSeller(seller, listings))
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].BusinessHealthScore > scores[j].BusinessHealthScore
	})
	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

func (s Service) ScoreSeller(ctx context.Context, sellerID string) (scoring.SellerScore, error) {
	seller, err := s.Repo.GetSeller(ctx, strings.TrimSpace(sellerID))
	if err != nil {
		return scoring.SellerScore{}, err
	}
	listings, err := s.Repo.ListListings(ctx)
	if err != nil {
		return scoring.SellerScore{}, err
	}
	return scoring.ScoreSeller(seller, listings), nil
}

// EvaluatePolicy combines the listing, its seller and the seller score into
// the promoted-eligibility verdict. Campaign creation gates on this.
func (s Service) EvaluatePolicy(ctx context.Context, listingID string) (policy.ListingPolicy, error) {
	listing, err := s.Repo.GetListing(ctx, strings.TrimSpace(listingID))
	if err != nil {
		return policy.ListingPolicy{}, err
	}
	seller, err := s.Repo.GetSeller(ctx, listing.SellerID)
	if err != nil {
		return policy.ListingPolicy{}, err
	}
	listings, err := s.Repo.ListListings(ctx)
	if err != nil {
		return policy.ListingPolicy{}, err
	}
	verdict := policy.Evaluate(listing, seller, scoring.ScoreSeller(seller, listings))

	ResolveLogger(s.Logger).Debug("listing policy evaluated",
		"event", "listing_policy_evaluated",
		"module", "marketplace-core/catalog-service",
		"layer", "application",
		"listing_id", listing.ListingID,
		"promoted_eligible", verdict.PromotedEligible,
	)
	return verdict, nil
}
