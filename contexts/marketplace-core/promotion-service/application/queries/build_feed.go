package queries

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"ruleset/contexts/marketplace-core/promotion-service/application"
	domainerrors "ruleset/contexts/marketplace-core/promotion-service/domain/errors"
	"ruleset/contexts/marketplace-core/promotion-service/ports"
	"ruleset/internal/shared/round"
)

const (
	minFeedSlots     = 4
	maxFeedSlots     = 30
	defaultFeedSlots = 12
)

type Placement string

const (
	PlacementOrganic   Placement = "organic"
	PlacementSponsored Placement = "sponsored"
)

// SponsoredPlacement carries the fields only valid for sponsored rows.
type SponsoredPlacement struct {
	CampaignID string
	BidCPMUSD  float64
}

// FeedRow is one allocated discovery feed slot.
type FeedRow struct {
	Slot      int
	Placement Placement
	Listing   ports.ListingCard
	Sponsored *SponsoredPlacement
}

type BuildFeedQuery struct {
	Query     string
	AssetType string
	Slots     int
}

type BuildFeedUseCase struct {
	Campaigns ports.CampaignRepository
	Listings  ports.ListingSource
	Logger    *slog.Logger
}

type sponsoredCandidate struct {
	campaignID string
	bidCPMUSD  float64
	card       ports.ListingCard
	rank       float64
}

// Execute interleaves the organic ranking with budget-paced sponsored
// candidates slot by slot. Every fourth slot starting at 1 prefers a
// sponsored candidate, the rest prefer organic, each falling back to the
// other stream. Taking a sponsored candidate charges its campaign one
// impression; a rejected charge skips the candidate without consuming the
// slot. Allocation stops early once both streams are empty.
//
// A negative Slots means the caller did not supply a count and takes the
// default; any supplied count, zero included, clamps into [4, 30].
func (uc BuildFeedUseCase) Execute(ctx context.Context, query BuildFeedQuery) ([]FeedRow, error) {
	slots := query.Slots
	if slots < 0 {
		slots = defaultFeedSlots
	}
	if slots < minFeedSlots {
		slots = minFeedSlots
	}
	if slots > maxFeedSlots {
		slots = maxFeedSlots
	}

	search := strings.TrimSpace(query.Query)
	assetType := strings.TrimSpace(query.AssetType)

	organic, err := uc.Listings.RankedListings(ctx, search, assetType)
	if err != nil {
		return nil, err
	}
	sponsored, err := uc.sponsoredRanking(ctx, search, assetType)
	if err != nil {
		return nil, err
	}

	rows := make([]FeedRow, 0, slots)
	used := make(map[string]struct{})
	organicIdx := 0

	for slot := 1; slot <= slots; slot++ {
		var row *FeedRow
		if slot%4 == 1 {
			row, sponsored, err = uc.takeSponsored(ctx, sponsored, used)
			if err != nil {
				return nil, err
			}
			if row == nil {
				row = takeOrganic(organic, &organicIdx, used)
			}
		} else {
			row = takeOrganic(organic, &organicIdx, used)
			if row == nil {
				row, sponsored, err = uc.takeSponsored(ctx, sponsored, used)
				if err != nil {
					return nil, err
				}
			}
		}
		if row == nil {
			break
		}
		row.Slot = slot
		rows = append(rows, *row)
	}

	application.ResolveLogger(uc.Logger).Debug("discovery feed built",
		"event", "discovery_feed_built",
		"module", "marketplace-core/promotion-service",
		"layer", "application",
		"requested_slots", slots,
		"allocated_rows", len(rows),
	)
	return rows, nil
}

// sponsoredRanking snapshots the active campaigns whose target listing
// matches the filters and orders them by rank score, ties stable by campaign
// creation order.
func (uc BuildFeedUseCase) sponsoredRanking(ctx context.Context, query, assetType string) ([]sponsoredCandidate, error) {
	campaigns, err := uc.Campaigns.ListActiveCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]sponsoredCandidate, 0, len(campaigns))
	for _, campaign := range campaigns {
		card, found, err := uc.Listings.GetListingCard(ctx, campaign.ListingID)
		if err != nil {
			return nil, err
		}
		if !found || !card.Matches(query, assetType) {
			continue
		}
		candidates = append(candidates, sponsoredCandidate{
			campaignID: campaign.CampaignID,
			bidCPMUSD:  campaign.BidCPMUSD,
			card:       card,
			rank:       campaign.RankScore(card.EfficiencyScore),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].rank > candidates[j].rank
	})
	return candidates, nil
}

func takeOrganic(organic []ports.ListingCard, idx *int, used map[string]struct{}) *FeedRow {
	for *idx < len(organic) {
		card := organic[*idx]
		*idx++
		if _, taken := used[card.ListingID]; taken {
			continue
		}
		used[card.ListingID] = struct{}{}
		return &FeedRow{Placement: PlacementOrganic, Listing: card}
	}
	return nil
}

func (uc BuildFeedUseCase) takeSponsored(ctx context.Context, candidates []sponsoredCandidate, used map[string]struct{}) (*FeedRow, []sponsoredCandidate, error) {
	for len(candidates) > 0 {
		candidate := candidates[0]
		candidates = candidates[1:]
		if _, taken := used[candidate.card.ListingID]; taken {
			continue
		}
		cost := round.To4(candidate.bidCPMUSD / 1000)
		if _, err := uc.Campaigns.ChargeImpression(ctx, candidate.campaignID, cost); err != nil {
			if errors.Is(err, domainerrors.ErrBudgetExhausted) {
				continue
			}
			return nil, nil, err
		}
		used[candidate.card.ListingID] = struct{}{}
		return &FeedRow{
			Placement: PlacementSponsored,
			Listing:   candidate.card,
			Sponsored: &SponsoredPlacement{
				CampaignID: candidate.campaignID,
				BidCPMUSD:  candidate.bidCPMUSD,
			},
		}, candidates, nil
	}
	return nil, candidates, nil
}
