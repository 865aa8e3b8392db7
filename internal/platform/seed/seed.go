package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"ruleset/contexts/marketplace-core/catalog-service/domain/entities"
)

// File is the on-disk marketplace fixture: the seller roster plus the
// listing catalog the in-memory stores boot from.
type File struct {
	Sellers  []SellerSeed  `json:"sellers"`
	Listings []ListingSeed `json:"listings"`
}

type SellerSeed struct {
	SellerID string `json:"seller_id"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Verified bool   `json:"verified"`
}

type ListingSeed struct {
	ListingID   string      `json:"listing_id"`
	SellerID    string      `json:"seller_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	PriceUSD    float64     `json:"price_usd"`
	Tags        []string    `json:"tags"`
	CreatedAt   string      `json:"created_at"`
	Likes       int         `json:"likes"`
	Metrics     MetricsSeed `json:"metrics"`
}

type MetricsSeed struct {
	SuccessRate      float64 `json:"success_rate"`
	AvgSetupMinutes  float64 `json:"avg_setup_minutes"`
	ReuseRate        float64 `json:"reuse_rate"`
	SupportScore     float64 `json:"support_score"`
	RefundRate       float64 `json:"refund_rate"`
	Adoption30d      int     `json:"adoption_30d"`
	IssuesPer100Runs float64 `json:"issues_per_100_runs"`
}

// Load reads and validates the seed file. Metric percentages are clamped at
// this edge so downstream scoring never sees out-of-range values.
func Load(path string) ([]entities.Seller, []entities.Listing, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read seed file: %w", err)
	}

	var file File
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("decode seed file: %w", err)
	}
	return file.Build()
}

func (f File) Build() ([]entities.Seller, []entities.Listing, error) {
	if len(f.Sellers) == 0 {
		return nil, nil, errors.New("seed requires at least one seller")
	}
	if len(f.Listings) == 0 {
		return nil, nil, errors.New("seed requires at least one listing")
	}

	sellerIDs := make(map[string]struct{}, len(f.Sellers))
	sellers := make([]entities.Seller, 0, len(f.Sellers))
	for _, row := range f.Sellers {
		if row.SellerID == "" || row.Name == "" {
			return nil, nil, fmt.Errorf("seed seller %q needs an id and a name", row.SellerID)
		}
		if _, dup := sellerIDs[row.SellerID]; dup {
			return nil, nil, fmt.Errorf("seed seller %q is duplicated", row.SellerID)
		}
		sellerIDs[row.SellerID] = struct{}{}
		sellers = append(sellers, entities.Seller{
			SellerID: row.SellerID,
			Name:     row.Name,
			Bio:      row.Bio,
			Verified: row.Verified,
		})
	}

	listings := make([]entities.Listing, 0, len(f.Listings))
	for _, row := range f.Listings {
		if row.ListingID == "" || row.Title == "" {
			return nil, nil, fmt.Errorf("seed listing %q needs an id and a title", row.ListingID)
		}
		if _, known := sellerIDs[row.SellerID]; !known {
			return nil, nil, fmt.Errorf("seed listing %q references unknown seller %q", row.ListingID, row.SellerID)
		}
		assetType := entities.AssetType(row.Type)
		if !entities.IsSupportedAssetType(assetType) {
			return nil, nil, fmt.Errorf("seed listing %q has unsupported type %q", row.ListingID, row.Type)
		}
		createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("seed listing %q created_at: %w", row.ListingID, err)
		}
		likes := row.Likes
		if likes < 0 {
			likes = 0
		}
		listings = append(listings, entities.Listing{
			ListingID:   row.ListingID,
			SellerID:    row.SellerID,
			Title:       row.Title,
			Description: row.Description,
			Type:        assetType,
			PriceUSD:    row.PriceUSD,
			Tags:        append([]string(nil), row.Tags...),
			CreatedAt:   createdAt.UTC(),
			Likes:       likes,
			Metrics: entities.ListingMetrics{
				SuccessRate:      row.Metrics.SuccessRate,
				AvgSetupMinutes:  row.Metrics.AvgSetupMinutes,
				ReuseRate:        row.Metrics.ReuseRate,
				SupportScore:     row.Metrics.SupportScore,
				RefundRate:       row.Metrics.RefundRate,
				Adoption30d:      row.Metrics.Adoption30d,
				IssuesPer100Runs: row.Metrics.IssuesPer100Runs,
			}.Normalized(),
		})
	}
	return sellers, listings, nil
}
