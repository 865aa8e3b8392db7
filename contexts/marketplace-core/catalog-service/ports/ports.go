package ports

import (
	"context"

	"ruleset/contexts/marketplace-core/catalog-service/domain/entities"
)

// ListingRepository is the listing/seller data provider. The memory adapter is
// the authoritative store in the default wiring; it must preserve the original
// insertion order of listings so score ties rank stably.
type ListingRepository interface {
	ListListings(ctx context.Context) ([]entities.Listing, error)
	GetListing(ctx context.Context, listingID string) (entities.Listing, error)
	ListSellers(ctx context.Context) ([]entities.Seller, error)
	GetSeller(ctx context.Context, sellerID string) (entities.Seller, error)
	IncrementLikes(ctx context.Context, listingID string) (entities.Listing, error)
}
