package catalogadapter

import (
	"context"
	"errors"

	"ruleset/contexts/finance-core/billing-service/ports"
	catalogapp "ruleset/contexts/marketplace-core/catalog-service/application"
	catalogerrors "ruleset/contexts/marketplace-core/catalog-service/domain/errors"
)

// Source exposes catalog listing pricing to billing.
type Source struct {
	Catalog catalogapp.Service
}

func NewSource(catalog catalogapp.Service) Source {
	return Source{Catalog: catalog}
}

func (s Source) GetListingPricing(ctx context.Context, listingID string) (ports.ListingPricing, bool, error) {
	row, err := s.Catalog.GetListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrListingNotFound) {
			return ports.ListingPricing{}, false, nil
		}
		return ports.ListingPricing{}, false, err
	}
	return ports.ListingPricing{
		ListingID: row.Listing.ListingID,
		SellerID:  row.Listing.SellerID,
		PriceUSD:  row.Listing.PriceUSD,
	}, true, nil
}
