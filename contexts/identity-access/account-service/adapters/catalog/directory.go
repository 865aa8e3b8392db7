package catalogadapter

import (
	"context"
	"errors"

	catalogerrors "ruleset/contexts/marketplace-core/catalog-service/domain/errors"
	catalogports "ruleset/contexts/marketplace-core/catalog-service/ports"
	"ruleset/contexts/identity-access/account-service/ports"
)

// Directory exposes catalog sellers to the account context.
type Directory struct {
	Catalog catalogports.ListingRepository
}

func NewDirectory(catalog catalogports.ListingRepository) Directory {
	return Directory{Catalog: catalog}
}

func (d Directory) GetSeller(ctx context.Context, sellerID string) (ports.SellerRef, bool, error) {
	seller, err := d.Catalog.GetSeller(ctx, sellerID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrSellerNotFound) {
			return ports.SellerRef{}, false, nil
		}
		return ports.SellerRef{}, false, err
	}
	return ports.SellerRef{SellerID: seller.SellerID, Name: seller.Name}, true, nil
}

func (d Directory) ListSellers(ctx context.Context) ([]ports.SellerRef, error) {
	sellers, err := d.Catalog.ListSellers(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]ports.SellerRef, 0, len(sellers))
	for _, seller := range sellers {
		refs = append(refs, ports.SellerRef{SellerID: seller.SellerID, Name: seller.Name})
	}
	return refs, nil
}
