package memory

import (
	"context"
	"strings"
	"sync"

	"ruleset/contexts/marketplace-core/catalog-service/domain/entities"
	domainerrors "ruleset/contexts/marketplace-core/catalog-service/domain/errors"
)

// Store is the authoritative in-memory listing/seller working set. Listings
// keep their seed order so score ties rank stably across reads.
type Store struct {
	mu sync.RWMutex

	listings     map[string]*entities.Listing
	listingOrder []string
	sellers      map[string]entities.Seller
	sellerOrder  []string
}

func NewStore(sellers []entities.Seller, listings []entities.Listing) *Store {
	s := &Store{
		listings: make(map[string]*entities.Listing, len(listings)),
		sellers:  make(map[string]entities.Seller, len(sellers)),
	}
	for _, seller := range sellers {
		if _, exists := s.sellers[seller.SellerID]; exists {
			continue
		}
		s.sellers[seller.SellerID] = seller
		s.sellerOrder = append(s.sellerOrder, seller.SellerID)
	}
	for _, listing := range listings {
		if _, exists := s.listings[listing.ListingID]; exists {
			continue
		}
		item := listing
		item.Tags = append([]string(nil), listing.Tags...)
		item.Metrics = listing.Metrics.Normalized()
		s.listings[item.ListingID] = &item
		s.listingOrder = append(s.listingOrder, item.ListingID)
	}
	return s
}

func (s *Store) ListListings(_ context.Context) ([]entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Listing, 0, len(s.listingOrder))
	for _, id := range s.listingOrder {
		items = append(items, cloneListing(*s.listings[id]))
	}
	return items, nil
}

func (s *Store) GetListing(_ context.Context, listingID string) (entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.listings[strings.TrimSpace(listingID)]
	if !exists {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	return cloneListing(*item), nil
}

func (s *Store) ListSellers(_ context.Context) ([]entities.Seller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Seller, 0, len(s.sellerOrder))
	for _, id := range s.sellerOrder {
		items = append(items, s.sellers[id])
	}
	return items, nil
}

func (s *Store) GetSeller(_ context.Context, sellerID string) (entities.Seller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.sellers[strings.TrimSpace(sellerID)]
	if !exists {
		return entities.Seller{}, domainerrors.ErrSellerNotFound
	}
	return item, nil
}

func (s *Store) IncrementLikes(_ context.Context, listingID string) (entities.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.listings[strings.TrimSpace(listingID)]
	if !exists {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	item.Likes++
	return cloneListing(*item), nil
}

func cloneListing(item entities.Listing) entities.Listing {
	item.Tags = append([]string(nil), item.Tags...)
	return item
}
