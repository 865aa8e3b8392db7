package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"ruleset/contexts/finance-core/billing-service/domain/entities"
	domainerrors "ruleset/contexts/finance-core/billing-service/domain/errors"
)

type Store struct {
	mu      sync.RWMutex
	orders  []entities.Order
	payouts map[string]entities.Payout
	// payoutOrder keeps insertion order for deterministic listings.
	payoutOrder []string
}

func NewStore() *Store {
	return &Store{payouts: make(map[string]entities.Payout)}
}

func (s *Store) AddOrder(_ context.Context, order entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return nil
}

func (s *Store) ListOrdersByBuyer(_ context.Context, buyerUserID string) ([]entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]entities.Order, 0)
	for _, order := range s.orders {
		if order.BuyerUserID == buyerUserID {
			matched = append(matched, order)
		}
	}
	return matched, nil
}

func (s *Store) ListOrdersBySeller(_ context.Context, sellerID string) ([]entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]entities.Order, 0)
	for _, order := range s.orders {
		if order.SellerID == sellerID {
			matched = append(matched, order)
		}
	}
	return matched, nil
}

func (s *Store) AddPayout(_ context.Context, payout entities.Payout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.payouts[payout.PayoutID]; exists {
		return domainerrors.ErrInvalidOrderInput
	}
	s.payouts[payout.PayoutID] = payout
	s.payoutOrder = append(s.payoutOrder, payout.PayoutID)
	return nil
}

func (s *Store) GetPayout(_ context.Context, payoutID string) (entities.Payout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payout, found := s.payouts[payoutID]
	if !found {
		return entities.Payout{}, domainerrors.ErrPayoutNotFound
	}
	return payout, nil
}

func (s *Store) ListPayoutsBySeller(_ context.Context, sellerID string) ([]entities.Payout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]entities.Payout, 0)
	for _, payoutID := range s.payoutOrder {
		payout := s.payouts[payoutID]
		if payout.SellerID == sellerID {
			matched = append(matched, payout)
		}
	}
	return matched, nil
}

func (s *Store) ListPendingPayouts(_ context.Context) ([]entities.Payout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]entities.Payout, 0)
	for _, payoutID := range s.payoutOrder {
		payout := s.payouts[payoutID]
		if payout.Status == entities.PayoutStatusPending {
			matched = append(matched, payout)
		}
	}
	return matched, nil
}

func (s *Store) MarkPayoutPaid(_ context.Context, payoutID string) (entities.Payout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payout, found := s.payouts[payoutID]
	if !found {
		return entities.Payout{}, domainerrors.ErrPayoutNotFound
	}
	payout.Status = entities.PayoutStatusPaid
	s.payouts[payoutID] = payout
	return payout, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
