package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"ruleset/contexts/marketplace-core/promotion-service/domain/entities"
	domainerrors "ruleset/contexts/marketplace-core/promotion-service/domain/errors"
	"ruleset/internal/shared/round"
)

// campaignRecord pairs a campaign with its own mutex so charge, click and
// status updates serialize per campaign instead of per store.
type campaignRecord struct {
	mu       sync.Mutex
	campaign entities.Campaign
}

// Store is the in-memory campaign ledger. The store-level lock guards the
// map and insertion order only; each record carries its own lock for
// mutation, so a feed build charging one campaign never blocks another.
type Store struct {
	mu    sync.RWMutex
	byID  map[string]*campaignRecord
	order []string
}

func NewStore() *Store {
	return &Store{byID: make(map[string]*campaignRecord)}
}

func (s *Store) CreateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[campaign.CampaignID]; exists {
		return domainerrors.ErrInvalidCampaignInput
	}
	s.byID[campaign.CampaignID] = &campaignRecord{campaign: campaign}
	s.order = append(s.order, campaign.CampaignID)
	return nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	record, err := s.lookup(campaignID)
	if err != nil {
		return entities.Campaign{}, err
	}
	record.mu.Lock()
	defer record.mu.Unlock()
	return record.campaign, nil
}

func (s *Store) ListCampaignsBySeller(_ context.Context, sellerID string) ([]entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	campaigns := make([]entities.Campaign, 0)
	for _, id := range s.order {
		record := s.byID[id]
		record.mu.Lock()
		campaign := record.campaign
		record.mu.Unlock()
		if campaign.SellerID == sellerID {
			campaigns = append(campaigns, campaign)
		}
	}
	return campaigns, nil
}

func (s *Store) ListActiveCampaigns(_ context.Context) ([]entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	campaigns := make([]entities.Campaign, 0)
	for _, id := range s.order {
		record := s.byID[id]
		record.mu.Lock()
		campaign := record.campaign
		record.mu.Unlock()
		if campaign.Status == entities.CampaignStatusActive {
			campaigns = append(campaigns, campaign)
		}
	}
	return campaigns, nil
}

// ChargeImpression applies one impression at the given cost as a single
// atomic unit. The tentative spend is rounded before the budget comparison
// so a budget that divides evenly into impression costs is spent exactly.
func (s *Store) ChargeImpression(_ context.Context, campaignID string, cost float64) (entities.Campaign, error) {
	record, err := s.lookup(campaignID)
	if err != nil {
		return entities.Campaign{}, err
	}
	record.mu.Lock()
	defer record.mu.Unlock()

	campaign := &record.campaign
	if campaign.Status != entities.CampaignStatusActive {
		return *campaign, domainerrors.ErrBudgetExhausted
	}
	newSpend := round.To4(campaign.SpentUSD + cost)
	if newSpend > campaign.DailyBudgetUSD {
		campaign.Status = entities.CampaignStatusExhausted
		campaign.UpdatedAt = time.Now().UTC()
		return *campaign, domainerrors.ErrBudgetExhausted
	}
	campaign.SpentUSD = newSpend
	campaign.Impressions++
	campaign.UpdatedAt = time.Now().UTC()
	return *campaign, nil
}

func (s *Store) RecordClick(_ context.Context, campaignID string) (entities.Campaign, error) {
	record, err := s.lookup(campaignID)
	if err != nil {
		return entities.Campaign{}, err
	}
	record.mu.Lock()
	defer record.mu.Unlock()
	record.campaign.Clicks++
	record.campaign.UpdatedAt = time.Now().UTC()
	return record.campaign, nil
}

func (s *Store) SetStatus(_ context.Context, campaignID string, status entities.CampaignStatus) (entities.Campaign, error) {
	if !entities.IsSupportedStatus(status) {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}
	record, err := s.lookup(campaignID)
	if err != nil {
		return entities.Campaign{}, err
	}
	record.mu.Lock()
	defer record.mu.Unlock()
	if record.campaign.Status == entities.CampaignStatusExhausted && status == entities.CampaignStatusActive {
		return entities.Campaign{}, domainerrors.ErrCampaignExhausted
	}
	record.campaign.Status = status
	record.campaign.UpdatedAt = time.Now().UTC()
	return record.campaign, nil
}

func (s *Store) lookup(campaignID string) (*campaignRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, found := s.byID[campaignID]
	if !found {
		return nil, domainerrors.ErrCampaignNotFound
	}
	return record, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
