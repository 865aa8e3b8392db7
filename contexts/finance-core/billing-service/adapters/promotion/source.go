package promotionadapter

import (
	"context"

	"ruleset/contexts/finance-core/billing-service/ports"
	promotionentities "ruleset/contexts/marketplace-core/promotion-service/domain/entities"
	promotionports "ruleset/contexts/marketplace-core/promotion-service/ports"
)

// Source aggregates a seller's promotion ledger for the finance summary.
type Source struct {
	Campaigns promotionports.CampaignRepository
}

func NewSource(campaigns promotionports.CampaignRepository) Source {
	return Source{Campaigns: campaigns}
}

func (s Source) SellerAdSpend(ctx context.Context, sellerID string) (ports.AdSpendSummary, error) {
	campaigns, err := s.Campaigns.ListCampaignsBySeller(ctx, sellerID)
	if err != nil {
		return ports.AdSpendSummary{}, err
	}
	summary := ports.AdSpendSummary{}
	for _, campaign := range campaigns {
		summary.SpendUSD += campaign.SpentUSD
		if campaign.Status == promotionentities.CampaignStatusActive {
			summary.ActivePromotionCount++
		}
	}
	return summary, nil
}
