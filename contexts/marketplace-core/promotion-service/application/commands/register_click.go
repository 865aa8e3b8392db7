package commands

import (
	"context"
	"log/slog"
	"strings"

	"ruleset/contexts/marketplace-core/promotion-service/application"
	"ruleset/contexts/marketplace-core/promotion-service/domain/entities"
	"ruleset/contexts/marketplace-core/promotion-service/ports"
)

type RegisterClickUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

// Execute increments the click counter only. CPM billing is impression-based;
// clicks never touch the budget.
func (uc RegisterClickUseCase) Execute(ctx context.Context, campaignID string) (entities.Campaign, error) {
	updated, err := uc.Campaigns.RecordClick(ctx, strings.TrimSpace(campaignID))
	if err != nil {
		return entities.Campaign{}, err
	}
	application.ResolveLogger(uc.Logger).Debug("promotion click registered",
		"event", "promotion_click_registered",
		"module", "marketplace-core/promotion-service",
		"layer", "application",
		"campaign_id", updated.CampaignID,
		"clicks", updated.Clicks,
	)
	return updated, nil
}
