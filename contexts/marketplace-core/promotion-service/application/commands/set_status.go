package commands

import (
	"context"
	"log/slog"
	"strings"

	"ruleset/contexts/marketplace-core/promotion-service/application"
	"ruleset/contexts/marketplace-core/promotion-service/domain/entities"
	domainerrors "ruleset/contexts/marketplace-core/promotion-service/domain/errors"
	"ruleset/contexts/marketplace-core/promotion-service/ports"
)

type SetStatusCommand struct {
	SellerID   string
	CampaignID string
	Status     string
}

type SetStatusUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

// Execute switches a campaign between active and paused. Exhausted is
// terminal: there is no budget-period reset, so leaving it is rejected.
func (uc SetStatusUseCase) Execute(ctx context.Context, cmd SetStatusCommand) (entities.Campaign, error) {
	target := entities.CampaignStatus(strings.TrimSpace(cmd.Status))
	if target != entities.CampaignStatusActive && target != entities.CampaignStatusPaused {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}

	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return entities.Campaign{}, err
	}
	if campaign.SellerID != strings.TrimSpace(cmd.SellerID) {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	if campaign.Status == entities.CampaignStatusExhausted {
		return entities.Campaign{}, domainerrors.ErrCampaignExhausted
	}

	updated, err := uc.Campaigns.SetStatus(ctx, campaign.CampaignID, target)
	if err != nil {
		return entities.Campaign{}, err
	}
	application.ResolveLogger(uc.Logger).Info("promotion campaign status changed",
		"event", "promotion_status_changed",
		"module", "marketplace-core/promotion-service",
		"layer", "application",
		"campaign_id", updated.CampaignID,
		"status", string(updated.Status),
	)
	return updated, nil
}
