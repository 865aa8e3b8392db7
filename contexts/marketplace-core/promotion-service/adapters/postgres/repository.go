package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ruleset/contexts/marketplace-core/promotion-service/domain/entities"
	domainerrors "ruleset/contexts/marketplace-core/promotion-service/domain/errors"
	"ruleset/internal/shared/round"
)

// Repository is the durable campaign ledger. Charges take a row lock so the
// budget check and spend update form one atomic unit.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&campaignModel{})
}

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	row := campaignModelFromEntity(campaign)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidCampaignInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListCampaignsBySeller(ctx context.Context, sellerID string) ([]entities.Campaign, error) {
	var rows []campaignModel
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", strings.TrimSpace(sellerID)).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) ListActiveCampaigns(ctx context.Context) ([]entities.Campaign, error) {
	var rows []campaignModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(entities.CampaignStatusActive)).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) ChargeImpression(ctx context.Context, campaignID string, cost float64) (entities.Campaign, error) {
	var updated entities.Campaign
	var chargeErr error
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row campaignModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("campaign_id = ?", strings.TrimSpace(campaignID)).
			First(&row).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCampaignNotFound
			}
			return err
		}

		campaign := row.toEntity()
		now := time.Now().UTC()
		if campaign.Status != entities.CampaignStatusActive {
			updated = campaign
			chargeErr = domainerrors.ErrBudgetExhausted
			return nil
		}
		newSpend := round.To4(campaign.SpentUSD + cost)
		if newSpend > campaign.DailyBudgetUSD {
			campaign.Status = entities.CampaignStatusExhausted
			campaign.UpdatedAt = now
			chargeErr = domainerrors.ErrBudgetExhausted
		} else {
			campaign.SpentUSD = newSpend
			campaign.Impressions++
			campaign.UpdatedAt = now
		}

		if err := tx.Model(&campaignModel{}).
			Where("campaign_id = ?", campaign.CampaignID).
			Updates(campaignUpdatesFromEntity(campaign)).
			Error; err != nil {
			return err
		}
		updated = campaign
		return nil
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	return updated, chargeErr
}

func (r *Repository) RecordClick(ctx context.Context, campaignID string) (entities.Campaign, error) {
	var updated entities.Campaign
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row campaignModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("campaign_id = ?", strings.TrimSpace(campaignID)).
			First(&row).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCampaignNotFound
			}
			return err
		}
		campaign := row.toEntity()
		campaign.Clicks++
		campaign.UpdatedAt = time.Now().UTC()
		if err := tx.Model(&campaignModel{}).
			Where("campaign_id = ?", campaign.CampaignID).
			Updates(campaignUpdatesFromEntity(campaign)).
			Error; err != nil {
			return err
		}
		updated = campaign
		return nil
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	return updated, nil
}

func (r *Repository) SetStatus(ctx context.Context, campaignID string, status entities.CampaignStatus) (entities.Campaign, error) {
	if !entities.IsSupportedStatus(status) {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}
	var updated entities.Campaign
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row campaignModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("campaign_id = ?", strings.TrimSpace(campaignID)).
			First(&row).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCampaignNotFound
			}
			return err
		}
		campaign := row.toEntity()
		if campaign.Status == entities.CampaignStatusExhausted && status == entities.CampaignStatusActive {
			return domainerrors.ErrCampaignExhausted
		}
		campaign.Status = status
		campaign.UpdatedAt = time.Now().UTC()
		if err := tx.Model(&campaignModel{}).
			Where("campaign_id = ?", campaign.CampaignID).
			Updates(campaignUpdatesFromEntity(campaign)).
			Error; err != nil {
			return err
		}
		updated = campaign
		return nil
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	return updated, nil
}

type campaignModel struct {
	CampaignID     string    `gorm:"column:campaign_id;primaryKey"`
	SellerID       string    `gorm:"column:seller_id;index"`
	ListingID      string    `gorm:"column:listing_id"`
	BidCPMUSD      float64   `gorm:"column:bid_cpm_usd"`
	DailyBudgetUSD float64   `gorm:"column:daily_budget_usd"`
	SpentUSD       float64   `gorm:"column:spent_usd"`
	Impressions    int       `gorm:"column:impressions"`
	Clicks         int       `gorm:"column:clicks"`
	Status         string    `gorm:"column:status;index"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string {
	return "promotion_campaigns"
}

func campaignModelFromEntity(item entities.Campaign) campaignModel {
	return campaignModel{
		CampaignID:     strings.TrimSpace(item.CampaignID),
		SellerID:       strings.TrimSpace(item.SellerID),
		ListingID:      strings.TrimSpace(item.ListingID),
		BidCPMUSD:      item.BidCPMUSD,
		DailyBudgetUSD: item.DailyBudgetUSD,
		SpentUSD:       item.SpentUSD,
		Impressions:    item.Impressions,
		Clicks:         item.Clicks,
		Status:         string(item.Status),
		CreatedAt:      item.CreatedAt.UTC(),
		UpdatedAt:      item.UpdatedAt.UTC(),
	}
}

func campaignUpdatesFromEntity(item entities.Campaign) map[string]any {
	return map[string]any{
		"spent_usd":   item.SpentUSD,
		"impressions": item.Impressions,
		"clicks":      item.Clicks,
		"status":      string(item.Status),
		"updated_at":  item.UpdatedAt.UTC(),
	}
}

func (m campaignModel) toEntity() entities.Campaign {
	return entities.Campaign{
		CampaignID:     m.CampaignID,
		SellerID:       m.SellerID,
		ListingID:      m.ListingID,
		BidCPMUSD:      m.BidCPMUSD,
		DailyBudgetUSD: m.DailyBudgetUSD,
		SpentUSD:       m.SpentUSD,
		Impressions:    m.Impressions,
		Clicks:         m.Clicks,
		Status:         entities.CampaignStatus(m.Status),
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

func toEntities(rows []campaignModel) []entities.Campaign {
	items := make([]entities.Campaign, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
