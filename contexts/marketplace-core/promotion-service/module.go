package promotionservice

import (
	"log/slog"

	httpadapter "ruleset/contexts/marketplace-core/promotion-service/adapters/http"
	"ruleset/contexts/marketplace-core/promotion-service/adapters/memory"
	"ruleset/contexts/marketplace-core/promotion-service/application/commands"
	"ruleset/contexts/marketplace-core/promotion-service/application/queries"
	"ruleset/contexts/marketplace-core/promotion-service/ports"
)

type Module struct {
	Handler        httpadapter.Handler
	CreateCampaign commands.CreateCampaignUseCase
	SetStatus      commands.SetStatusUseCase
	RegisterClick  commands.RegisterClickUseCase
	ListCampaigns  queries.ListCampaignsUseCase
	BuildFeed      queries.BuildFeedUseCase
	Store          *memory.Store
}

type Dependencies struct {
	Campaigns ports.CampaignRepository
	Listings  ports.ListingSource
	Policy    ports.PolicySource
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createCampaign := commands.CreateCampaignUseCase{
		Campaigns: deps.Campaigns,
		Listings:  deps.Listings,
		Policy:    deps.Policy,
		Clock:     deps.Clock,
		IDGen:     deps.IDGen,
		Logger:    deps.Logger,
	}
	setStatus := commands.SetStatusUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}
	registerClick := commands.RegisterClickUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}
	listCampaigns := queries.ListCampaignsUseCase{
		Campaigns: deps.Campaigns,
		Listings:  deps.Listings,
		Logger:    deps.Logger,
	}
	buildFeed := queries.BuildFeedUseCase{
		Campaigns: deps.Campaigns,
		Listings:  deps.Listings,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			CreateCampaign: createCampaign,
			SetStatus:      setStatus,
			RegisterClick:  registerClick,
			ListCampaigns:  listCampaigns,
			BuildFeed:      buildFeed,
			Logger:         deps.Logger,
		},
		CreateCampaign: createCampaign,
		SetStatus:      setStatus,
		RegisterClick:  registerClick,
		ListCampaigns:  listCampaigns,
		BuildFeed:      buildFeed,
	}
}

func NewInMemoryModule(listings ports.ListingSource, policy ports.PolicySource, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Campaigns: store,
		Listings:  listings,
		Policy:    policy,
		Clock:     store,
		IDGen:     store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
