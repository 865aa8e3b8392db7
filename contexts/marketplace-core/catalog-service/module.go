package catalogservice

import (
	"log/slog"

	httpadapter "ruleset/contexts/marketplace-core/catalog-service/adapters/http"
	"ruleset/contexts/marketplace-core/catalog-service/adapters/memory"
	"ruleset/contexts/marketplace-core/catalog-service/application"
	"ruleset/contexts/marketplace-core/catalog-service/domain/entities"
	"ruleset/contexts/marketplace-core/catalog-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.ListingRepository
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(sellers []entities.Seller, listings []entities.Listing, logger *slog.Logger) Module {
	store := memory.NewStore(sellers, listings)
	module := NewModule(Dependencies{
		Repo:   store,
		Logger: logger,
	})
	module.Store = store
	return module
}
