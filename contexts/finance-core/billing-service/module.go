package billingservice

import (
	"log/slog"

	httpadapter "ruleset/contexts/finance-core/billing-service/adapters/http"
	"ruleset/contexts/finance-core/billing-service/adapters/memory"
	"ruleset/contexts/finance-core/billing-service/application"
	"ruleset/contexts/finance-core/billing-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Orders  ports.OrderRepository
	Payouts ports.PayoutRepository
	Catalog ports.CatalogSource
	AdSpend ports.AdSpendSource
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Orders:  deps.Orders,
		Payouts: deps.Payouts,
		Catalog: deps.Catalog,
		AdSpend: deps.AdSpend,
		Clock:   deps.Clock,
		IDGen:   deps.IDGen,
		Logger:  deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(catalog ports.CatalogSource, adSpend ports.AdSpendSource, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Orders:  store,
		Payouts: store,
		Catalog: catalog,
		AdSpend: adSpend,
		Clock:   store,
		IDGen:   store,
		Logger:  logger,
	})
	module.Store = store
	return module
}
