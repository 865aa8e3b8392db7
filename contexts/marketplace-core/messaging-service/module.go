package messagingservice

import (
	"log/slog"

	httpadapter "ruleset/contexts/marketplace-core/messaging-service/adapters/http"
	"ruleset/contexts/marketplace-core/messaging-service/adapters/memory"
	"ruleset/contexts/marketplace-core/messaging-service/application"
	"ruleset/contexts/marketplace-core/messaging-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Messages  ports.MessageRepository
	Directory ports.SellerDirectory
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Messages:  deps.Messages,
		Directory: deps.Directory,
		Clock:     deps.Clock,
		IDGen:     deps.IDGen,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(directory ports.SellerDirectory, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Messages:  store,
		Directory: directory,
		Clock:     store,
		IDGen:     store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
