package accountservice

import (
	"log/slog"
	"time"

	httpadapter "ruleset/contexts/identity-access/account-service/adapters/http"
	"ruleset/contexts/identity-access/account-service/adapters/memory"
	"ruleset/contexts/identity-access/account-service/application"
	"ruleset/contexts/identity-access/account-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Users    ports.UserRepository
	Sellers  ports.SellerDirectory
	Secret   []byte
	TokenTTL time.Duration
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Users:   deps.Users,
		Sellers: deps.Sellers,
		Tokens:  application.TokenIssuer{Secret: deps.Secret, TTL: deps.TokenTTL},
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

func NewInMemoryModule(sellers ports.SellerDirectory, secret []byte, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Users:   store,
		Sellers: sellers,
		Secret:  secret,
		Clock:   store,
		IDGen:   store,
		Logger:  logger,
	})
	module.Store = store
	return module
}
