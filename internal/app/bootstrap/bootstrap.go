package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	billingservice "ruleset/contexts/finance-core/billing-service"
	billingcatalog "ruleset/contexts/finance-core/billing-service/adapters/catalog"
	billingpromotion "ruleset/contexts/finance-core/billing-service/adapters/promotion"
	accountservice "ruleset/contexts/identity-access/account-service"
	accountcatalog "ruleset/contexts/identity-access/account-service/adapters/catalog"
	accountmemory "ruleset/contexts/identity-access/account-service/adapters/memory"
	catalogservice "ruleset/contexts/marketplace-core/catalog-service"
	messagingservice "ruleset/contexts/marketplace-core/messaging-service"
	messagingaccounts "ruleset/contexts/marketplace-core/messaging-service/adapters/accounts"
	promotionservice "ruleset/contexts/marketplace-core/promotion-service"
	promotioncatalog "ruleset/contexts/marketplace-core/promotion-service/adapters/catalog"
	promotionpostgres "ruleset/contexts/marketplace-core/promotion-service/adapters/postgres"
	promotionports "ruleset/contexts/marketplace-core/promotion-service/ports"
	"ruleset/internal/platform/config"
	"ruleset/internal/platform/db"
	"ruleset/internal/platform/httpserver"
	"ruleset/internal/platform/seed"
	"ruleset/internal/platform/telemetry"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	journal  *telemetry.Journal
	relay    *telemetry.Relay
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	sellers, listings, err := seed.Load(cfg.SeedPath)
	if err != nil {
		return nil, err
	}

	var pg *db.Postgres
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
	}

	catalogModule := catalogservice.NewInMemoryModule(sellers, listings, logger)
	catalogSource := promotioncatalog.NewSource(catalogModule.Service)

	// Campaign state goes to Postgres when a DSN is configured, so budget
	// accounting survives restarts; everything else stays in memory.
	var promotionModule promotionservice.Module
	var campaigns promotionports.CampaignRepository
	if pg != nil {
		repo := promotionpostgres.NewRepository(pg.DB, logger)
		if err := repo.Migrate(context.Background()); err != nil {
			return nil, err
		}
		promotionModule = promotionservice.NewModule(promotionservice.Dependencies{
			Campaigns: repo,
			Listings:  catalogSource,
			Policy:    catalogSource,
			Clock:     promotionpostgres.SystemClock{},
			IDGen:     promotionpostgres.UUIDGenerator{},
			Logger:    logger,
		})
		campaigns = repo
	} else {
		promotionModule = promotionservice.NewInMemoryModule(catalogSource, catalogSource, logger)
		campaigns = promotionModule.Store
	}

	userStore := accountmemory.NewStore()
	accountModule := accountservice.NewModule(accountservice.Dependencies{
		Users:    userStore,
		Sellers:  accountcatalog.NewDirectory(catalogModule.Store),
		Secret:   []byte(cfg.AuthSecret),
		TokenTTL: cfg.AuthTokenTTL,
		Clock:    userStore,
		IDGen:    userStore,
		Logger:   logger,
	})
	if err := accountModule.Service.BootstrapDemoUsers(context.Background()); err != nil {
		return nil, err
	}

	messagingModule := messagingservice.NewInMemoryModule(
		messagingaccounts.NewDirectory(accountModule.Service),
		logger,
	)

	billingModule := billingservice.NewInMemoryModule(
		billingcatalog.NewSource(catalogModule.Service),
		billingpromotion.NewSource(campaigns),
		logger,
	)

	var journal *telemetry.Journal
	var relay *telemetry.Relay
	if cfg.EnableTelemetryJournal {
		journal = telemetry.NewJournal(cfg.ServiceName, cfg.TelemetryBufferSize, logger)
		var sink telemetry.Sink = telemetry.LogSink{Logger: logger}
		if pg != nil {
			pgSink := telemetry.NewPostgresSink(pg.DB)
			if err := pgSink.Migrate(context.Background()); err != nil {
				return nil, err
			}
			sink = pgSink
		}
		relay = &telemetry.Relay{Journal: journal, Sink: sink, Logger: logger}
	}

	server := httpserver.New(
		catalogModule,
		promotionModule,
		messagingModule,
		accountModule,
		billingModule,
		journal,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		journal:  journal,
		relay:    relay,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(ctx context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	if a.relay != nil {
		go a.relay.Run(ctx)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
