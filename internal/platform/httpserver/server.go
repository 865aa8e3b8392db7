package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	billingservice "ruleset/contexts/finance-core/billing-service"
	accountservice "ruleset/contexts/identity-access/account-service"
	catalogservice "ruleset/contexts/marketplace-core/catalog-service"
	messagingservice "ruleset/contexts/marketplace-core/messaging-service"
	promotionservice "ruleset/contexts/marketplace-core/promotion-service"
	"ruleset/internal/platform/telemetry"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "ruleset/internal/platform/httpserver/docs"
)

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	catalog    catalogservice.Module
	promotions promotionservice.Module
	messaging  messagingservice.Module
	accounts   accountservice.Module
	billing    billingservice.Module

	telemetry *telemetry.Journal
}

func New(
	catalog catalogservice.Module,
	promotions promotionservice.Module,
	messaging messagingservice.Module,
	accounts accountservice.Module,
	billing billingservice.Module,
	journal *telemetry.Journal,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		catalog:    catalog,
		promotions: promotions,
		messaging:  messaging,
		accounts:   accounts,
		billing:    billing,
		telemetry:  journal,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/health", s.handleHealth)

	s.mux.HandleFunc("GET /api/demo/accounts", s.handleDemoAccounts)
	s.mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	s.mux.HandleFunc("GET /api/auth/me", s.handleMe)

	s.mux.HandleFunc("GET /api/products", s.handleListProducts)
	s.mux.HandleFunc("GET /api/products/{listing_id}", s.handleGetProduct)
	s.mux.HandleFunc("POST /api/products/{listing_id}/like", s.handleLikeProduct)
	s.mux.HandleFunc("GET /api/leaderboard/products", s.handleProductLeaderboard)
	s.mux.HandleFunc("GET /api/leaderboard/sellers", s.handleSellerLeaderboard)
	s.mux.HandleFunc("GET /api/policy/products/{listing_id}", s.handleListingPolicy)

	s.mux.HandleFunc("POST /api/seller/promotions", s.handleCreatePromotion)
	s.mux.HandleFunc("GET /api/seller/promotions", s.handleListPromotions)
	s.mux.HandleFunc("POST /api/seller/promotions/{campaign_id}/status", s.handlePromotionStatus)
	s.mux.HandleFunc("POST /api/promotions/{campaign_id}/click", s.handlePromotionClick)
	s.mux.HandleFunc("GET /api/discovery/feed", s.handleDiscoveryFeed)

	s.mux.HandleFunc("POST /api/orders", s.handleCreateOrder)
	s.mux.HandleFunc("GET /api/orders/me", s.handleMyOrders)
	s.mux.HandleFunc("GET /api/seller/finance", s.handleSellerFinance)
	s.mux.HandleFunc("POST /api/seller/payouts/request", s.handleRequestPayout)
	s.mux.HandleFunc("GET /api/admin/payouts/pending", s.handlePendingPayouts)
	s.mux.HandleFunc("POST /api/admin/payouts/{payout_id}", s.handleSetPayoutStatus)

	s.mux.HandleFunc("POST /api/messages", s.handleSendMessage)
	s.mux.HandleFunc("POST /api/messages/reply", s.handleSendReply)
	s.mux.HandleFunc("GET /api/messages/thread", s.handleMessageThread)
	s.mux.HandleFunc("GET /api/sla/seller", s.handleSellerSLA)
}

type healthResponse struct {
	Status           string `json:"status"`
	TelemetryJournal bool   `json:"telemetry_journal"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:           "ok",
		TelemetryJournal: s.telemetry != nil,
	})
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any, writeError func(http.ResponseWriter, int, string, string)) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
