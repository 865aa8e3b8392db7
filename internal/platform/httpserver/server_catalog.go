package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	catalogerrors "ruleset/contexts/marketplace-core/catalog-service/domain/errors"
	cataloghttp "ruleset/contexts/marketplace-core/catalog-service/transport/http"
)

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{Code: code, Message: message})
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrListingNotFound):
		writeCatalogError(w, http.StatusNotFound, "listing_not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrSellerNotFound):
		writeCatalogError(w, http.StatusNotFound, "seller_not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrInvalidListRequest):
		writeCatalogError(w, http.StatusBadRequest, "invalid_list_request", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.catalog.Handler.ListListingsHandler(
		r.Context(),
		query.Get("q"),
		query.Get("type"),
		query.Get("sort"),
	)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.GetListingHandler(r.Context(), r.PathValue("listing_id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLikeProduct(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.LikeListingHandler(r.Context(), r.PathValue("listing_id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	s.telemetry.RecordEvent("product.like", "listing", resp.Listing.ListingID, map[string]any{
		"listing_id": resp.Listing.ListingID,
		"likes":      resp.Listing.Likes,
	})
	s.telemetry.RecordScore("product_efficiency", "listing", resp.Listing.ListingID, resp.Listing.Score.EfficiencyScore, resp.Listing.Score)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProductLeaderboard(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ProductLeaderboardHandler(r.Context(), leaderboardLimit(r))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSellerLeaderboard(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.SellerLeaderboardHandler(r.Context(), leaderboardLimit(r))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	for _, row := range resp.Items {
		s.telemetry.RecordScore("seller_business_health", "seller", row.SellerID, row.BusinessHealthScore, row)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListingPolicy(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListingPolicyHandler(r.Context(), r.PathValue("listing_id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func leaderboardLimit(r *http.Request) int {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return limit
}
