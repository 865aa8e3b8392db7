package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	promotionerrors "ruleset/contexts/marketplace-core/promotion-service/domain/errors"
	promotionhttp "ruleset/contexts/marketplace-core/promotion-service/transport/http"
)

func writePromotionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, promotionhttp.ErrorResponse{Code: code, Message: message})
}

func writePromotionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, promotionerrors.ErrCampaignNotFound),
		errors.Is(err, promotionerrors.ErrListingNotFound):
		writePromotionError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, promotionerrors.ErrListingNotOwned):
		writePromotionError(w, http.StatusForbidden, "listing_not_owned", err.Error())
	case errors.Is(err, promotionerrors.ErrListingNotEligible):
		writePromotionError(w, http.StatusUnprocessableEntity, "listing_not_eligible", err.Error())
	case errors.Is(err, promotionerrors.ErrBidBelowMinimum),
		errors.Is(err, promotionerrors.ErrBudgetBelowMinimum),
		errors.Is(err, promotionerrors.ErrInvalidCampaignInput):
		writePromotionError(w, http.StatusBadRequest, "invalid_campaign_input", err.Error())
	case errors.Is(err, promotionerrors.ErrCampaignExhausted),
		errors.Is(err, promotionerrors.ErrBudgetExhausted):
		writePromotionError(w, http.StatusConflict, "campaign_exhausted", err.Error())
	default:
		writePromotionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreatePromotion(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireRole(w, r, "seller")
	if !ok {
		return
	}
	var req promotionhttp.CreateCampaignRequest
	if !s.decodeJSON(w, r, &req, writePromotionError) {
		return
	}
	resp, err := s.promotions.Handler.CreateCampaignHandler(r.Context(), claims.SellerID, req)
	if err != nil {
		writePromotionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListPromotions(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireRole(w, r, "seller")
	if !ok {
		return
	}
	resp, err := s.promotions.Handler.ListCampaignsHandler(r.Context(), claims.SellerID)
	if err != nil {
		writePromotionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePromotionStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireRole(w, r, "seller")
	if !ok {
		return
	}
	var req promotionhttp.SetStatusRequest
	if !s.decodeJSON(w, r, &req, writePromotionError) {
		return
	}
	resp, err := s.promotions.Handler.SetStatusHandler(r.Context(), claims.SellerID, r.PathValue("campaign_id"), req)
	if err != nil {
		writePromotionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePromotionClick(w http.ResponseWriter, r *http.Request) {
	resp, err := s.promotions.Handler.RegisterClickHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writePromotionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDiscoveryFeed(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Absent slots takes the feed default; a supplied value, zero included,
	// clamps into the allowed range.
	slots := -1
	if raw := query.Get("slots"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writePromotionError(w, http.StatusBadRequest, "invalid_slots", "slots must be an integer")
			return
		}
		slots = parsed
	}

	resp, err := s.promotions.Handler.DiscoveryFeedHandler(
		r.Context(),
		query.Get("q"),
		query.Get("type"),
		slots,
	)
	if err != nil {
		writePromotionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
