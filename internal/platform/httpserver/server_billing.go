package httpserver

import (
	"errors"
	"net/http"

	billingerrors "ruleset/contexts/finance-core/billing-service/domain/errors"
	billinghttp "ruleset/contexts/finance-core/billing-service/transport/http"
)

func writeBillingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, billinghttp.ErrorResponse{Code: code, Message: message})
}

func writeBillingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, billingerrors.ErrListingNotFound):
		writeBillingError(w, http.StatusNotFound, "listing_not_found", err.Error())
	case errors.Is(err, billingerrors.ErrPayoutNotFound):
		writeBillingError(w, http.StatusNotFound, "payout_not_found", err.Error())
	case errors.Is(err, billingerrors.ErrNoPayoutAvailable):
		writeBillingError(w, http.StatusConflict, "no_payout_available", err.Error())
	case errors.Is(err, billingerrors.ErrPayoutAlreadyPaid):
		writeBillingError(w, http.StatusConflict, "payout_already_paid", err.Error())
	case errors.Is(err, billingerrors.ErrInvalidOrderInput):
		writeBillingError(w, http.StatusBadRequest, "invalid_order_input", err.Error())
	default:
		writeBillingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireRole(w, r, "buyer")
	if !ok {
		return
	}
	var req billinghttp.CreateOrderRequest
	if !s.decodeJSON(w, r, &req, writeBillingError) {
		return
	}
	resp, err := s.billing.Handler.CreateOrderHandler(r.Context(), claims.Subject, req)
	if err != nil {
		writeBillingDomainError(w, err)
		return
	}
	s.telemetry.RecordEvent("order.created", "order", resp.Order.OrderID, resp.Order)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleMyOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireRole(w, r, "buyer")
	if !ok {
		return
	}
	resp, err := s.billing.Handler.ListBuyerOrdersHandler(r.Context(), claims.Subject)
	if err != nil {
		writeBillingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSellerFinance(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireRole(w, r, "seller")
	if !ok {
		return
	}
	resp, err := s.billing.Handler.SellerFinanceHandler(r.Context(), claims.SellerID)
	if err != nil {
		writeBillingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRequestPayout(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireRole(w, r, "seller")
	if !ok {
		return
	}
	resp, err := s.billing.Handler.RequestPayoutHandler(r.Context(), claims.SellerID, claims.Subject)
	if err != nil {
		writeBillingDomainError(w, err)
		return
	}
	s.telemetry.RecordEvent("payout.requested", "payout", resp.Payout.PayoutID, resp.Payout)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handlePendingPayouts(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, "admin"); !ok {
		return
	}
	resp, err := s.billing.Handler.ListPendingPayoutsHandler(r.Context())
	if err != nil {
		writeBillingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetPayoutStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, "admin"); !ok {
		return
	}
	var req billinghttp.SetPayoutStatusRequest
	if !s.decodeJSON(w, r, &req, writeBillingError) {
		return
	}
	if req.Status != "paid" {
		writeBillingError(w, http.StatusBadRequest, "invalid_payout_status", "only the paid status can be applied")
		return
	}
	resp, err := s.billing.Handler.MarkPayoutPaidHandler(r.Context(), r.PathValue("payout_id"))
	if err != nil {
		writeBillingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
