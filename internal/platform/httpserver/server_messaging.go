package httpserver

import (
	"errors"
	"net/http"
	"strings"

	messagingerrors "ruleset/contexts/marketplace-core/messaging-service/domain/errors"
	messaginghttp "ruleset/contexts/marketplace-core/messaging-service/transport/http"
)

func writeMessagingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, messaginghttp.ErrorResponse{Code: code, Message: message})
}

func writeMessagingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, messagingerrors.ErrSellerContactUnavailable):
		writeMessagingError(w, http.StatusNotFound, "seller_contact_unavailable", err.Error())
	case errors.Is(err, messagingerrors.ErrInvalidMessageInput):
		writeMessagingError(w, http.StatusBadRequest, "invalid_message_input", err.Error())
	default:
		writeMessagingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req messaginghttp.SendMessageRequest
	if !s.decodeJSON(w, r, &req, writeMessagingError) {
		return
	}
	resp, err := s.messaging.Handler.SendMessageHandler(r.Context(), claims.Subject, req)
	if err != nil {
		writeMessagingDomainError(w, err)
		return
	}
	s.telemetry.RecordEvent("message.sent", "message", resp.Message.MessageID, resp.Message)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSendReply(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireRole(w, r, "seller")
	if !ok {
		return
	}
	var req messaginghttp.SendReplyRequest
	if !s.decodeJSON(w, r, &req, writeMessagingError) {
		return
	}
	resp, err := s.messaging.Handler.SendReplyHandler(r.Context(), claims.Subject, req)
	if err != nil {
		writeMessagingDomainError(w, err)
		return
	}
	s.telemetry.RecordEvent("message.reply", "message", resp.Message.MessageID, resp.Message)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleMessageThread(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	listingID := strings.TrimSpace(query.Get("listing_id"))
	withUserID := strings.TrimSpace(query.Get("with_user"))
	if listingID == "" || withUserID == "" {
		writeMessagingError(w, http.StatusBadRequest, "invalid_thread_request", "listing_id and with_user are required")
		return
	}
	resp, err := s.messaging.Handler.ThreadHandler(r.Context(), listingID, claims.Subject, withUserID)
	if err != nil {
		writeMessagingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSellerSLA(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireRole(w, r, "seller")
	if !ok {
		return
	}
	resp, err := s.messaging.Handler.SellerSLAHandler(r.Context(), claims.Subject)
	if err != nil {
		writeMessagingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
