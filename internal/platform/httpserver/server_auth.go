package httpserver

import (
	"errors"
	"net/http"
	"strings"

	accountapp "ruleset/contexts/identity-access/account-service/application"
	accounterrors "ruleset/contexts/identity-access/account-service/domain/errors"
	accounthttp "ruleset/contexts/identity-access/account-service/transport/http"
)

func writeAccountError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{Code: code, Message: message})
}

func writeAccountDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrUserNotFound):
		writeAccountError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, accounterrors.ErrEmailAlreadyRegistered):
		writeAccountError(w, http.StatusConflict, "email_already_registered", err.Error())
	case errors.Is(err, accounterrors.ErrSellerProfileRequired):
		writeAccountError(w, http.StatusBadRequest, "seller_profile_required", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidRegistration):
		writeAccountError(w, http.StatusBadRequest, "invalid_registration", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidCredentials):
		writeAccountError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidToken):
		writeAccountError(w, http.StatusUnauthorized, "invalid_token", err.Error())
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// authenticate resolves the bearer token into verified claims. Subject is the
// user id.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (accountapp.AuthClaims, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		writeAccountError(w, http.StatusUnauthorized, "unauthorized", "Authorization bearer token is required")
		return accountapp.AuthClaims{}, false
	}
	claims, err := s.accounts.Service.VerifyToken(strings.TrimSpace(parts[1]))
	if err != nil {
		writeAccountError(w, http.StatusUnauthorized, "invalid_token", "bearer token is invalid or expired")
		return accountapp.AuthClaims{}, false
	}
	return claims, true
}

func (s *Server) requireRole(w http.ResponseWriter, r *http.Request, role string) (accountapp.AuthClaims, bool) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return accountapp.AuthClaims{}, false
	}
	if claims.Role != role {
		writeAccountError(w, http.StatusForbidden, "forbidden", "this endpoint requires the "+role+" role")
		return accountapp.AuthClaims{}, false
	}
	return claims, true
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.RegisterRequest
	if !s.decodeJSON(w, r, &req, writeAccountError) {
		return
	}
	resp, err := s.accounts.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	s.telemetry.RecordEvent("auth.register", "user", resp.User.UserID, map[string]any{
		"user_id": resp.User.UserID,
		"role":    resp.User.Role,
	})
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.LoginRequest
	if !s.decodeJSON(w, r, &req, writeAccountError) {
		return
	}
	resp, err := s.accounts.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	s.telemetry.RecordEvent("auth.login", "user", resp.User.UserID, map[string]any{
		"user_id": resp.User.UserID,
		"role":    resp.User.Role,
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.accounts.Handler.MeHandler(r.Context(), claims.Subject)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDemoAccounts(w http.ResponseWriter, r *http.Request) {
	resp, err := s.accounts.Handler.DemoAccountsHandler(r.Context())
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
