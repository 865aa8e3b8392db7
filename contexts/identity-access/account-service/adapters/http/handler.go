package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ruleset/contexts/identity-access/account-service/application"
	"ruleset/contexts/identity-access/account-service/domain/entities"
	httptransport "ruleset/contexts/identity-access/account-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, request httptransport.RegisterRequest) (httptransport.AuthResponse, error) {
	user, token, err := h.Service.Register(ctx, application.RegisterInput{
		Email:    request.Email,
		Password: request.Password,
		Name:     request.Name,
		Role:     request.Role,
		SellerID: request.SellerID,
	})
	if err != nil {
		return httptransport.AuthResponse{}, err
	}
	return httptransport.AuthResponse{User: mapUser(user), Token: token}, nil
}

func (h Handler) LoginHandler(ctx context.Context, request httptransport.LoginRequest) (httptransport.AuthResponse, error) {
	user, token, err := h.Service.Login(ctx, request.Email, request.Password)
	if err != nil {
		return httptransport.AuthResponse{}, err
	}
	return httptransport.AuthResponse{User: mapUser(user), Token: token}, nil
}

func (h Handler) MeHandler(ctx context.Context, userID string) (httptransport.MeResponse, error) {
	user, err := h.Service.GetUser(ctx, userID)
	if err != nil {
		return httptransport.MeResponse{}, err
	}
	return httptransport.MeResponse{User: mapUser(user)}, nil
}

func (h Handler) DemoAccountsHandler(ctx context.Context) (httptransport.DemoAccountsResponse, error) {
	sellers, err := h.Service.Sellers.ListSellers(ctx)
	if err != nil {
		return httptransport.DemoAccountsResponse{}, err
	}
	emails := make([]string, 0, len(sellers)+2)
	emails = append(emails, "buyer@demo.local")
	for _, seller := range sellers {
		local := strings.ToLower(strings.ReplaceAll(seller.Name, " ", ""))
		emails = append(emails, local+"@demo.local")
	}
	emails = append(emails, "admin@demo.local")
	return httptransport.DemoAccountsResponse{
		Note:     "Development-only demo identities",
		Password: "demo1234",
		Emails:   emails,
	}, nil
}

func mapUser(user entities.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		UserID:    user.UserID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		SellerID:  user.SellerID,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
}
