package application

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ruleset/contexts/identity-access/account-service/domain/entities"
	domainerrors "ruleset/contexts/identity-access/account-service/domain/errors"
	"ruleset/contexts/identity-access/account-service/ports"
)

const (
	minPasswordLength = 8
	demoPassword      = "demo1234"
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	SellerID string
}

type Service struct {
	Users   ports.UserRepository
	Sellers ports.SellerDirectory
	Tokens  TokenIssuer
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

func (s Service) Register(ctx context.Context, input RegisterInput) (entities.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	role := entities.Role(strings.TrimSpace(input.Role))
	sellerID := strings.TrimSpace(input.SellerID)

	if email == "" || name == "" || !entities.IsSupportedRole(role) || len(input.Password) < minPasswordLength {
		return entities.User{}, "", domainerrors.ErrInvalidRegistration
	}
	if _, exists, err := s.Users.GetUserByEmail(ctx, email); err != nil {
		return entities.User{}, "", err
	} else if exists {
		return entities.User{}, "", domainerrors.ErrEmailAlreadyRegistered
	}
	if role == entities.RoleSeller {
		if sellerID == "" {
			return entities.User{}, "", domainerrors.ErrSellerProfileRequired
		}
		if _, found, err := s.Sellers.GetSeller(ctx, sellerID); err != nil {
			return entities.User{}, "", err
		} else if !found {
			return entities.User{}, "", domainerrors.ErrSellerProfileRequired
		}
	} else {
		sellerID = ""
	}

	user, err := s.createUser(ctx, email, name, role, sellerID, input.Password)
	if err != nil {
		return entities.User{}, "", err
	}
	token, err := s.Tokens.Issue(user, s.Clock.Now().UTC())
	if err != nil {
		return entities.User{}, "", err
	}

	ResolveLogger(s.Logger).Info("user registered",
		"event", "user_registered",
		"module", "identity-access/account-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", string(user.Role),
	)
	return user, token, nil
}

func (s Service) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	user, found, err := s.Users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return entities.User{}, "", err
	}
	if !found {
		return entities.User{}, "", domainerrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.User{}, "", domainerrors.ErrInvalidCredentials
	}
	token, err := s.Tokens.Issue(user, s.Clock.Now().UTC())
	if err != nil {
		return entities.User{}, "", err
	}

	ResolveLogger(s.Logger).Info("user logged in",
		"event", "user_logged_in",
		"module", "identity-access/account-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", string(user.Role),
	)
	return user, token, nil
}

func (s Service) GetUser(ctx context.Context, userID string) (entities.User, error) {
	return s.Users.GetUserByID(ctx, strings.TrimSpace(userID))
}

func (s Service) VerifyToken(tokenString string) (AuthClaims, error) {
	return s.Tokens.Verify(tokenString)
}

// PrimarySellerUserID resolves a seller profile to its first registered
// seller account. Messaging routes buyer messages through it.
func (s Service) PrimarySellerUserID(ctx context.Context, sellerID string) (string, bool, error) {
	user, found, err := s.Users.FindPrimarySellerUser(ctx, strings.TrimSpace(sellerID))
	if err != nil || !found {
		return "", false, err
	}
	return user.UserID, true, nil
}

// BootstrapDemoUsers seeds one buyer, one seller account per catalog seller
// and one admin, all sharing the demo password. A populated store is left
// untouched.
func (s Service) BootstrapDemoUsers(ctx context.Context) error {
	count, err := s.Users.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := s.createUser(ctx, "buyer@demo.local", "Demo Buyer", entities.RoleBuyer, "", demoPassword); err != nil {
		return err
	}

	sellers, err := s.Sellers.ListSellers(ctx)
	if err != nil {
		return err
	}
	for _, seller := range sellers {
		local := strings.ToLower(strings.ReplaceAll(seller.Name, " ", ""))
		if _, err := s.createUser(ctx, local+"@demo.local", seller.Name+" Seller", entities.RoleSeller, seller.SellerID, demoPassword); err != nil {
			return err
		}
	}

	if _, err := s.createUser(ctx, "admin@demo.local", "Marketplace Admin", entities.RoleAdmin, "", demoPassword); err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("demo users bootstrapped",
		"event", "demo_users_bootstrapped",
		"module", "identity-access/account-service",
		"layer", "application",
		"seller_accounts", len(sellers),
	)
	return nil
}

func (s Service) createUser(ctx context.Context, email, name string, role entities.Role, sellerID, password string) (entities.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}
	userID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.User{}, err
	}
	user := entities.User{
		UserID:       userID,
		Email:        email,
		Name:         name,
		Role:         role,
		SellerID:     sellerID,
		PasswordHash: string(hash),
		CreatedAt:    s.Clock.Now().UTC(),
	}
	if err := s.Users.CreateUser(ctx, user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}
