package ports

import (
	"context"
	"time"

	"ruleset/contexts/identity-access/account-service/domain/entities"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user entities.User) error
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, bool, error)
	// FindPrimarySellerUser returns the first seller account linked to the
	// seller profile, in registration order.
	FindPrimarySellerUser(ctx context.Context, sellerID string) (entities.User, bool, error)
	CountUsers(ctx context.Context) (int, error)
}

// SellerRef is the slice of a catalog seller the account context needs.
type SellerRef struct {
	SellerID string
	Name     string
}

type SellerDirectory interface {
	GetSeller(ctx context.Context, sellerID string) (SellerRef, bool, error)
	ListSellers(ctx context.Context) ([]SellerRef, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
