package ports

import (
	"context"
	"time"

	"ruleset/contexts/marketplace-core/messaging-service/domain/entities"
)

type MessageRepository interface {
	AppendMessage(ctx context.Context, message entities.Message) error
	// ListThread returns the messages exchanged between the two users on one
	// listing, oldest first.
	ListThread(ctx context.Context, listingID, userA, userB string) ([]entities.Message, error)
	// ListBySellerUser returns every message sent or received by the seller
	// user, in no guaranteed order.
	ListBySellerUser(ctx context.Context, sellerUserID string) ([]entities.Message, error)
}

// SellerDirectory resolves a seller profile to its primary account user, the
// recipient of buyer messages.
type SellerDirectory interface {
	PrimarySellerUserID(ctx context.Context, sellerID string) (string, bool, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
