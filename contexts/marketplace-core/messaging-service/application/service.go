package application

import (
	"context"
	"log/slog"
	"strings"

	"ruleset/contexts/marketplace-core/messaging-service/domain/entities"
	domainerrors "ruleset/contexts/marketplace-core/messaging-service/domain/errors"
	"ruleset/contexts/marketplace-core/messaging-service/domain/sla"
	"ruleset/contexts/marketplace-core/messaging-service/ports"
)

type SendMessageInput struct {
	ListingID  string
	FromUserID string
	ToSellerID string
	Body       string
}

type SendReplyInput struct {
	ListingID        string
	FromSellerUserID string
	ToUserID         string
	Body             string
}

type Service struct {
	Messages  ports.MessageRepository
	Directory ports.SellerDirectory
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

// SendMessage delivers a buyer message to the seller's primary account user.
func (s Service) SendMessage(ctx context.Context, input SendMessageInput) (entities.Message, error) {
	listingID := strings.TrimSpace(input.ListingID)
	fromUserID := strings.TrimSpace(input.FromUserID)
	body := strings.TrimSpace(input.Body)
	if listingID == "" || fromUserID == "" || body == "" {
		return entities.Message{}, domainerrors.ErrInvalidMessageInput
	}

	recipientID, found, err := s.Directory.PrimarySellerUserID(ctx, strings.TrimSpace(input.ToSellerID))
	if err != nil {
		return entities.Message{}, err
	}
	if !found {
		return entities.Message{}, domainerrors.ErrSellerContactUnavailable
	}
	return s.append(ctx, listingID, fromUserID, recipientID, body)
}

func (s Service) SendReply(ctx context.Context, input SendReplyInput) (entities.Message, error) {
	listingID := strings.TrimSpace(input.ListingID)
	fromUserID := strings.TrimSpace(input.FromSellerUserID)
	toUserID := strings.TrimSpace(input.ToUserID)
	body := strings.TrimSpace(input.Body)
	if listingID == "" || fromUserID == "" || toUserID == "" || body == "" {
		return entities.Message{}, domainerrors.ErrInvalidMessageInput
	}
	return s.append(ctx, listingID, fromUserID, toUserID, body)
}

func (s Service) Thread(ctx context.Context, listingID, userA, userB string) ([]entities.Message, error) {
	return s.Messages.ListThread(ctx, strings.TrimSpace(listingID), strings.TrimSpace(userA), strings.TrimSpace(userB))
}

func (s Service) SellerSLA(ctx context.Context, sellerUserID string) (sla.SellerSLAStat, error) {
	sellerUserID = strings.TrimSpace(sellerUserID)
	history, err := s.Messages.ListBySellerUser(ctx, sellerUserID)
	if err != nil {
		return sla.SellerSLAStat{}, err
	}
	return sla.Compute(sellerUserID, history), nil
}

func (s Service) append(ctx context.Context, listingID, fromUserID, toUserID, body string) (entities.Message, error) {
	messageID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Message{}, err
	}
	message := entities.Message{
		MessageID:       messageID,
		ListingID:       listingID,
		SenderUserID:    fromUserID,
		RecipientUserID: toUserID,
		Body:            body,
		SentAt:          s.Clock.Now().UTC(),
	}
	if err := s.Messages.AppendMessage(ctx, message); err != nil {
		return entities.Message{}, err
	}
	ResolveLogger(s.Logger).Debug("message delivered",
		"event", "message_delivered",
		"module", "marketplace-core/messaging-service",
		"layer", "application",
		"listing_id", message.ListingID,
		"from_user_id", message.SenderUserID,
		"to_user_id", message.RecipientUserID,
	)
	return message, nil
}
