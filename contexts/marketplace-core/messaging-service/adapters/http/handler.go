package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"ruleset/contexts/marketplace-core/messaging-service/application"
	"ruleset/contexts/marketplace-core/messaging-service/domain/entities"
	httptransport "ruleset/contexts/marketplace-core/messaging-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SendMessageHandler(ctx context.Context, fromUserID string, request httptransport.SendMessageRequest) (httptransport.MessageResponse, error) {
	message, err := h.Service.SendMessage(ctx, application.SendMessageInput{
		ListingID:  request.ListingID,
		FromUserID: fromUserID,
		ToSellerID: request.ToSellerID,
		Body:       request.Body,
	})
	if err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: mapMessage(message)}, nil
}

func (h Handler) SendReplyHandler(ctx context.Context, fromSellerUserID string, request httptransport.SendReplyRequest) (httptransport.MessageResponse, error) {
	message, err := h.Service.SendReply(ctx, application.SendReplyInput{
		ListingID:        request.ListingID,
		FromSellerUserID: fromSellerUserID,
		ToUserID:         request.ToUserID,
		Body:             request.Body,
	})
	if err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: mapMessage(message)}, nil
}

func (h Handler) ThreadHandler(ctx context.Context, listingID, userA, userB string) (httptransport.ThreadResponse, error) {
	messages, err := h.Service.Thread(ctx, listingID, userA, userB)
	if err != nil {
		return httptransport.ThreadResponse{}, err
	}
	items := make([]httptransport.MessageDTO, 0, len(messages))
	for _, message := range messages {
		items = append(items, mapMessage(message))
	}
	return httptransport.ThreadResponse{Items: items}, nil
}

func (h Handler) SellerSLAHandler(ctx context.Context, sellerUserID string) (httptransport.SellerSLAResponse, error) {
	stat, err := h.Service.SellerSLA(ctx, sellerUserID)
	if err != nil {
		return httptransport.SellerSLAResponse{}, err
	}
	return httptransport.SellerSLAResponse{
		SellerUserID:          stat.SellerUserID,
		Conversations:         stat.Conversations,
		AvgFirstResponseHours: stat.AvgFirstResponseHours,
		OnTimeRatePercent:     stat.OnTimeRatePercent,
	}, nil
}

func mapMessage(message entities.Message) httptransport.MessageDTO {
	return httptransport.MessageDTO{
		MessageID:       message.MessageID,
		ListingID:       message.ListingID,
		SenderUserID:    message.SenderUserID,
		RecipientUserID: message.RecipientUserID,
		Body:            message.Body,
		SentAt:          message.SentAt.UTC().Format(time.RFC3339),
	}
}
