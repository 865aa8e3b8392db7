package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SendMessageRequest struct {
	ListingID  string `json:"listing_id"`
	ToSellerID string `json:"to_seller_id"`
	Body       string `json:"body"`
}

type SendReplyRequest struct {
	ListingID string `json:"listing_id"`
	ToUserID  string `json:"to_user_id"`
	Body      string `json:"body"`
}

type MessageDTO struct {
	MessageID       string `json:"message_id"`
	ListingID       string `json:"listing_id"`
	SenderUserID    string `json:"sender_user_id"`
	RecipientUserID string `json:"recipient_user_id"`
	Body            string `json:"body"`
	SentAt          string `json:"sent_at"`
}

type MessageResponse struct {
	Message MessageDTO `json:"message"`
}

type ThreadResponse struct {
	Items []MessageDTO `json:"items"`
}

type SellerSLAResponse struct {
	SellerUserID          string  `json:"seller_user_id"`
	Conversations         int     `json:"conversations"`
	AvgFirstResponseHours float64 `json:"avg_first_response_hours"`
	OnTimeRatePercent     float64 `json:"on_time_rate_percent"`
}
