package entities

import "time"

// Message is one buyer/seller message on a listing thread.
type Message struct {
	MessageID       string
	ListingID       string
	SenderUserID    string
	RecipientUserID string
	Body            string
	SentAt          time.Time
}
