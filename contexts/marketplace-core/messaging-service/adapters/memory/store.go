package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ruleset/contexts/marketplace-core/messaging-service/domain/entities"
)

// Store keeps the message history in memory, append-only.
type Store struct {
	mu       sync.RWMutex
	messages []entities.Message
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AppendMessage(_ context.Context, message entities.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
	return nil
}

func (s *Store) ListThread(_ context.Context, listingID, userA, userB string) ([]entities.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	thread := make([]entities.Message, 0)
	for _, message := range s.messages {
		if message.ListingID != listingID {
			continue
		}
		direct := message.SenderUserID == userA && message.RecipientUserID == userB
		reverse := message.SenderUserID == userB && message.RecipientUserID == userA
		if direct || reverse {
			thread = append(thread, message)
		}
	}
	sort.SliceStable(thread, func(i, j int) bool {
		return thread[i].SentAt.Before(thread[j].SentAt)
	})
	return thread, nil
}

func (s *Store) ListBySellerUser(_ context.Context, sellerUserID string) ([]entities.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := make([]entities.Message, 0)
	for _, message := range s.messages {
		if message.SenderUserID == sellerUserID || message.RecipientUserID == sellerUserID {
			history = append(history, message)
		}
	}
	return history, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
