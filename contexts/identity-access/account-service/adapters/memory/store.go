package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"ruleset/contexts/identity-access/account-service/domain/entities"
	domainerrors "ruleset/contexts/identity-access/account-service/domain/errors"
)

type Store struct {
	mu      sync.RWMutex
	byID    map[string]entities.User
	byEmail map[string]string
	order   []string
}

func NewStore() *Store {
	return &Store{
		byID:    make(map[string]entities.User),
		byEmail: make(map[string]string),
	}
}

func (s *Store) CreateUser(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[user.Email]; exists {
		return domainerrors.ErrEmailAlreadyRegistered
	}
	s.byID[user.UserID] = user
	s.byEmail[user.Email] = user.UserID
	s.order = append(s.order, user.UserID)
	return nil
}

func (s *Store) GetUserByID(_ context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, found := s.byID[userID]
	if !found {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (entities.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, found := s.byEmail[email]
	if !found {
		return entities.User{}, false, nil
	}
	return s.byID[userID], true, nil
}

func (s *Store) FindPrimarySellerUser(_ context.Context, sellerID string) (entities.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, userID := range s.order {
		user := s.byID[userID]
		if user.Role == entities.RoleSeller && user.SellerID == sellerID {
			return user, true, nil
		}
	}
	return entities.User{}, false, nil
}

func (s *Store) CountUsers(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
