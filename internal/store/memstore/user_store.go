package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/claydesk/flowtest-api/internal/domain"
	"github.com/claydesk/flowtest-api/internal/store"
)

// UserStore is an in-memory store.UserStore implementation.
type UserStore struct {
	mu       sync.Mutex
	users    []domain.User
	byName   map[string]int // username -> index into users
	nextID   int64
	timeFunc func() time.Time // Injectable for testing
}

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		byName:   make(map[string]int),
		nextID:   1,
		timeFunc: func() time.Time { return time.Now().UTC() },
	}
}

// Create assigns the next ID, stamps the creation time, and appends the
// user. The username uniqueness check and the insert happen under the same
// lock, so exactly one of two concurrent creates with the same username
// succeeds.
func (s *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[user.Username]; exists {
		return nil, store.ErrUsernameExists
	}

	user.ID = s.nextID
	user.CreatedAt = s.timeFunc()
	s.nextID++

	s.byName[user.Username] = len(s.users)
	s.users = append(s.users, *user)
	return user, nil
}

// List returns a snapshot copy of all users in insertion order.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// GetByUsername returns a copy of the user with the given username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.byName[username]; ok {
		user := s.users[i]
		return &user, nil
	}
	return nil, store.ErrUserNotFound
}

// Count reports the number of registered users.
func (s *UserStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), nil
}
