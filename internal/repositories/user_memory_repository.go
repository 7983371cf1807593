package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"userdesk/internal/models"

	"github.com/google/uuid"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
// Users are kept in insertion order.
type MemoryUserRepository struct {
	users  []models.User
	emails map[string]struct{}
	mu     sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		emails: make(map[string]struct{}),
	}
}

// Create adds a new user.
func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.emails[user.Email]; taken {
		return fmt.Errorf("failed to create user: %w", ErrDuplicateEmail)
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.emails[user.Email] = struct{}{}
	r.users = append(r.users, *user)
	return nil
}

// Search returns users whose name, email or contact contains query.
func (r *MemoryUserRepository) Search(_ context.Context, query string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		if needle == "" || userMatches(u, needle) {
			users = append(users, u)
		}
	}
	return users, nil
}

// userMatches reports whether name, email or contact contains needle, which
// must already be lowercased.
func userMatches(u models.User, needle string) bool {
	return strings.Contains(strings.ToLower(u.Name), needle) ||
		strings.Contains(strings.ToLower(u.Email), needle) ||
		strings.Contains(strings.ToLower(u.Contact), needle)
}
