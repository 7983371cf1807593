package repositories

import (
	"context"
	"fmt"
	"sync"

	"userdesk/internal/models"

	"github.com/google/uuid"
)

// MemoryAdminRepository is an in-memory implementation of AdminRepository
// keyed by email.
type MemoryAdminRepository struct {
	admins map[string]models.Admin
	mu     sync.RWMutex
}

// NewMemoryAdminRepository creates a new instance of MemoryAdminRepository.
func NewMemoryAdminRepository() *MemoryAdminRepository {
	return &MemoryAdminRepository{
		admins: make(map[string]models.Admin),
	}
}

// Create adds a new admin.
func (r *MemoryAdminRepository) Create(_ context.Context, admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.admins[admin.Email]; taken {
		return fmt.Errorf("failed to create admin: %w", ErrDuplicateEmail)
	}
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	r.admins[admin.Email] = *admin
	return nil
}

// GetByEmail returns the admin registered under email.
func (r *MemoryAdminRepository) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.admins[email]
	if !ok {
		return nil, fmt.Errorf("admin with email %s: %w", email, ErrNotFound)
	}
	return &admin, nil
}
