package repositories

import (
	"context"
	"errors"

	"userdesk/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an insert violates the unique email index.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the interface for user directory data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// Search returns every user whose name, email or contact contains query,
	// ignoring case. An empty query returns all users.
	Search(ctx context.Context, query string) ([]models.User, error)
}

// AdminRepository defines the interface for admin credential data access.
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}
