package services

import (
	"context"
	"errors"
	"fmt"

	"userdesk/internal/models"
	"userdesk/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for admin passwords.
const PasswordCost = 10

// maxPasswordBytes is the most bcrypt reads of a password. Longer passwords
// are truncated rather than rejected.
const maxPasswordBytes = 72

// Identity is what a successful login reveals about an admin.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AdminService handles registration and login of admin accounts.
type AdminService struct {
	repo   repositories.AdminRepository
	events EventPublisher
	log    *zap.Logger
}

// NewAdminService creates a new AdminService. A nil events publisher
// disables event publication.
func NewAdminService(repo repositories.AdminRepository, events EventPublisher, log *zap.Logger) *AdminService {
	if events == nil {
		events = NopPublisher{}
	}
	return &AdminService{
		repo:   repo,
		events: events,
		log:    log,
	}
}

// Register hashes password and stores a new admin.
func (s *AdminService) Register(ctx context.Context, username, email, password string) (*models.Admin, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrValidation
	}

	hashed, err := bcrypt.GenerateFromPassword(passwordBytes(password), PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	publish(ctx, s.events, s.log, EventAdminRegistered, AdminRegistered{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
	})
	return admin, nil
}

// Login checks password against the admin stored under email.
// No token is issued; callers get the identity only.
func (s *AdminService) Login(ctx context.Context, email, password string) (*Identity, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthentication
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), passwordBytes(password)); err != nil {
		return nil, ErrAuthentication
	}

	return &Identity{ID: admin.ID, Email: admin.Email}, nil
}

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
