package services

import (
	"context"
	"fmt"
	"time"

	"userdesk/internal/models"
	"userdesk/internal/repositories"

	"go.uber.org/zap"
)

// IDGenerator assigns directory identifiers from a creation time.
type IDGenerator interface {
	Generate(createdAt time.Time) string
}

// UserService handles listing, searching and creating directory users.
type UserService struct {
	repo   repositories.UserRepository
	ids    IDGenerator
	events EventPublisher
	log    *zap.Logger
}

// NewUserService creates a new UserService. A nil events publisher disables
// event publication.
func NewUserService(repo repositories.UserRepository, ids IDGenerator, events EventPublisher, log *zap.Logger) *UserService {
	if events == nil {
		events = NopPublisher{}
	}
	return &UserService{
		repo:   repo,
		ids:    ids,
		events: events,
		log:    log,
	}
}

// Search returns users whose name, email or contact contains query, ignoring
// case. An empty query returns every user.
func (s *UserService) Search(ctx context.Context, query string) ([]models.User, error) {
	users, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return users, nil
}

// Create stores a new user. CreatedAt defaults to now in local time, so the
// identifier's year is the local year. UserID is always generated here, right
// before the insert.
func (s *UserService) Create(ctx context.Context, user models.User) (*models.User, error) {
	if user.Name == "" || user.Email == "" {
		return nil, ErrValidation
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.ID = ""
	user.UserID = s.ids.Generate(user.CreatedAt)

	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	publish(ctx, s.events, s.log, EventUserCreated, UserCreated{
		ID:     user.ID,
		UserID: user.UserID,
		Email:  user.Email,
	})
	return &user, nil
}
