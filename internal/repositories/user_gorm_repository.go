package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"userdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const userSearchClause = `name ILIKE ? ESCAPE '\' OR email ILIKE ? ESCAPE '\' OR contact ILIKE ? ESCAPE '\'`

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to create user: %w", ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Search retrieves users matching query on name, email or contact.
// SQLite's LOWER and LIKE only fold ASCII, so on SQLite the rows are
// filtered in Go instead.
func (r *GORMUserRepository) Search(ctx context.Context, query string) ([]models.User, error) {
	tx := r.db.WithContext(ctx).Omit("password")
	inSQL := query != "" && r.db.Dialector.Name() != "sqlite"
	if inSQL {
		pattern := "%" + escapeLike(query) + "%"
		tx = tx.Where(userSearchClause, pattern, pattern, pattern)
	}

	users := make([]models.User, 0)
	if err := tx.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	if query == "" || inSQL {
		return users, nil
	}

	needle := strings.ToLower(query)
	matched := make([]models.User, 0, len(users))
	for _, u := range users {
		if userMatches(u, needle) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// escapeLike escapes the LIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
