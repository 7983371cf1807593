package repositories

import (
	"context"
	"errors"
	"fmt"

	"userdesk/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminsCollection is the collection holding admin credentials.
const AdminsCollection = "admins"

type adminDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

// MongoAdminRepository is a MongoDB implementation of AdminRepository.
type MongoAdminRepository struct {
	c *mongo.Collection
}

// NewMongoAdminRepository creates a repository over db's admins collection.
func NewMongoAdminRepository(db *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{c: db.Collection(AdminsCollection)}
}

// Create inserts a new admin and fills in its ID.
func (r *MongoAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	doc := adminDocument{
		ID:       primitive.NewObjectID(),
		Username: admin.Username,
		Email:    admin.Email,
		Password: admin.Password,
	}
	if _, err := r.c.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to create admin: %w", ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	admin.ID = doc.ID.Hex()
	return nil
}

// GetByEmail loads an admin by exact email.
func (r *MongoAdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var doc adminDocument
	if err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("admin with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get admin by email %s: %w", email, err)
	}
	return &models.Admin{
		ID:       doc.ID.Hex(),
		Username: doc.Username,
		Email:    doc.Email,
		Password: doc.Password,
	}, nil
}
