package repositories

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"userdesk/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UsersCollection is the collection holding directory users.
const UsersCollection = "users"

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	Name      string             `bson:"name"`
	Birthday  string             `bson:"birthday"`
	Address   string             `bson:"address"`
	Contact   string             `bson:"contact"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Name:      d.Name,
		Birthday:  d.Birthday,
		Address:   d.Address,
		Contact:   d.Contact,
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
	}
}

// MongoUserRepository is a MongoDB implementation of UserRepository.
type MongoUserRepository struct {
	c *mongo.Collection
}

// NewMongoUserRepository creates a repository over db's users collection.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{c: db.Collection(UsersCollection)}
}

// Create inserts a new user and fills in its ID.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	doc := userDocument{
		ID:        primitive.NewObjectID(),
		UserID:    user.UserID,
		Name:      user.Name,
		Birthday:  user.Birthday,
		Address:   user.Address,
		Contact:   user.Contact,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
	if _, err := r.c.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to create user: %w", ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = doc.ID.Hex()
	return nil
}

// Search finds users whose name, email or contact contains query,
// case-insensitively. The password field is always projected out.
func (r *MongoUserRepository) Search(ctx context.Context, query string) ([]models.User, error) {
	cur, err := r.c.Find(ctx, userSearchFilter(query), options.Find().SetProjection(bson.M{"password": 0}))
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toModel())
	}
	return users, nil
}

func userSearchFilter(query string) bson.M {
	if query == "" {
		return bson.M{}
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"email": re},
		bson.M{"contact": re},
	}}
}
