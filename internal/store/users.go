package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/yourorg/accountsvc/internal/models"
)

var (
	// ErrNotFound is returned when no user matches the username.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the unique index rejects a write.
	ErrDuplicateUsername = errors.New("username already taken")
)

// UserStore wraps the users collection, keyed by unique username.
type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(c *Client) *UserStore {
	return &UserStore{coll: c.db.Collection(usersCollection)}
}

// FindByUsername returns the full record, hash included. Only the login
// path should use this; everything response-facing goes through the
// projected variant.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return &user, nil
}

// FindByUsernameProjected returns the profile with the password hash
// projected out at the database, so it never crosses the wire.
func (s *UserStore) FindByUsernameProjected(ctx context.Context, username string) (*models.PublicUser, error) {
	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	var user models.PublicUser
	err := s.coll.FindOne(ctx, bson.M{"username": username}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return &user, nil
}

// Save validates and inserts a new user record, assigning its identifier.
// The unique index is the authoritative duplicate guard; a duplicate-key
// rejection surfaces as ErrDuplicateUsername.
func (s *UserStore) Save(ctx context.Context, u *models.User) (*models.User, error) {
	if err := ValidateUser(u); err != nil {
		return nil, err
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if _, err := s.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return u, nil
}
