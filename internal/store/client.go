package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/yourorg/accountsvc/internal/models"
)

const usersCollection = "users"

// Client wraps the MongoDB connection and the service database.
type Client struct {
	mc *mongo.Client
	db *mongo.Database
}

// Connect opens a MongoDB client from the connection string and verifies the
// server is reachable. A failed ping is a hard error so startup can refuse to
// continue with an unusable store.
func Connect(ctx context.Context, uri, dbName string) (*Client, error) {
	mc, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := mc.Ping(ctx, nil); err != nil {
		_ = mc.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Client{mc: mc, db: mc.Database(dbName)}, nil
}

// Ping checks that the server still responds.
func (c *Client) Ping(ctx context.Context) error {
	return c.mc.Ping(ctx, nil)
}

// Disconnect closes the underlying connection pool.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.mc.Disconnect(ctx)
}

// userSchema is the server-side half of the field constraints; the same
// rules are checked in Go before every Save (see validation.go).
func userSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"username", "password", "fullName", "gender", "dateOfBirth", "country"},
			"properties": bson.M{
				"username": bson.M{
					"bsonType":  "string",
					"minLength": models.UsernameMinLen,
					"maxLength": models.UsernameMaxLen,
				},
				"password": bson.M{"bsonType": "string"},
				"fullName": bson.M{
					"bsonType": "string",
					"pattern":  "^[A-Za-z\\s]+$",
				},
				"gender": bson.M{
					"enum": []string{models.GenderMale, models.GenderFemale, models.GenderOther},
				},
				"dateOfBirth": bson.M{"bsonType": "date"},
				"country":     bson.M{"bsonType": "string"},
			},
		},
	}
}

// EnsureSchema creates the users collection with its validator and the
// unique username index. Safe to run on every startup.
func (c *Client) EnsureSchema(ctx context.Context) error {
	err := c.db.CreateCollection(ctx, usersCollection,
		options.CreateCollection().SetValidator(userSchema()))
	if err != nil {
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != 48 { // 48 = NamespaceExists
			return fmt.Errorf("create users collection: %w", err)
		}
		// Collection already exists; refresh the validator instead.
		res := c.db.RunCommand(ctx, bson.D{
			{Key: "collMod", Value: usersCollection},
			{Key: "validator", Value: userSchema()},
		})
		if err := res.Err(); err != nil {
			return fmt.Errorf("update users validator: %w", err)
		}
	}

	_, err = c.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}
