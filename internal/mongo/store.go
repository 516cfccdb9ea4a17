// Package mongo stores weekly sessions in MongoDB, one document per user.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/qanova/timesheet/internal/domain/timesheet"
	"github.com/qanova/timesheet/internal/repository"
)

// DefaultCollection is where user documents live unless configured otherwise.
const DefaultCollection = "user_sessions"

type userSessions struct {
	UserID         string             `bson:"userId"`
	WeeklySessions timesheet.Document `bson:"weeklySessions"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty"`
}

// Store implements repository.TimesheetRepository on a MongoDB collection.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Connect dials uri and verifies the connection with a ping.
func Connect(ctx context.Context, uri, database, collection string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return NewStore(client, database, collection), nil
}

// NewStore wraps an existing client.
func NewStore(client *mongo.Client, database, collection string) *Store {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Store{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}
}

// Load returns the stored weeks of userID, or an empty map when the user has
// no document yet.
func (s *Store) Load(ctx context.Context, userID string) (timesheet.WeeklySessions, error) {
	var doc userSessions
	err := s.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return timesheet.WeeklySessions{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user sessions: %w", err)
	}
	ws, err := timesheet.FromDocument(doc.WeeklySessions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrCorruptRecord, err)
	}
	return ws, nil
}

// Save upserts the whole weekly map of userID.
func (s *Store) Save(ctx context.Context, userID string, ws timesheet.WeeklySessions) error {
	update := bson.M{"$set": bson.M{
		"weeklySessions": timesheet.ToDocument(ws),
		"updatedAt":      time.Now().UTC(),
	}}
	_, err := s.collection.UpdateOne(ctx, bson.M{"userId": userID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert user sessions: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
