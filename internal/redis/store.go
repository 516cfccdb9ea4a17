// Package redis keeps a JSON snapshot of each user's weekly sessions in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/qanova/timesheet/internal/domain/timesheet"
	"github.com/qanova/timesheet/internal/repository"
)

// DefaultKeyPrefix namespaces snapshot keys.
const DefaultKeyPrefix = "timesheet:weekly:"

// Store implements repository.TimesheetRepository on Redis string keys.
type Store struct {
	client redis.Cmdable
	prefix string
}

// Connect opens a client for addr and verifies it with a ping.
func Connect(ctx context.Context, addr, password string, db int, prefix string) (*Store, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewStore(client, prefix), client, nil
}

// NewStore wraps an existing client.
func NewStore(client redis.Cmdable, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// Key returns the Redis key holding userID's snapshot.
func (s *Store) Key(userID string) string {
	return s.prefix + userID
}

// Load returns the snapshot of userID, or an empty map when none exists.
func (s *Store) Load(ctx context.Context, userID string) (timesheet.WeeklySessions, error) {
	data, err := s.client.Get(ctx, s.Key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return timesheet.WeeklySessions{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return decode(data)
}

// Save replaces the snapshot of userID. Snapshots don't expire.
func (s *Store) Save(ctx context.Context, userID string, ws timesheet.WeeklySessions) error {
	data, err := encode(ws)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.Key(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}
	return nil
}

func encode(ws timesheet.WeeklySessions) ([]byte, error) {
	data, err := json.Marshal(timesheet.ToDocument(ws))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

func decode(data []byte) (timesheet.WeeklySessions, error) {
	var doc timesheet.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrCorruptRecord, err)
	}
	ws, err := timesheet.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrCorruptRecord, err)
	}
	return ws, nil
}
