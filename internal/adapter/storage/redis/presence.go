package redis

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// PresenceStore implements ports.PresenceTracker as a Redis set, so several
// lottery instances behind one game server share the same view.
type PresenceStore struct {
	client *goredis.Client
	key    string
}

// NewPresenceStore creates a Redis-backed presence tracker.
func NewPresenceStore(client *goredis.Client) *PresenceStore {
	return &PresenceStore{client: client, key: "lottery:online"}
}

func (s *PresenceStore) IsOnline(ctx context.Context, participant uuid.UUID) (bool, error) {
	online, err := s.client.SIsMember(ctx, s.key, participant.String()).Result()
	if err != nil {
		return false, fmt.Errorf("redis presence lookup: %w", err)
	}
	return online, nil
}

func (s *PresenceStore) SetOnline(ctx context.Context, participant uuid.UUID, online bool) error {
	var err error
	if online {
		err = s.client.SAdd(ctx, s.key, participant.String()).Err()
	} else {
		err = s.client.SRem(ctx, s.key, participant.String()).Err()
	}
	if err != nil {
		return fmt.Errorf("redis presence update: %w", err)
	}
	return nil
}
