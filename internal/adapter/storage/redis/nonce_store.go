package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const noncePrefix = "lottery:nonce:"

// NonceStore implements ports.SubmissionGuard. Each (participant, nonce) pair
// is remembered for ttl; the first writer wins.
type NonceStore struct {
	client *goredis.Client
}

func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{client: client}
}

// CheckAndSet reports true when the nonce had not been seen for this
// participant and records it.
func (s *NonceStore) CheckAndSet(ctx context.Context, participant string, nonce string, ttl time.Duration) (bool, error) {
	fresh, err := s.client.SetNX(ctx, nonceKey(participant, nonce), time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("recording entry nonce: %w", err)
	}
	return fresh, nil
}

func nonceKey(participant, nonce string) string {
	return noncePrefix + participant + ":" + nonce
}
