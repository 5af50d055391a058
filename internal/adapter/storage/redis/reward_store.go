package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RewardStore implements ports.RewardStore as one JSON list per participant.
type RewardStore struct {
	client *goredis.Client
	prefix string
	log    zerolog.Logger
}

// NewRewardStore creates a Redis-backed reward store.
func NewRewardStore(client *goredis.Client, log zerolog.Logger) *RewardStore {
	return &RewardStore{
		client: client,
		prefix: "lottery:rewards:",
		log:    log,
	}
}

func (s *RewardStore) key(participant uuid.UUID) string {
	return s.prefix + participant.String()
}

// Record appends a reward to the participant's list.
func (s *RewardStore) Record(ctx context.Context, reward domain.PendingReward) error {
	data, err := json.Marshal(reward)
	if err != nil {
		return fmt.Errorf("marshal pending reward: %w", err)
	}
	if err := s.client.RPush(ctx, s.key(reward.ParticipantID), data).Err(); err != nil {
		return fmt.Errorf("redis record reward: %w", err)
	}
	return nil
}

// Take reads and deletes the list in one MULTI/EXEC. Unreadable items are
// logged and dropped.
func (s *RewardStore) Take(ctx context.Context, participant uuid.UUID) ([]domain.PendingReward, error) {
	key := s.key(participant)

	var lrange *goredis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		lrange = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis take rewards: %w", err)
	}

	items := lrange.Val()
	rewards := make([]domain.PendingReward, 0, len(items))
	for _, item := range items {
		var rw domain.PendingReward
		if err := json.Unmarshal([]byte(item), &rw); err != nil {
			s.log.Warn().Err(err).Str("participant", participant.String()).Str("raw", item).
				Msg("skipping malformed pending reward")
			continue
		}
		rewards = append(rewards, rw)
	}
	sort.SliceStable(rewards, func(i, j int) bool { return rewards[i].WonAt.Before(rewards[j].WonAt) })
	return rewards, nil
}
