package postgres

import (
	"context"
	"fmt"
	"sort"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
)

// RewardRepo implements ports.RewardStore.
type RewardRepo struct {
	pool Pool
}

// NewRewardRepo creates a new RewardRepo.
func NewRewardRepo(pool Pool) *RewardRepo {
	return &RewardRepo{pool: pool}
}

// Record stores a pending reward.
func (r *RewardRepo) Record(ctx context.Context, reward domain.PendingReward) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO pending_rewards (id, participant_id, currency, amount, won_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		reward.ID, reward.ParticipantID, reward.Currency, reward.Amount, reward.WonAt,
	)
	if err != nil {
		return fmt.Errorf("insert pending reward: %w", err)
	}
	return nil
}

// Take deletes and returns the participant's rewards, oldest first.
func (r *RewardRepo) Take(ctx context.Context, participant uuid.UUID) ([]domain.PendingReward, error) {
	rows, err := r.pool.Query(ctx,
		`DELETE FROM pending_rewards WHERE participant_id = $1
		 RETURNING id, participant_id, currency, amount, won_at`,
		participant,
	)
	if err != nil {
		return nil, fmt.Errorf("take pending rewards: %w", err)
	}
	defer rows.Close()

	var rewards []domain.PendingReward
	for rows.Next() {
		var rw domain.PendingReward
		if err := rows.Scan(&rw.ID, &rw.ParticipantID, &rw.Currency, &rw.Amount, &rw.WonAt); err != nil {
			return nil, fmt.Errorf("scan pending reward: %w", err)
		}
		rewards = append(rewards, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending rewards: %w", err)
	}

	sort.SliceStable(rewards, func(i, j int) bool { return rewards[i].WonAt.Before(rewards[j].WonAt) })
	return rewards, nil
}
