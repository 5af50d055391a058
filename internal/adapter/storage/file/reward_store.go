package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// RewardDirName is the directory holding one file per participant.
const RewardDirName = "offline"

type rewardRecord struct {
	ID       string `yaml:"id"`
	Currency string `yaml:"currency"`
	Amount   int64  `yaml:"amount"`
	WonAt    string `yaml:"won_at"`
}

// RewardStore implements ports.RewardStore as offline/<participant>.yml lists.
type RewardStore struct {
	dir string
	mu  sync.Mutex
	log zerolog.Logger
}

// NewRewardStore stores rewards under dir/offline.
func NewRewardStore(dir string, log zerolog.Logger) *RewardStore {
	return &RewardStore{dir: filepath.Join(dir, RewardDirName), log: log}
}

func (s *RewardStore) path(participant uuid.UUID) string {
	return filepath.Join(s.dir, participant.String()+".yml")
}

func (s *RewardStore) Record(ctx context.Context, reward domain.PendingReward) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(reward.ParticipantID)
	records, err := s.read(path)
	if err != nil {
		return err
	}
	records = append(records, rewardRecord{
		ID:       reward.ID.String(),
		Currency: reward.Currency,
		Amount:   reward.Amount,
		WonAt:    reward.WonAt.Format(time.RFC3339),
	})

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode pending rewards: %w", err)
	}
	return writeAtomic(path, data)
}

// Take reads and removes the participant's file.
func (s *RewardStore) Take(ctx context.Context, participant uuid.UUID) ([]domain.PendingReward, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(participant)
	records, err := s.read(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("remove %s: %w", path, err)
	}

	rewards := make([]domain.PendingReward, 0, len(records))
	for _, rec := range records {
		rw, err := rec.toDomain(participant)
		if err != nil {
			s.log.Warn().Err(err).Str("participant", participant.String()).Msg("skipping malformed pending reward")
			continue
		}
		rewards = append(rewards, rw)
	}
	sort.SliceStable(rewards, func(i, j int) bool { return rewards[i].WonAt.Before(rewards[j].WonAt) })
	return rewards, nil
}

func (s *RewardStore) read(path string) ([]rewardRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var records []rewardRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}

func (r rewardRecord) toDomain(participant uuid.UUID) (domain.PendingReward, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		id = uuid.New()
	}
	if r.Currency == "" || r.Amount <= 0 {
		return domain.PendingReward{}, fmt.Errorf("reward %q has no currency or a non-positive amount", r.ID)
	}
	wonAt, err := time.Parse(time.RFC3339, r.WonAt)
	if err != nil {
		return domain.PendingReward{}, fmt.Errorf("reward %q: %w", r.ID, err)
	}
	return domain.PendingReward{
		ID:            id,
		ParticipantID: participant,
		Currency:      domain.NormalizeCurrencyID(r.Currency),
		Amount:        r.Amount,
		WonAt:         wonAt,
	}, nil
}
