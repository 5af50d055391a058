package service

import (
	"context"
	"fmt"
	"time"

	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RewardDelivery pays out prizes that were won while the winner was away.
type RewardDelivery struct {
	registry *CurrencyRegistry
	rewards  ports.RewardStore
	notifier ports.Notifier
	metrics  ports.MetricsRecorder
	clock    func() time.Time
	log      zerolog.Logger
}

// NewRewardDelivery creates a delivery service.
func NewRewardDelivery(registry *CurrencyRegistry, rewards ports.RewardStore, notifier ports.Notifier, metrics ports.MetricsRecorder, clock func() time.Time, log zerolog.Logger) *RewardDelivery {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &RewardDelivery{
		registry: registry,
		rewards:  rewards,
		notifier: notifier,
		metrics:  metrics,
		clock:    clock,
		log:      log,
	}
}

// Deliver takes every pending reward of the participant and deposits it.
// Rewards that cannot be paid now (unknown currency, failed deposit) are put
// back so the next connection retries them. Once taken, rewards are settled
// even if ctx is cancelled.
func (d *RewardDelivery) Deliver(ctx context.Context, participant uuid.UUID) ([]domain.PendingReward, error) {
	pending, err := d.rewards.Take(ctx, participant)
	if err != nil {
		return nil, fmt.Errorf("taking pending rewards: %w", err)
	}
	if len(pending) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer cancel()

	log := d.log.With().Str("participant", participant.String()).Logger()
	delivered := make([]domain.PendingReward, 0, len(pending))
	perCurrency := make(map[string]int)

	for _, reward := range pending {
		c, ok := d.registry.Get(reward.Currency)
		if !ok {
			log.Warn().Str("currency", reward.Currency).Int64("amount", reward.Amount).
				Msg("pending reward for unavailable currency, keeping it")
			d.requeue(ctx, reward, log)
			continue
		}
		if err := c.Deposit(ctx, participant, reward.Amount); err != nil {
			log.Warn().Err(err).Str("currency", reward.Currency).Int64("amount", reward.Amount).
				Msg("pending reward deposit failed, keeping it")
			d.requeue(ctx, reward, log)
			continue
		}

		delivered = append(delivered, reward)
		perCurrency[reward.Currency]++
		notify(ctx, d.notifier, log, participant,
			domain.OfflineDeliveryNotice(reward, currencyInfo(c), c.Format(reward.Amount), d.clock()))
	}

	for currency, n := range perCurrency {
		d.metrics.RewardsDelivered(currency, n)
	}
	log.Info().Int("delivered", len(delivered)).Int("kept", len(pending)-len(delivered)).Msg("offline rewards processed")
	return delivered, nil
}

func (d *RewardDelivery) requeue(ctx context.Context, reward domain.PendingReward, log zerolog.Logger) {
	if err := d.rewards.Record(ctx, reward); err != nil {
		log.Error().Err(err).
			Str("reward_id", reward.ID.String()).
			Str("currency", reward.Currency).
			Int64("amount", reward.Amount).
			Time("won_at", reward.WonAt).
			Msg("pending reward lost, manual reconciliation needed")
	}
}
