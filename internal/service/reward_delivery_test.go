package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"weekly-lottery/internal/adapter/currency"
	"weekly-lottery/internal/adapter/storage/memory"
	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRewardDelivery_DeliversEverything(t *testing.T) {
	registry := NewCurrencyRegistry()
	tokens, coins := newTokens(), newCoins()
	require.NoError(t, registry.Register(tokens))
	require.NoError(t, registry.Register(coins))

	store := memory.NewRewardStore()
	notifier := &recordingNotifier{}
	p := uuid.New()
	wonAt := time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(context.Background(), domain.NewPendingReward(p, "tokens", 100, wonAt)))
	require.NoError(t, store.Record(context.Background(), domain.NewPendingReward(p, "coins", 250, wonAt.AddDate(0, 0, 7))))

	d := NewRewardDelivery(registry, store, notifier, nil, nil, zerolog.Nop())
	delivered, err := d.Deliver(context.Background(), p)
	require.NoError(t, err)

	assert.Len(t, delivered, 2)
	tb, _ := tokens.Balance(context.Background(), p)
	cb, _ := coins.Balance(context.Background(), p)
	assert.Equal(t, int64(100), tb)
	assert.Equal(t, int64(250), cb)
	assert.Empty(t, store.Pending(p))

	direct, _ := notifier.kinds()
	assert.Equal(t, []domain.NoticeKind{domain.NoticeOfflineDelivery, domain.NoticeOfflineDelivery}, direct)
}

func TestRewardDelivery_NothingPending(t *testing.T) {
	d := NewRewardDelivery(NewCurrencyRegistry(), memory.NewRewardStore(), &recordingNotifier{}, nil, nil, zerolog.Nop())
	delivered, err := d.Deliver(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, delivered)
}

func TestRewardDelivery_KeepsUndeliverable(t *testing.T) {
	registry := NewCurrencyRegistry()
	tokens := newTokens()
	tokens.FailDeposits(errors.New("economy offline"))
	gems := newGems()
	require.NoError(t, registry.Register(tokens))
	require.NoError(t, registry.Register(gems))

	store := memory.NewRewardStore()
	p := uuid.New()
	now := time.Now()
	require.NoError(t, store.Record(context.Background(), domain.NewPendingReward(p, "tokens", 10, now)))
	require.NoError(t, store.Record(context.Background(), domain.NewPendingReward(p, "pokecoins", 20, now)))
	require.NoError(t, store.Record(context.Background(), domain.NewPendingReward(p, "gems", 30, now)))

	d := NewRewardDelivery(registry, store, &recordingNotifier{}, nil, nil, zerolog.Nop())
	delivered, err := d.Deliver(context.Background(), p)
	require.NoError(t, err)

	require.Len(t, delivered, 1)
	assert.Equal(t, "gems", delivered[0].Currency)

	kept := store.Pending(p)
	require.Len(t, kept, 2)
	currencies := []string{kept[0].Currency, kept[1].Currency}
	assert.ElementsMatch(t, []string{"tokens", "pokecoins"}, currencies)
}

// cancellingRewardStore cancels the caller's context as soon as rewards are
// taken, like a client hanging up mid-request.
type cancellingRewardStore struct {
	*memory.RewardStore
	cancel context.CancelFunc
}

func (s *cancellingRewardStore) Take(ctx context.Context, participant uuid.UUID) ([]domain.PendingReward, error) {
	rewards, err := s.RewardStore.Take(ctx, participant)
	s.cancel()
	return rewards, err
}

func (s *cancellingRewardStore) Record(ctx context.Context, reward domain.PendingReward) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.RewardStore.Record(ctx, reward)
}

// contextCurrency fails deposits on a done context.
type contextCurrency struct {
	*currency.MemoryCurrency
}

func (c contextCurrency) Deposit(ctx context.Context, participant uuid.UUID, amount int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.MemoryCurrency.Deposit(ctx, participant, amount)
}

func TestRewardDelivery_SettlesAfterCallerCancels(t *testing.T) {
	tests := []struct {
		name        string
		depositErr  error
		wantPaid    int64
		wantPending int
	}{
		{name: "deposit still lands", wantPaid: 100},
		{name: "failed deposit is kept", depositErr: errors.New("economy offline"), wantPending: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := newTokens()
			tokens.FailDeposits(tt.depositErr)
			registry := NewCurrencyRegistry()
			require.NoError(t, registry.Register(contextCurrency{tokens}))

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			store := &cancellingRewardStore{RewardStore: memory.NewRewardStore(), cancel: cancel}
			p := uuid.New()
			require.NoError(t, store.RewardStore.Record(context.Background(), domain.NewPendingReward(p, "tokens", 100, time.Now())))

			d := NewRewardDelivery(registry, store, &recordingNotifier{}, nil, nil, zerolog.Nop())
			_, err := d.Deliver(ctx, p)
			require.NoError(t, err)
			require.Error(t, ctx.Err())

			balance, _ := tokens.Balance(context.Background(), p)
			assert.Equal(t, tt.wantPaid, balance)
			assert.Len(t, store.Pending(p), tt.wantPending)
		})
	}
}

func TestRewardDelivery_TakeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRewardStore(ctrl)
	store.EXPECT().Take(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	d := NewRewardDelivery(NewCurrencyRegistry(), store, &recordingNotifier{}, nil, nil, zerolog.Nop())
	_, err := d.Deliver(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestRewardDelivery_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewCurrencyRegistry()
	require.NoError(t, registry.Register(newTokens()))

	store := memory.NewRewardStore()
	p := uuid.New()
	require.NoError(t, store.Record(context.Background(), domain.NewPendingReward(p, "tokens", 1, time.Now())))
	require.NoError(t, store.Record(context.Background(), domain.NewPendingReward(p, "tokens", 2, time.Now())))

	metrics := mocks.NewMockMetricsRecorder(ctrl)
	metrics.EXPECT().RewardsDelivered("tokens", 2)

	d := NewRewardDelivery(registry, store, &recordingNotifier{}, metrics, nil, zerolog.Nop())
	delivered, err := d.Deliver(context.Background(), p)
	require.NoError(t, err)
	assert.Len(t, delivered, 2)
}
