package main

import (
	"context"
	"fmt"

	"weekly-lottery/config"
	"weekly-lottery/internal/adapter/currency"
	"weekly-lottery/internal/adapter/storage/file"
	"weekly-lottery/internal/adapter/storage/memory"
	pgStorage "weekly-lottery/internal/adapter/storage/postgres"
	redisStorage "weekly-lottery/internal/adapter/storage/redis"
	"weekly-lottery/internal/core/ports"
	"weekly-lottery/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// backends holds the optional external connections. Either may be nil.
type backends struct {
	pg    *pgxpool.Pool
	redis *goredis.Client
}

// connectBackends opens the enabled backends. A backend that cannot be
// reached is left nil; everything depending on it degrades.
func connectBackends(ctx context.Context, cfg *config.Config, log zerolog.Logger) *backends {
	b := &backends{}

	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		switch {
		case err != nil:
			log.Error().Err(err).Msg("PostgreSQL unavailable, economy currencies and postgres stores disabled")
		default:
			if err := pgStorage.Migrate(ctx, pool); err != nil {
				log.Error().Err(err).Msg("PostgreSQL migration failed, economy currencies and postgres stores disabled")
				pool.Close()
				break
			}
			b.pg = pool
			log.Info().Msg("PostgreSQL connected")
		}
	}

	if cfg.Redis.Enabled {
		client, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Error().Err(err).Msg("Redis unavailable, ledger currencies, nonce guard and rate limiting disabled")
		} else {
			b.redis = client
			log.Info().Msg("Redis connected")
		}
	}

	return b
}

func (b *backends) Close() {
	if b.pg != nil {
		b.pg.Close()
	}
	if b.redis != nil {
		_ = b.redis.Close()
	}
}

func (b *backends) healthCheckers() []ports.HealthChecker {
	var checkers []ports.HealthChecker
	if b.pg != nil {
		checkers = append(checkers, pgStorage.NewHealthCheck(b.pg))
	}
	if b.redis != nil {
		checkers = append(checkers, redisStorage.NewHealthCheck(b.redis))
	}
	return checkers
}

func (b *backends) nonceStore() ports.SubmissionGuard {
	return redisStorage.NewNonceStore(b.redis)
}

func (b *backends) rateLimitStore() ports.RateLimitStore {
	return redisStorage.NewRateLimitStore(b.redis)
}

// buildRegistry registers every enabled currency whose provider backend is
// available. Missing backends exclude only the currencies that need them.
func buildRegistry(cfg *config.Config, b *backends, log zerolog.Logger) *service.CurrencyRegistry {
	registry := service.NewCurrencyRegistry()

	for _, id := range cfg.EnabledCurrencies() {
		cc := cfg.Currencies[id]
		d := currency.DescriptorFromConfig(id, cc)
		clog := log.With().Str("currency", d.ID()).Str("provider", cc.Provider).Logger()

		var c ports.Currency
		switch cc.Provider {
		case "economy":
			if b.pg == nil {
				clog.Warn().Msg("economy backend not available, currency skipped")
				continue
			}
			c = currency.NewEconomyCurrency(d, b.pg)
		case "ledger":
			if b.redis == nil {
				clog.Warn().Msg("ledger backend not available, currency skipped")
				continue
			}
			c = currency.NewLedgerCurrency(d, b.redis)
		case "memory":
			c = currency.NewMemoryCurrency(d)
		default:
			clog.Warn().Msg("unknown currency provider, currency skipped")
			continue
		}

		if err := registry.Register(c); err != nil {
			clog.Warn().Err(err).Msg("currency not registered")
			continue
		}
		clog.Info().Msg("currency registered")
	}

	return registry
}

type lotteryStores struct {
	state    ports.StateStore
	rewards  ports.RewardStore
	presence ports.PresenceTracker
	history  ports.DrawHistory
}

// buildStores selects a backend per persisted concern. Selecting a backend
// that is not connected is a startup error: silently falling back would lose
// entries or rewards on the next restart.
func buildStores(cfg *config.Config, b *backends, log zerolog.Logger) (*lotteryStores, error) {
	s := &lotteryStores{}
	dir := cfg.Lottery.DataDir

	switch cfg.Storage.State {
	case "file":
		store := file.NewStateStore(dir, log.With().Str("component", "state_file").Logger())
		log.Info().Str("path", store.Path()).Msg("Lottery state stored on disk")
		s.state = store
	case "postgres":
		if b.pg == nil {
			return nil, fmt.Errorf("storage.state is postgres but the database is not connected")
		}
		s.state = pgStorage.NewStateRepo(b.pg)
	case "memory":
		log.Warn().Msg("Lottery state kept in memory only, pools are lost on restart")
		s.state = memory.NewStateStore()
	default:
		return nil, fmt.Errorf("unknown storage.state %q", cfg.Storage.State)
	}

	switch cfg.Storage.Rewards {
	case "file":
		s.rewards = file.NewRewardStore(dir, log.With().Str("component", "reward_files").Logger())
	case "postgres":
		if b.pg == nil {
			return nil, fmt.Errorf("storage.rewards is postgres but the database is not connected")
		}
		s.rewards = pgStorage.NewRewardRepo(b.pg)
	case "redis":
		if b.redis == nil {
			return nil, fmt.Errorf("storage.rewards is redis but redis is not connected")
		}
		s.rewards = redisStorage.NewRewardStore(b.redis, log.With().Str("component", "reward_redis").Logger())
	case "memory":
		s.rewards = memory.NewRewardStore()
	default:
		return nil, fmt.Errorf("unknown storage.rewards %q", cfg.Storage.Rewards)
	}

	switch cfg.Storage.Presence {
	case "memory", "":
		s.presence = memory.NewPresenceTracker()
	case "redis":
		if b.redis == nil {
			return nil, fmt.Errorf("storage.presence is redis but redis is not connected")
		}
		s.presence = redisStorage.NewPresenceStore(b.redis)
	default:
		return nil, fmt.Errorf("unknown storage.presence %q", cfg.Storage.Presence)
	}

	switch cfg.Storage.History {
	case "memory", "":
		s.history = memory.NewDrawHistory(cfg.Lottery.HistoryLimit * 10)
	case "postgres":
		if b.pg == nil {
			return nil, fmt.Errorf("storage.history is postgres but the database is not connected")
		}
		s.history = pgStorage.NewHistoryRepo(b.pg)
	default:
		return nil, fmt.Errorf("unknown storage.history %q", cfg.Storage.History)
	}

	return s, nil
}
