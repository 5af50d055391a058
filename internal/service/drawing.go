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

// settleTimeout bounds paying out or recording a prize that has already been
// taken from the participants. Settlement ignores the caller's cancellation.
const settleTimeout = 30 * time.Second

// DrawingEngine draws every registered currency once per cycle.
type DrawingEngine struct {
	registry *CurrencyRegistry
	ledger   *EntryLedger
	picker   *Picker
	presence ports.PresenceTracker
	rewards  ports.RewardStore
	notifier ports.Notifier
	history  *HistoryService
	metrics  ports.MetricsRecorder
	log      zerolog.Logger
}

// NewDrawingEngine wires an engine. history and metrics may be nil.
func NewDrawingEngine(
	registry *CurrencyRegistry,
	ledger *EntryLedger,
	picker *Picker,
	presence ports.PresenceTracker,
	rewards ports.RewardStore,
	notifier ports.Notifier,
	history *HistoryService,
	metrics ports.MetricsRecorder,
	log zerolog.Logger,
) *DrawingEngine {
	if picker == nil {
		picker = NewPicker(nil)
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &DrawingEngine{
		registry: registry,
		ledger:   ledger,
		picker:   picker,
		presence: presence,
		rewards:  rewards,
		notifier: notifier,
		history:  history,
		metrics:  metrics,
		log:      log,
	}
}

// DrawAll draws each currency independently; a failure in one never stops the rest.
func (e *DrawingEngine) DrawAll(ctx context.Context, at time.Time) []domain.DrawOutcome {
	e.log.Info().Time("at", at).Int("currencies", e.registry.Len()).Msg("performing lottery drawing")
	broadcast(ctx, e.notifier, e.log, domain.DrawingStartedNotice(at))

	currencies := e.registry.List()
	outcomes := make([]domain.DrawOutcome, 0, len(currencies))
	for _, c := range currencies {
		out := e.Draw(ctx, c, at)
		outcomes = append(outcomes, out)

		e.metrics.DrawCompleted(out.Currency, out.Status, out.Prize)
		e.metrics.PoolChanged(out.Currency, 0, 0)
		if e.history != nil {
			e.history.Record(out)
		}
	}
	return outcomes
}

// Draw runs one currency's cycle: OPEN -> DRAWING -> terminal status.
// The pool is cleared whatever happens.
func (e *DrawingEngine) Draw(ctx context.Context, c ports.Currency, at time.Time) (out domain.DrawOutcome) {
	info := currencyInfo(c)
	log := e.log.With().Str("currency", info.ID).Logger()
	out = domain.DrawOutcome{Currency: info.ID, DrawnAt: at}

	defer func() {
		if r := recover(); r != nil {
			out.Status = domain.DrawFailed
			out.Err = fmt.Errorf("panic during drawing: %v", r)
			log.Error().
				Interface("panic", r).
				Str("winner", out.Winner.String()).
				Int64("prize", out.Prize).
				Msg("drawing aborted, manual reconciliation needed")
		}
		e.ledger.Clear(info.ID)
	}()

	entries := e.ledger.Entries(info.ID)
	if len(entries) == 0 {
		out.Status = domain.DrawNoEntries
		broadcast(ctx, e.notifier, log, domain.NoEntriesNotice(info, at))
		return out
	}

	out.Participants = len(entries)
	for _, en := range entries {
		out.Prize += en.Amount
	}

	winner, err := e.picker.Pick(entries)
	if err != nil {
		out.Status = domain.DrawFailed
		out.Err = err
		log.Error().Err(err).Int64("prize", out.Prize).Msg("could not select a winner")
		return out
	}
	out.Winner = winner
	formatted := c.Format(out.Prize)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer cancel()

	broadcast(ctx, e.notifier, log, domain.WinnerNotice(winner, info, out.Prize, formatted, at))

	if e.isOnline(ctx, winner, log) {
		err := c.Deposit(ctx, winner, out.Prize)
		if err == nil {
			out.Status = domain.DrawAwarded
			notify(ctx, e.notifier, log, winner, domain.PrizeAwardedNotice(winner, info, out.Prize, formatted, at))
			return out
		}
		log.Warn().Err(err).Str("winner", winner.String()).Int64("prize", out.Prize).
			Msg("deposit to online winner failed, keeping prize as pending reward")
	}

	reward := domain.NewPendingReward(winner, info.ID, out.Prize, at)
	if err := e.rewards.Record(ctx, reward); err != nil {
		out.Status = domain.DrawFailed
		out.Err = fmt.Errorf("recording pending reward: %w", err)
		log.Error().Err(err).
			Str("winner", winner.String()).
			Int64("prize", out.Prize).
			Str("reward_id", reward.ID.String()).
			Msg("prize could not be delivered or recorded, manual reconciliation needed")
		return out
	}

	out.Status = domain.DrawDeferred
	notify(ctx, e.notifier, log, winner, domain.PrizeDeferredNotice(winner, info, out.Prize, formatted, at))
	return out
}

func (e *DrawingEngine) isOnline(ctx context.Context, participant uuid.UUID, log zerolog.Logger) bool {
	online, err := e.presence.IsOnline(ctx, participant)
	if err != nil {
		log.Warn().Err(err).Str("participant", participant.String()).Msg("presence lookup failed, treating winner as offline")
		return false
	}
	return online
}
