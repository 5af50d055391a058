package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports"
	"weekly-lottery/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var _ ports.LotteryService = (*LotteryServiceImpl)(nil)

// LotteryDeps holds everything the lottery needs.
type LotteryDeps struct {
	Registry    *CurrencyRegistry
	Cadence     *Cadence
	StateStore  ports.StateStore
	Rewards     ports.RewardStore
	Presence    ports.PresenceTracker
	Notifier    ports.Notifier
	History     ports.DrawHistory     // nil = log only
	Metrics     ports.MetricsRecorder // nil = disabled
	Picker      *Picker               // nil = clock-seeded
	Persistence PersisterOptions
	Clock       func() time.Time
	Logger      zerolog.Logger
}

// LotteryServiceImpl implements ports.LotteryService.
//
// mu serialises every ledger and schedule mutation: submissions, drawings,
// connects and schedule changes all happen one at a time, in arrival order.
type LotteryServiceImpl struct {
	mu   sync.Mutex
	next time.Time

	registry  *CurrencyRegistry
	ledger    *EntryLedger
	cadence   *Cadence
	engine    *DrawingEngine
	delivery  *RewardDelivery
	history   *HistoryService
	persister *Persister
	store     ports.StateStore
	presence  ports.PresenceTracker
	notifier  ports.Notifier
	metrics   ports.MetricsRecorder
	clock     func() time.Time
	log       zerolog.Logger
}

// NewLotteryService wires the lottery. Call Recover before serving traffic.
func NewLotteryService(deps LotteryDeps) *LotteryServiceImpl {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}
	if deps.Notifier == nil {
		deps.Notifier = NewLogNotifier(deps.Logger)
	}

	s := &LotteryServiceImpl{
		registry: deps.Registry,
		ledger:   NewEntryLedger(),
		cadence:  deps.Cadence,
		store:    deps.StateStore,
		presence: deps.Presence,
		notifier: deps.Notifier,
		metrics:  deps.Metrics,
		clock:    deps.Clock,
		log:      deps.Logger,
	}
	s.history = NewHistoryService(deps.History, deps.Logger.With().Str("component", "history").Logger())
	s.engine = NewDrawingEngine(s.registry, s.ledger, deps.Picker, deps.Presence, deps.Rewards,
		deps.Notifier, s.history, deps.Metrics, deps.Logger.With().Str("component", "drawing").Logger())
	s.delivery = NewRewardDelivery(s.registry, deps.Rewards, deps.Notifier, deps.Metrics, deps.Clock,
		deps.Logger.With().Str("component", "rewards").Logger())
	s.persister = NewPersister(deps.StateStore, s.snapshot, deps.Persistence, deps.Metrics,
		deps.Logger.With().Str("component", "persister").Logger())
	s.next = s.cadence.Next(s.clock())
	return s
}

// Recover restores persisted state and starts background saving.
// A state that cannot be read is logged and replaced by an empty one.
func (s *LotteryServiceImpl) Recover(ctx context.Context) error {
	s.restore(ctx)
	s.persister.Start()
	return nil
}

// Close stops background saving after a final synchronous save.
func (s *LotteryServiceImpl) Close(ctx context.Context) error {
	err := s.persister.Stop(ctx)
	s.history.Wait()
	return err
}

func (s *LotteryServiceImpl) restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	state, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("loading lottery state failed, starting with empty pools")
		state = nil
	}
	if state == nil {
		s.next = s.cadence.Next(now)
		s.ledger.Restore(nil, nil)
		s.log.Info().Time("next_drawing", s.next).Msg("no saved lottery state, starting fresh")
		return
	}

	skipped := s.ledger.Restore(state.Entries, s.registry.Has)
	for _, id := range skipped {
		s.log.Warn().Str("currency", id).Int64("pool", state.Total(id)).
			Msg("saved pool for unavailable currency ignored")
	}

	s.next = state.NextDrawing
	if s.next.IsZero() {
		s.next = s.cadence.Next(now)
	}
	for _, id := range s.registry.IDs() {
		s.metrics.PoolChanged(id, s.ledger.Total(id), s.ledger.Count(id))
	}
	s.log.Info().Time("next_drawing", s.next).Bool("overdue", !now.Before(s.next)).Msg("lottery state restored")
}

func (s *LotteryServiceImpl) snapshot() domain.LotteryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.LotteryState{
		NextDrawing: s.next,
		Entries:     s.ledger.Snapshot(),
		SavedAt:     s.clock(),
	}
}

// Submit withdraws the amount from the participant and records the entry.
// The ledger is only touched after the provider confirmed the withdrawal.
func (s *LotteryServiceImpl) Submit(ctx context.Context, req ports.EntryRequest) (*ports.EntryReceipt, error) {
	currencyID := domain.NormalizeCurrencyID(req.Currency)
	if req.Amount <= 0 {
		s.metrics.EntryRejected(currencyID, "invalid_amount")
		return nil, apperror.ErrInvalidAmount()
	}
	if req.ParticipantID == uuid.Nil {
		s.metrics.EntryRejected(currencyID, "invalid_participant")
		return nil, apperror.ErrInvalidParticipant()
	}
	c, ok := s.registry.Get(currencyID)
	if !ok {
		s.metrics.EntryRejected(currencyID, "unknown_currency")
		return nil, apperror.ErrUnknownCurrency(currencyID)
	}
	log := s.log.With().Str("currency", currencyID).Str("participant", req.ParticipantID.String()).Logger()

	if err := s.ledger.CanAdd(currencyID, req.ParticipantID, req.Amount); err != nil {
		s.metrics.EntryRejected(currencyID, "overflow")
		return nil, err
	}

	has, err := c.Has(ctx, req.ParticipantID, req.Amount)
	if err != nil {
		s.metrics.EntryRejected(currencyID, "provider_error")
		return nil, apperror.ErrCurrencyUnavailable(currencyID, err)
	}
	if !has {
		s.metrics.EntryRejected(currencyID, "insufficient_funds")
		return nil, apperror.ErrInsufficientFunds()
	}

	if err := c.Withdraw(ctx, req.ParticipantID, req.Amount); err != nil {
		if errors.Is(err, ports.ErrInsufficientFunds) {
			s.metrics.EntryRejected(currencyID, "insufficient_funds")
			return nil, apperror.ErrInsufficientFunds()
		}
		log.Warn().Err(err).Int64("amount", req.Amount).Msg("withdrawal failed")
		s.metrics.EntryRejected(currencyID, "withdraw_failed")
		return nil, apperror.ErrWithdrawFailed(err)
	}

	s.mu.Lock()
	total, err := s.ledger.Add(currencyID, req.ParticipantID, req.Amount)
	poolTotal := s.ledger.Total(currencyID)
	count := s.ledger.Count(currencyID)
	s.mu.Unlock()

	if err != nil {
		// the pool grew between the pre-check and now; hand the money back
		if refundErr := c.Deposit(ctx, req.ParticipantID, req.Amount); refundErr != nil {
			log.Error().Err(refundErr).Int64("amount", req.Amount).Msg("refund after rejected entry failed, manual reconciliation needed")
		}
		s.metrics.EntryRejected(currencyID, "overflow")
		return nil, err
	}

	s.persister.Request()
	s.metrics.EntryAccepted(currencyID, req.Amount)
	s.metrics.PoolChanged(currencyID, poolTotal, count)

	now := s.clock()
	formatted := c.Format(req.Amount)
	notify(ctx, s.notifier, log, req.ParticipantID,
		domain.EntryAcceptedNotice(req.ParticipantID, currencyInfo(c), req.Amount, formatted, now))
	log.Info().Int64("amount", req.Amount).Int64("total_entered", total).Int64("pool", poolTotal).Msg("entry accepted")

	return &ports.EntryReceipt{
		Currency:      currencyID,
		ParticipantID: req.ParticipantID,
		Amount:        req.Amount,
		TotalEntered:  total,
		PoolTotal:     poolTotal,
		Formatted:     formatted,
		AcceptedAt:    now,
	}, nil
}

// Currencies lists the registered currencies.
func (s *LotteryServiceImpl) Currencies(_ context.Context) []domain.CurrencyInfo {
	list := s.registry.List()
	out := make([]domain.CurrencyInfo, 0, len(list))
	for _, c := range list {
		out = append(out, currencyInfo(c))
	}
	return out
}

// Pool returns one currency's open pool.
func (s *LotteryServiceImpl) Pool(_ context.Context, currency string) (*domain.PoolStatus, error) {
	c, ok := s.registry.Get(currency)
	if !ok {
		return nil, apperror.ErrUnknownCurrency(domain.NormalizeCurrencyID(currency))
	}
	p := s.poolStatus(c)
	return &p, nil
}

// Pools returns every open pool in registration order.
func (s *LotteryServiceImpl) Pools(_ context.Context) []domain.PoolStatus {
	list := s.registry.List()
	out := make([]domain.PoolStatus, 0, len(list))
	for _, c := range list {
		out = append(out, s.poolStatus(c))
	}
	return out
}

func (s *LotteryServiceImpl) poolStatus(c ports.Currency) domain.PoolStatus {
	info := currencyInfo(c)
	total := s.ledger.Total(info.ID)
	return domain.PoolStatus{
		Currency:       info.ID,
		Name:           info.Name,
		Symbol:         info.Symbol,
		Total:          total,
		FormattedTotal: c.Format(total),
		Participants:   s.ledger.Count(info.ID),
	}
}

// EntriesFor returns a participant's contribution to a pool.
func (s *LotteryServiceImpl) EntriesFor(_ context.Context, currency string, participant uuid.UUID) (int64, error) {
	c, ok := s.registry.Get(currency)
	if !ok {
		return 0, apperror.ErrUnknownCurrency(domain.NormalizeCurrencyID(currency))
	}
	return s.ledger.EntriesFor(domain.NormalizeCurrencyID(c.ID()), participant), nil
}

// NextDrawing returns the scheduled drawing time.
func (s *LotteryServiceImpl) NextDrawing(_ context.Context) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Status summarises all pools and the countdown.
func (s *LotteryServiceImpl) Status(ctx context.Context) domain.StatusReport {
	next := s.NextDrawing(ctx)
	remaining := next.Sub(s.clock())
	if remaining < 0 {
		remaining = 0
	}
	return domain.StatusReport{
		Pools:         s.Pools(ctx),
		NextDrawing:   next,
		TimeRemaining: remaining,
		Remaining:     domain.FormatRemaining(remaining),
	}
}

// BroadcastStatus announces the current status to everyone.
func (s *LotteryServiceImpl) BroadcastStatus(ctx context.Context) error {
	return s.notifier.Broadcast(ctx, domain.StatusNotice(s.Status(ctx), s.clock()))
}

// OnConnect marks the participant online and pays out pending rewards.
// Holding mu means a drawing either sees the participant online or has
// already recorded their reward by the time it is taken here.
func (s *LotteryServiceImpl) OnConnect(ctx context.Context, participant uuid.UUID) ([]domain.PendingReward, error) {
	if participant == uuid.Nil {
		return nil, apperror.ErrInvalidParticipant()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.presence.SetOnline(ctx, participant, true); err != nil {
		s.log.Warn().Err(err).Str("participant", participant.String()).Msg("presence update failed")
	}
	delivered, err := s.delivery.Deliver(ctx, participant)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	return delivered, nil
}

// OnDisconnect marks the participant offline.
func (s *LotteryServiceImpl) OnDisconnect(ctx context.Context, participant uuid.UUID) error {
	if participant == uuid.Nil {
		return apperror.ErrInvalidParticipant()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.presence.SetOnline(ctx, participant, false); err != nil {
		return apperror.ErrStorage(err)
	}
	return nil
}

// RunDueDrawing draws if the scheduled time has been reached. It reports
// whether a drawing ran.
func (s *LotteryServiceImpl) RunDueDrawing(ctx context.Context) ([]domain.DrawOutcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	if now.Before(s.next) {
		return nil, false
	}
	s.log.Info().Time("scheduled", s.next).Dur("late_by", now.Sub(s.next)).Msg("drawing is due")
	return s.drawLocked(ctx, now), true
}

// DrawNow runs a drawing immediately and reschedules from now.
func (s *LotteryServiceImpl) DrawNow(ctx context.Context) ([]domain.DrawOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawLocked(ctx, s.clock()), nil
}

func (s *LotteryServiceImpl) drawLocked(ctx context.Context, now time.Time) []domain.DrawOutcome {
	outcomes := s.engine.DrawAll(ctx, now)

	// computed from the firing time, so a late drawing never lands in the past
	s.next = s.cadence.Next(now)
	s.persister.Request()

	broadcast(ctx, s.notifier, s.log, domain.NextDrawingNotice(s.next, now))
	s.log.Info().Time("next_drawing", s.next).Msg("drawing finished")
	return outcomes
}

// SetNextDrawing overrides the schedule. The time must be in the future.
func (s *LotteryServiceImpl) SetNextDrawing(ctx context.Context, next time.Time) error {
	if next.IsZero() {
		return apperror.ErrInvalidSchedule("next drawing time is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	if !next.After(now) {
		return apperror.ErrInvalidSchedule("next drawing time must be in the future")
	}
	s.next = next.In(s.cadence.Location())
	s.persister.Request()
	s.log.Info().Time("next_drawing", s.next).Msg("next drawing rescheduled")

	broadcast(ctx, s.notifier, s.log, domain.NextDrawingNotice(s.next, now))
	return nil
}

// History returns recent drawings of a currency, newest first.
func (s *LotteryServiceImpl) History(ctx context.Context, currency string, limit int) ([]domain.DrawRecord, error) {
	id := domain.NormalizeCurrencyID(currency)
	if !s.registry.Has(id) {
		return nil, apperror.ErrUnknownCurrency(id)
	}
	if limit <= 0 {
		limit = 20
	}
	records, err := s.history.Recent(ctx, id, limit)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	return records, nil
}

// Flush saves the current state synchronously.
func (s *LotteryServiceImpl) Flush(ctx context.Context) error {
	return s.persister.Flush(ctx)
}
