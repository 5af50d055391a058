package service

import (
	"context"
	"sync"
	"time"

	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

var _ ports.SchedulerControl = (*Scheduler)(nil)

// DrawingRunner is the part of the lottery the scheduler drives.
type DrawingRunner interface {
	RunDueDrawing(ctx context.Context) ([]domain.DrawOutcome, bool)
	BroadcastStatus(ctx context.Context) error
}

// SchedulerOptions configures the timers.
type SchedulerOptions struct {
	TickInterval      time.Duration
	BroadcastInterval time.Duration
	BroadcastDelay    time.Duration
	JobTimeout        time.Duration
}

// Scheduler checks for a due drawing on every tick and broadcasts the
// lottery status periodically.
type Scheduler struct {
	runner DrawingRunner
	opts   SchedulerOptions
	log    zerolog.Logger

	mu      sync.Mutex
	parent  context.Context
	cron    *cron.Cron
	initial *time.Timer
	cancel  context.CancelFunc
	jobs    *sync.WaitGroup
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(runner DrawingRunner, opts SchedulerOptions, log zerolog.Logger) *Scheduler {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Minute
	}
	if opts.BroadcastInterval <= 0 {
		opts.BroadcastInterval = 30 * time.Minute
	}
	if opts.JobTimeout <= 0 {
		opts.JobTimeout = 2 * time.Minute
	}
	return &Scheduler{runner: runner, opts: opts, log: log, parent: context.Background()}
}

// Start arms the timers, replacing any previous ones, and runs one due check
// right away so an overdue drawing fires after a restart.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked(context.Background())
	s.parent = ctx
	s.startLocked()
}

func (s *Scheduler) startLocked() {
	jobCtx, cancel := context.WithCancel(s.parent)
	s.cancel = cancel
	jobs := &sync.WaitGroup{}
	s.jobs = jobs

	l := cronLogger{log: s.log}
	chain := cron.NewChain(cron.Recover(l), cron.SkipIfStillRunning(l))

	tick := chain.Then(cron.FuncJob(func() { s.tick(jobCtx) }))
	status := chain.Then(cron.FuncJob(func() { s.broadcast(jobCtx) }))

	c := cron.New(cron.WithLogger(l), cron.WithLocation(time.UTC))
	c.Schedule(cron.Every(s.opts.TickInterval), tick)
	c.Schedule(cron.Every(s.opts.BroadcastInterval), status)
	c.Start()
	s.cron = c

	if s.opts.BroadcastDelay > 0 {
		s.initial = time.AfterFunc(s.opts.BroadcastDelay, status.Run)
	}

	jobs.Add(1)
	go func() {
		defer jobs.Done()
		tick.Run()
	}()

	s.log.Info().
		Dur("tick", s.opts.TickInterval).
		Dur("broadcast", s.opts.BroadcastInterval).
		Msg("scheduler started")
}

func (s *Scheduler) tick(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.JobTimeout)
	defer cancel()

	outcomes, ran := s.runner.RunDueDrawing(ctx)
	if !ran {
		return
	}
	awarded := 0
	for _, o := range outcomes {
		if o.HasWinner() {
			awarded++
		}
	}
	s.log.Info().Int("pools", len(outcomes)).Int("winners", awarded).Msg("scheduled drawing completed")
}

func (s *Scheduler) broadcast(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.JobTimeout)
	defer cancel()

	if err := s.runner.BroadcastStatus(ctx); err != nil {
		s.log.Warn().Err(err).Msg("status broadcast failed")
	}
}

// Stop cancels the timers and waits for running jobs or until ctx is done.
// Calling Stop on a stopped scheduler is a no-op.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopLocked(ctx)
}

func (s *Scheduler) stopLocked(ctx context.Context) error {
	if s.cron == nil {
		return nil
	}
	if s.initial != nil {
		s.initial.Stop()
		s.initial = nil
	}

	stopped := s.cron.Stop()
	s.cron = nil
	jobs := s.jobs
	s.jobs = nil

	done := make(chan struct{})
	go func() {
		<-stopped.Done()
		jobs.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	s.cancel()
	s.cancel = nil
	s.log.Info().Msg("scheduler stopped")
	return err
}

// Reload re-arms the timers under the context Start was given. Jobs of the
// previous timers still running when ctx ends are left to finish on their own;
// the new timers are armed either way.
func (s *Scheduler) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stopLocked(ctx); err != nil {
		s.log.Warn().Err(err).Msg("previous scheduler jobs still running, re-arming anyway")
	}
	s.startLocked()
	return nil
}

// Running reports whether timers are armed.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron != nil
}

// cronLogger routes cron's logr-style calls into zerolog.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
