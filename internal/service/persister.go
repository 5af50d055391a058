package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports"

	"github.com/rs/zerolog"
)

// PersisterOptions bounds each save.
type PersisterOptions struct {
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

func (o PersisterOptions) withDefaults() PersisterOptions {
	if o.Timeout <= 0 {
		o.Timeout = 5 * time.Second
	}
	if o.Retries < 1 {
		o.Retries = 1
	}
	if o.RetryDelay < 0 {
		o.RetryDelay = 0
	}
	return o
}

// Persister writes lottery snapshots off the caller's goroutine.
//
// Request never blocks: kicks land in a one-slot channel, so a burst of
// mutations collapses into a single pending save. Saves run one at a time and
// each takes its snapshot when it starts, which means a later save always
// carries state at least as new as an earlier one.
type Persister struct {
	store    ports.StateStore
	snapshot func() domain.LotteryState
	opts     PersisterOptions
	metrics  ports.MetricsRecorder
	log      zerolog.Logger

	kick   chan struct{}
	saveMu sync.Mutex

	mu      sync.Mutex
	started bool
	stopped bool
	quit    chan struct{}
	done    chan struct{}
}

// NewPersister creates a persister. Start must be called to run the save loop.
func NewPersister(store ports.StateStore, snapshot func() domain.LotteryState, opts PersisterOptions, metrics ports.MetricsRecorder, log zerolog.Logger) *Persister {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Persister{
		store:    store,
		snapshot: snapshot,
		opts:     opts.withDefaults(),
		metrics:  metrics,
		log:      log,
		kick:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the background save loop. Calling it again is a no-op.
func (p *Persister) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.stopped {
		return
	}
	p.started = true
	go p.loop()
}

// Request schedules a save.
func (p *Persister) Request() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Flush saves synchronously.
func (p *Persister) Flush(ctx context.Context) error {
	return p.save(ctx)
}

// Stop ends the loop, waits for an in-flight save and performs a final
// synchronous save. Later calls are no-ops.
func (p *Persister) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	started := p.started
	p.mu.Unlock()

	close(p.quit)
	if started {
		select {
		case <-p.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return p.save(ctx)
}

func (p *Persister) loop() {
	defer close(p.done)
	for {
		select {
		case <-p.quit:
			return
		case <-p.kick:
			if err := p.save(context.Background()); err != nil {
				p.log.Error().Err(err).Msg("lottery state not saved, will retry on next change")
			}
		}
	}
}

func (p *Persister) save(parent context.Context) error {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	start := time.Now()
	var lastErr error
	for attempt := 1; attempt <= p.opts.Retries; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(p.opts.RetryDelay):
			case <-parent.Done():
				lastErr = errors.Join(lastErr, parent.Err())
				p.metrics.SaveCompleted(lastErr, time.Since(start))
				return lastErr
			}
		}

		state := p.snapshot()
		ctx, cancel := context.WithTimeout(parent, p.opts.Timeout)
		err := p.store.Save(ctx, state)
		cancel()
		if err == nil {
			p.metrics.SaveCompleted(nil, time.Since(start))
			return nil
		}
		lastErr = err
		p.log.Warn().Err(err).Int("attempt", attempt).Int("max_attempts", p.opts.Retries).Msg("saving lottery state failed")
	}

	err := fmt.Errorf("saving lottery state after %d attempts: %w", p.opts.Retries, lastErr)
	p.metrics.SaveCompleted(err, time.Since(start))
	return err
}
