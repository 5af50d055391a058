package service

import (
	"context"
	"sync"
	"time"

	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports"

	"github.com/rs/zerolog"
)

const historyWriteTimeout = 5 * time.Second

// HistoryService keeps the audit trail of drawings.
type HistoryService struct {
	repo ports.DrawHistory
	log  zerolog.Logger
	wg   sync.WaitGroup
}

// NewHistoryService creates a history service.
// If repo is nil, drawings are only written to the logger.
func NewHistoryService(repo ports.DrawHistory, log zerolog.Logger) *HistoryService {
	return &HistoryService{repo: repo, log: log}
}

// Record logs the outcome and stores it asynchronously (fire-and-forget).
func (s *HistoryService) Record(outcome domain.DrawOutcome) {
	rec := domain.NewDrawRecord(outcome)

	event := s.log.Info()
	if outcome.Status == domain.DrawFailed {
		event = s.log.Error().Err(outcome.Err)
	}
	event.
		Str("currency", rec.Currency).
		Str("status", string(rec.Status)).
		Int64("prize", rec.Prize).
		Int("participants", rec.Participants).
		Interface("winner", rec.Winner).
		Msg("drawing")

	if s.repo == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), historyWriteTimeout)
		defer cancel()
		if err := s.repo.Append(ctx, rec); err != nil {
			s.log.Warn().Err(err).Str("currency", rec.Currency).Msg("failed to persist draw record")
		}
	}()
}

// Recent returns the latest records for a currency, newest first.
func (s *HistoryService) Recent(ctx context.Context, currency string, limit int) ([]domain.DrawRecord, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.Recent(ctx, currency, limit)
}

// Wait blocks until pending writes finish.
func (s *HistoryService) Wait() {
	s.wg.Wait()
}
