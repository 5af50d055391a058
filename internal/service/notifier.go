package service

import (
	"context"
	"errors"

	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LogNotifier writes every notice to the log. It is always part of the
// notifier chain so notices survive even when no bridge is configured.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a notifier that only logs.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyParticipant(_ context.Context, participant uuid.UUID, notice domain.Notice) error {
	n.log.Info().
		Str("kind", string(notice.Kind)).
		Str("participant", participant.String()).
		Str("currency", notice.Currency).
		Msg(notice.Message)
	return nil
}

func (n *LogNotifier) Broadcast(_ context.Context, notice domain.Notice) error {
	n.log.Info().
		Str("kind", string(notice.Kind)).
		Str("currency", notice.Currency).
		Msg(notice.Message)
	return nil
}

// MultiNotifier fans a notice out to several notifiers and joins their errors.
type MultiNotifier []ports.Notifier

func (m MultiNotifier) NotifyParticipant(ctx context.Context, participant uuid.UUID, notice domain.Notice) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyParticipant(ctx, participant, notice); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m MultiNotifier) Broadcast(ctx context.Context, notice domain.Notice) error {
	var errs []error
	for _, n := range m {
		if err := n.Broadcast(ctx, notice); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// notify sends to one participant and only logs failures.
func notify(ctx context.Context, n ports.Notifier, log zerolog.Logger, participant uuid.UUID, notice domain.Notice) {
	if err := n.NotifyParticipant(ctx, participant, notice); err != nil {
		log.Warn().Err(err).Str("kind", string(notice.Kind)).Str("participant", participant.String()).Msg("notice delivery failed")
	}
}

// broadcast sends to everyone and only logs failures.
func broadcast(ctx context.Context, n ports.Notifier, log zerolog.Logger, notice domain.Notice) {
	if err := n.Broadcast(ctx, notice); err != nil {
		log.Warn().Err(err).Str("kind", string(notice.Kind)).Msg("broadcast failed")
	}
}
