package domain

import (
	"time"

	"github.com/google/uuid"
)

// CycleState is the phase of a currency's weekly cycle.
type CycleState string

const (
	CycleOpen    CycleState = "OPEN"
	CycleDrawing CycleState = "DRAWING"
)

// DrawStatus is how a single currency's drawing ended.
type DrawStatus string

const (
	DrawNoEntries DrawStatus = "NO_ENTRIES"
	DrawAwarded   DrawStatus = "AWARDED"
	DrawDeferred  DrawStatus = "DEFERRED"
	DrawFailed    DrawStatus = "FAILED"
)

// DrawOutcome is the result of drawing one currency.
type DrawOutcome struct {
	Currency     string
	Status       DrawStatus
	Winner       uuid.UUID
	Prize        int64
	Participants int
	DrawnAt      time.Time
	Err          error
}

// HasWinner reports whether a participant was selected.
func (o DrawOutcome) HasWinner() bool {
	return o.Status == DrawAwarded || o.Status == DrawDeferred || (o.Status == DrawFailed && o.Winner != uuid.Nil)
}

// DrawRecord is the audit trail entry kept for every drawing.
type DrawRecord struct {
	ID           uuid.UUID  `json:"id"`
	Currency     string     `json:"currency"`
	Status       DrawStatus `json:"status"`
	Winner       *uuid.UUID `json:"winner,omitempty"`
	Prize        int64      `json:"prize"`
	Participants int        `json:"participants"`
	DrawnAt      time.Time  `json:"drawn_at"`
	Error        string     `json:"error,omitempty"`
}

// NewDrawRecord converts an outcome into its history record.
func NewDrawRecord(o DrawOutcome) DrawRecord {
	rec := DrawRecord{
		ID:           uuid.New(),
		Currency:     o.Currency,
		Status:       o.Status,
		Prize:        o.Prize,
		Participants: o.Participants,
		DrawnAt:      o.DrawnAt,
	}
	if o.HasWinner() {
		w := o.Winner
		rec.Winner = &w
	}
	if o.Err != nil {
		rec.Error = o.Err.Error()
	}
	return rec
}
