package dto

import "time"

// EntryRequest is the request body for entering a lottery.
type EntryRequest struct {
	Currency      string `json:"currency" binding:"required,currency_id"`
	ParticipantID string `json:"participant_id" binding:"required,uuid"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

// EntryReceiptResponse confirms an accepted entry.
type EntryReceiptResponse struct {
	Currency      string `json:"currency"`
	ParticipantID string `json:"participant_id"`
	Amount        int64  `json:"amount"`
	Formatted     string `json:"formatted"`
	TotalEntered  int64  `json:"total_entered"`
	PoolTotal     int64  `json:"pool_total"`
	AcceptedAt    string `json:"accepted_at"`
}

// CurrencyResponse describes a registered currency.
type CurrencyResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// PoolResponse is the current state of one currency's pool.
type PoolResponse struct {
	Currency       string `json:"currency"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	Total          int64  `json:"total"`
	FormattedTotal string `json:"formatted_total"`
	Participants   int    `json:"participants"`
}

// ParticipantEntryResponse is one participant's contribution to a pool.
type ParticipantEntryResponse struct {
	Currency      string `json:"currency"`
	ParticipantID string `json:"participant_id"`
	Amount        int64  `json:"amount"`
}

// ScheduleResponse is the next drawing time and the countdown.
type ScheduleResponse struct {
	NextDrawing      string         `json:"next_drawing"`
	NextDrawingText  string         `json:"next_drawing_text"`
	RemainingSeconds int64          `json:"remaining_seconds"`
	Remaining        string         `json:"remaining"`
	Pools            []PoolResponse `json:"pools"`
}

// ScheduleRequest overrides the next drawing time.
type ScheduleRequest struct {
	NextDrawing time.Time `json:"next_drawing" binding:"required"`
}

// DrawOutcomeResponse reports how one currency's drawing ended.
type DrawOutcomeResponse struct {
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
	Winner       *string `json:"winner,omitempty"`
	Prize        int64   `json:"prize"`
	Participants int     `json:"participants"`
	DrawnAt      string  `json:"drawn_at"`
	Error        string  `json:"error,omitempty"`
}

// DrawResultResponse is returned by the admin draw endpoint.
type DrawResultResponse struct {
	Outcomes    []DrawOutcomeResponse `json:"outcomes"`
	NextDrawing string                `json:"next_drawing"`
}

// DrawRecordResponse is one history entry.
type DrawRecordResponse struct {
	ID           string  `json:"id"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
	Winner       *string `json:"winner,omitempty"`
	Prize        int64   `json:"prize"`
	Participants int     `json:"participants"`
	DrawnAt      string  `json:"drawn_at"`
	Error        string  `json:"error,omitempty"`
}

// RewardResponse is a pending reward that was paid out on connect.
type RewardResponse struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
	WonAt    string `json:"won_at"`
}

// ConnectResponse lists the rewards delivered on connect.
type ConnectResponse struct {
	ParticipantID string           `json:"participant_id"`
	Delivered     []RewardResponse `json:"delivered"`
}

// SchedulerResponse reports the scheduler state after a reload.
type SchedulerResponse struct {
	Running bool `json:"running"`
}
