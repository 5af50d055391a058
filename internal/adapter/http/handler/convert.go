package handler

import (
	"time"

	"weekly-lottery/internal/adapter/http/dto"
	"weekly-lottery/internal/core/domain"
)

func toPoolResponse(p domain.PoolStatus) dto.PoolResponse {
	return dto.PoolResponse{
		Currency:       p.Currency,
		Name:           p.Name,
		Symbol:         p.Symbol,
		Total:          p.Total,
		FormattedTotal: p.FormattedTotal,
		Participants:   p.Participants,
	}
}

func toPoolResponses(pools []domain.PoolStatus) []dto.PoolResponse {
	out := make([]dto.PoolResponse, 0, len(pools))
	for _, p := range pools {
		out = append(out, toPoolResponse(p))
	}
	return out
}

func toScheduleResponse(r domain.StatusReport) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		NextDrawing:      r.NextDrawing.Format(time.RFC3339),
		NextDrawingText:  domain.FormatDrawingTime(r.NextDrawing),
		RemainingSeconds: int64(r.TimeRemaining / time.Second),
		Remaining:        r.Remaining,
		Pools:            toPoolResponses(r.Pools),
	}
}

func toDrawOutcomeResponse(o domain.DrawOutcome) dto.DrawOutcomeResponse {
	resp := dto.DrawOutcomeResponse{
		Currency:     o.Currency,
		Status:       string(o.Status),
		Prize:        o.Prize,
		Participants: o.Participants,
		DrawnAt:      o.DrawnAt.Format(time.RFC3339),
	}
	if o.HasWinner() {
		w := o.Winner.String()
		resp.Winner = &w
	}
	if o.Err != nil {
		resp.Error = o.Err.Error()
	}
	return resp
}

func toDrawRecordResponse(r domain.DrawRecord) dto.DrawRecordResponse {
	resp := dto.DrawRecordResponse{
		ID:           r.ID.String(),
		Currency:     r.Currency,
		Status:       string(r.Status),
		Prize:        r.Prize,
		Participants: r.Participants,
		DrawnAt:      r.DrawnAt.Format(time.RFC3339),
		Error:        r.Error,
	}
	if r.Winner != nil {
		w := r.Winner.String()
		resp.Winner = &w
	}
	return resp
}

func toRewardResponse(r domain.PendingReward) dto.RewardResponse {
	return dto.RewardResponse{
		ID:       r.ID.String(),
		Currency: r.Currency,
		Amount:   r.Amount,
		WonAt:    r.WonAt.Format(time.RFC3339),
	}
}
