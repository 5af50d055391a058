package handler

import (
	"strconv"
	"time"

	"weekly-lottery/internal/adapter/http/dto"
	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports"
	"weekly-lottery/pkg/apperror"
	"weekly-lottery/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxHistoryLimit = 100

// LotteryHandler serves entries and the read-only lottery views.
type LotteryHandler struct {
	svc          ports.LotteryService
	historyLimit int
}

// NewLotteryHandler creates a new LotteryHandler. historyLimit is the
// default page size of the history endpoint.
func NewLotteryHandler(svc ports.LotteryService, historyLimit int) *LotteryHandler {
	if historyLimit <= 0 {
		historyLimit = 20
	}
	return &LotteryHandler{svc: svc, historyLimit: historyLimit}
}

// Submit handles POST /api/v1/entries.
func (h *LotteryHandler) Submit(c *gin.Context) {
	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	participant, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		response.Error(c, apperror.ErrInvalidParticipant())
		return
	}

	receipt, err := h.svc.Submit(c.Request.Context(), ports.EntryRequest{
		Currency:      req.Currency,
		ParticipantID: participant,
		Amount:        req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.EntryReceiptResponse{
		Currency:      receipt.Currency,
		ParticipantID: receipt.ParticipantID.String(),
		Amount:        receipt.Amount,
		Formatted:     receipt.Formatted,
		TotalEntered:  receipt.TotalEntered,
		PoolTotal:     receipt.PoolTotal,
		AcceptedAt:    receipt.AcceptedAt.Format(time.RFC3339),
	})
}

// Currencies handles GET /api/v1/currencies.
func (h *LotteryHandler) Currencies(c *gin.Context) {
	list := h.svc.Currencies(c.Request.Context())
	out := make([]dto.CurrencyResponse, 0, len(list))
	for _, info := range list {
		out = append(out, dto.CurrencyResponse{ID: info.ID, Name: info.Name, Symbol: info.Symbol})
	}
	response.OK(c, out)
}

// Pools handles GET /api/v1/pools.
func (h *LotteryHandler) Pools(c *gin.Context) {
	response.OK(c, toPoolResponses(h.svc.Pools(c.Request.Context())))
}

// Pool handles GET /api/v1/pools/:currency.
func (h *LotteryHandler) Pool(c *gin.Context) {
	pool, err := h.svc.Pool(c.Request.Context(), c.Param("currency"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toPoolResponse(*pool))
}

// ParticipantEntries handles GET /api/v1/pools/:currency/entries/:participant.
func (h *LotteryHandler) ParticipantEntries(c *gin.Context) {
	participant, err := uuid.Parse(c.Param("participant"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidParticipant())
		return
	}

	currency := domain.NormalizeCurrencyID(c.Param("currency"))
	amount, err := h.svc.EntriesFor(c.Request.Context(), currency, participant)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ParticipantEntryResponse{
		Currency:      currency,
		ParticipantID: participant.String(),
		Amount:        amount,
	})
}

// Schedule handles GET /api/v1/schedule.
func (h *LotteryHandler) Schedule(c *gin.Context) {
	response.OK(c, toScheduleResponse(h.svc.Status(c.Request.Context())))
}

// History handles GET /api/v1/history/:currency?limit=n.
func (h *LotteryHandler) History(c *gin.Context) {
	limit := h.historyLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			response.Error(c, apperror.Validation("limit must be between 1 and 100"))
			return
		}
		limit = n
	}

	records, err := h.svc.History(c.Request.Context(), c.Param("currency"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.DrawRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toDrawRecordResponse(r))
	}
	response.OK(c, out)
}
