package handler

import (
	"time"

	"weekly-lottery/internal/adapter/http/dto"
	"weekly-lottery/internal/core/ports"
	"weekly-lottery/pkg/apperror"
	"weekly-lottery/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the administrative commands.
type AdminHandler struct {
	svc       ports.LotteryService
	scheduler ports.SchedulerControl
}

// NewAdminHandler creates a new AdminHandler. scheduler may be nil when the
// process runs without timers.
func NewAdminHandler(svc ports.LotteryService, scheduler ports.SchedulerControl) *AdminHandler {
	return &AdminHandler{svc: svc, scheduler: scheduler}
}

// DrawNow handles POST /api/v1/admin/draw.
func (h *AdminHandler) DrawNow(c *gin.Context) {
	outcomes, err := h.svc.DrawNow(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := dto.DrawResultResponse{Outcomes: make([]dto.DrawOutcomeResponse, 0, len(outcomes))}
	for _, o := range outcomes {
		out.Outcomes = append(out.Outcomes, toDrawOutcomeResponse(o))
	}
	out.NextDrawing = h.svc.Status(c.Request.Context()).NextDrawing.Format(time.RFC3339)
	response.OK(c, out)
}

// SetSchedule handles PUT /api/v1/admin/schedule.
func (h *AdminHandler) SetSchedule(c *gin.Context) {
	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := h.svc.SetNextDrawing(c.Request.Context(), req.NextDrawing); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toScheduleResponse(h.svc.Status(c.Request.Context())))
}

// Reload handles POST /api/v1/admin/reload.
func (h *AdminHandler) Reload(c *gin.Context) {
	if h.scheduler == nil {
		response.Error(c, apperror.Validation("scheduler is not enabled"))
		return
	}
	if err := h.scheduler.Reload(c.Request.Context()); err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, dto.SchedulerResponse{Running: h.scheduler.Running()})
}

// Broadcast handles POST /api/v1/admin/broadcast.
func (h *AdminHandler) Broadcast(c *gin.Context) {
	if err := h.svc.BroadcastStatus(c.Request.Context()); err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.Accepted(c, toScheduleResponse(h.svc.Status(c.Request.Context())))
}
