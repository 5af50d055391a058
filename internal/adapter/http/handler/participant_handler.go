package handler

import (
	"net/http"

	"weekly-lottery/internal/adapter/http/dto"
	"weekly-lottery/internal/core/ports"
	"weekly-lottery/pkg/apperror"
	"weekly-lottery/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParticipantHandler relays the host's join and leave events.
type ParticipantHandler struct {
	svc ports.LotteryService
}

// NewParticipantHandler creates a new ParticipantHandler.
func NewParticipantHandler(svc ports.LotteryService) *ParticipantHandler {
	return &ParticipantHandler{svc: svc}
}

// Connect handles POST /api/v1/participants/:participant/connect.
func (h *ParticipantHandler) Connect(c *gin.Context) {
	participant, err := uuid.Parse(c.Param("participant"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidParticipant())
		return
	}

	delivered, err := h.svc.OnConnect(c.Request.Context(), participant)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := dto.ConnectResponse{
		ParticipantID: participant.String(),
		Delivered:     make([]dto.RewardResponse, 0, len(delivered)),
	}
	for _, r := range delivered {
		out.Delivered = append(out.Delivered, toRewardResponse(r))
	}
	response.OK(c, out)
}

// Disconnect handles POST /api/v1/participants/:participant/disconnect.
func (h *ParticipantHandler) Disconnect(c *gin.Context) {
	participant, err := uuid.Parse(c.Param("participant"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidParticipant())
		return
	}
	if err := h.svc.OnDisconnect(c.Request.Context(), participant); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
