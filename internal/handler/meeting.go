package handler

import (
	"net/http"

	"kas-taruna/internal/logger"
	"kas-taruna/internal/middleware"
	"kas-taruna/internal/model"
	"kas-taruna/internal/service"

	"github.com/gin-gonic/gin"
)

type MeetingHandler struct{ meetings *service.MeetingService }

func NewMeetingHandler(meetings *service.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetings: meetings}
}

// List handles GET /api/meetings
func (h *MeetingHandler) List(c *gin.Context) {
	meetings, err := h.meetings.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if meetings == nil {
		meetings = []model.Meeting{}
	}
	var totalCollected int64
	for _, m := range meetings {
		totalCollected += m.TotalCashCollected
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings, "total_collected": totalCollected})
}

// Add handles POST /api/meetings
func (h *MeetingHandler) Add(c *gin.Context) {
	var req model.AddMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.meetings.Add(c.Request.Context(), middleware.Role(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/meetings/:id
func (h *MeetingHandler) Delete(c *gin.Context) {
	if err := h.meetings.Delete(c.Request.Context(), middleware.Role(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Spin handles POST /api/wheel/spin. The client passes the rotation it
// is currently showing; after a discarded result it passes zero so the
// angular math restarts from a clean baseline.
func (h *MeetingHandler) Spin(c *gin.Context) {
	var req model.SpinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res, err := h.meetings.Spin(c.Request.Context(), req.PreviousRotation)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("wheel.spin", "spins", res.Spins, "extra_angle", res.ExtraAngle, "winner", res.Winner.Name)
	c.JSON(http.StatusOK, res)
}

// CommitSpin handles POST /api/wheel/commit
func (h *MeetingHandler) CommitSpin(c *gin.Context) {
	var req model.CommitSpinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.meetings.CommitSpin(c.Request.Context(), middleware.Role(c), req.WinnerID)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("wheel.commit", "meeting", m.ID, "location", m.Location)
	c.JSON(http.StatusOK, m)
}
