package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasantha-kumar-s/career-bot/internal/api/middleware"
	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"github.com/vasantha-kumar-s/career-bot/internal/services"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

type MentorHandler struct {
	svc services.MentorService
}

func NewMentorHandler(svc services.MentorService) *MentorHandler {
	return &MentorHandler{svc: svc}
}

type ConnectRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	MentorID string `json:"mentor_id" binding:"required"`
}

// DecisionRequest carries mentor_id only when mentor tokens are not enabled.
type DecisionRequest struct {
	ConnectionID string `json:"connection_id" binding:"required"`
	MentorID     string `json:"mentor_id"`
}

func (h *MentorHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context(), c.Query("industry"), c.Query("expertise"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"mentors": rows})
}

func (h *MentorHandler) Connect(c *gin.Context) {
	var req ConnectRequest
	if !bindJSON(c, "MentorHandler.Connect", &req) {
		return
	}

	conn, err := h.svc.Connect(c.Request.Context(), req.UserID, req.MentorID)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{
		"connection_id": conn.ID,
		"status":        conn.Status,
		"connection":    conn,
	})
}

func (h *MentorHandler) Accept(c *gin.Context) {
	h.decide(c, "MentorHandler.Accept", h.svc.Accept)
}

func (h *MentorHandler) Reject(c *gin.Context) {
	h.decide(c, "MentorHandler.Reject", h.svc.Reject)
}

func (h *MentorHandler) decide(
	c *gin.Context,
	op string,
	fn func(ctx context.Context, mentorID, connectionID string) (*models.MentorConnection, error),
) {
	var req DecisionRequest
	if !bindJSON(c, op, &req) {
		return
	}

	// A verified token wins over the body.
	mentorID := c.GetString(middleware.MentorIDKey)
	if mentorID == "" {
		mentorID = req.MentorID
	}
	if mentorID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "mentor_id is required", nil))
		return
	}

	conn, err := fn(c.Request.Context(), mentorID, req.ConnectionID)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{
		"connection_id": conn.ID,
		"status":        conn.Status,
		"connection":    conn,
	})
}
