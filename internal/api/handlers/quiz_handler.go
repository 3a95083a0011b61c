package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasantha-kumar-s/career-bot/internal/services"
)

type QuizHandler struct {
	svc services.QuizService
}

func NewQuizHandler(svc services.QuizService) *QuizHandler {
	return &QuizHandler{svc: svc}
}

type QuizRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	QuizType string `json:"quiz_type"`
}

func (h *QuizHandler) Save(c *gin.Context) {
	var req QuizRequest
	if !bindJSON(c, "QuizHandler.Save", &req) {
		return
	}

	row, err := h.svc.Submit(c.Request.Context(), services.QuizAnswer{
		UserID:   req.UserID,
		Question: req.Question,
		Answer:   req.Answer,
		QuizType: req.QuizType,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"quiz_response": row})
}
