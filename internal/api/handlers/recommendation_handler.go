package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasantha-kumar-s/career-bot/internal/services"
)

type RecommendationHandler struct {
	svc services.RecommendationService
}

func NewRecommendationHandler(svc services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

type RegenerateRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (h *RecommendationHandler) Get(c *gin.Context) {
	userID, found := requireQuery(c, "RecommendationHandler.Get", "user_id")
	if !found {
		return
	}

	recs, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"recommendations": recs})
}

func (h *RecommendationHandler) Regenerate(c *gin.Context) {
	var req RegenerateRequest
	if !bindJSON(c, "RecommendationHandler.Regenerate", &req) {
		return
	}

	recs, err := h.svc.Regenerate(c.Request.Context(), req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"recommendations": recs})
}
