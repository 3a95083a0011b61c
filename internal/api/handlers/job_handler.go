package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasantha-kumar-s/career-bot/internal/services"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

func (h *JobHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context(), c.Query("industry"), c.Query("location"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"jobs": rows})
}
