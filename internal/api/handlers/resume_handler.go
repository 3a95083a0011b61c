package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasantha-kumar-s/career-bot/internal/services"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

type ResumeHandler struct {
	svc services.ResumeService
}

func NewResumeHandler(svc services.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// Upload accepts multipart "file" (PDF) and "user_id".
func (h *ResumeHandler) Upload(c *gin.Context) {
	const op = "ResumeHandler.Upload"

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxResumeSize+(1<<20))

	userID, found := currentUserID(c, op)
	if !found {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file is required", err))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "failed to open file", err))
		return
	}
	defer f.Close()

	row, err := h.svc.Upload(c.Request.Context(), services.ResumeUpload{
		UserID:   userID,
		FileName: fh.Filename,
		FileSize: int(fh.Size),
		MimeType: fh.Header.Get("Content-Type"),
		Body:     f,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"resume": row})
}

func (h *ResumeHandler) Latest(c *gin.Context) {
	userID, found := requireQuery(c, "ResumeHandler.Latest", "user_id")
	if !found {
		return
	}

	row, err := h.svc.Latest(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"resume": row})
}
