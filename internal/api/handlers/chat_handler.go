package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vasantha-kumar-s/career-bot/internal/providers/stt"
	"github.com/vasantha-kumar-s/career-bot/internal/services"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

type ChatHandler struct {
	chat  services.ChatService
	voice services.VoiceService
}

func NewChatHandler(chat services.ChatService, voice services.VoiceService) *ChatHandler {
	return &ChatHandler{chat: chat, voice: voice}
}

type ChatRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req ChatRequest
	if !bindJSON(c, "ChatHandler.Send", &req) {
		return
	}

	reply, err := h.chat.Send(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"response": reply})
}

func (h *ChatHandler) History(c *gin.Context) {
	const op = "ChatHandler.History"

	userID, found := requireQuery(c, op, "user_id")
	if !found {
		return
	}

	limit := services.DefaultHistoryLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "limit must be a positive integer", err))
			return
		}
		limit = n
	}

	turns, err := h.chat.History(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user_id": userID, "conversation_history": turns})
}

// Voice accepts multipart audio, user_id and optional language.
func (h *ChatHandler) Voice(c *gin.Context) {
	const op = "ChatHandler.Voice"

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxVoiceAudioSize+(1<<20))

	userID := c.PostForm("user_id")
	if userID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil))
		return
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "audio is required", err))
		return
	}
	if fh.Size > services.MaxVoiceAudioSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "audio must be at most 10MB", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "failed to open audio", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "failed to read audio", err))
		return
	}

	res, err := h.voice.Send(c.Request.Context(), userID, stt.Audio{
		Data:     data,
		MimeType: fh.Header.Get("Content-Type"),
		Language: c.PostForm("language"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{
		"transcript": res.Transcript,
		"confidence": res.Confidence,
		"response":   res.Response,
	})
}
