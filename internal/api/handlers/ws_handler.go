package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vasantha-kumar-s/career-bot/internal/services"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

const (
	wsReadTimeout  = 60 * time.Second
	wsWriteTimeout = 10 * time.Second
	wsPingEvery    = 25 * time.Second
	wsMaxFrame     = 16 << 10
)

type WSHandler struct {
	chat     services.ChatService
	users    services.UserService
	logger   *logrus.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler allows every origin when allowedOrigins is empty.
func NewWSHandler(chat services.ChatService, users services.UserService, logger *logrus.Logger, allowedOrigins []string) *WSHandler {
	allow := map[string]struct{}{}
	for _, o := range allowedOrigins {
		allow[strings.TrimRight(o, "/")] = struct{}{}
	}

	return &WSHandler{
		chat:   chat,
		users:  users,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if len(allow) == 0 {
					return true
				}
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allow[origin]
				return ok
			},
		},
	}
}

type wsClientMsg struct {
	Message string `json:"message"`
}

type wsServerMsg struct {
	Type     string     `json:"type"` // reply|error
	Response string     `json:"response,omitempty"`
	Code     utils.Code `json:"code,omitempty"`
	Message  string     `json:"message,omitempty"`
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.c.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return w.c.WriteJSON(v)
}

func (w *wsConn) ping() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.c.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout))
}

func (w *wsConn) writeError(err error) error {
	msg := wsServerMsg{Type: "error", Code: utils.CodeInternal, Message: "internal error"}
	var ae *utils.AppError
	if errors.As(err, &ae) && ae.Code != utils.CodeInternal {
		msg.Code, msg.Message = ae.Code, ae.Message
	}
	return w.writeJSON(msg)
}

// Chat serves GET /ws/chat?user_id=. Each {"message": ...} frame gets exactly one reply
// or error frame, in order.
func (h *WSHandler) Chat(c *gin.Context) {
	const op = "WSHandler.Chat"

	userID, found := requireQuery(c, op, "user_id")
	if !found {
		return
	}
	// Reject unknown users before upgrading so they get a normal HTTP error.
	if _, err := h.users.Get(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wc := &wsConn{c: conn}
	ctx := c.Request.Context()
	log := h.logger.WithFields(logrus.Fields{"user_id": userID, "op": op})

	conn.SetReadLimit(wsMaxFrame)
	_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(wsPingEvery)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := wc.ping(); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("websocket closed")
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		var msg wsClientMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			if werr := wc.writeError(utils.E(utils.CodeInvalidArgument, op, "invalid json", err)); werr != nil {
				return
			}
			continue
		}

		reply, err := h.chat.Send(ctx, userID, msg.Message)
		if err != nil {
			if !utils.IsCode(err, utils.CodeInvalidArgument) {
				log.WithError(err).Error("chat failed")
			}
			if werr := wc.writeError(err); werr != nil {
				return
			}
			continue
		}
		if err := wc.writeJSON(wsServerMsg{Type: "reply", Response: reply}); err != nil {
			return
		}
	}
}
