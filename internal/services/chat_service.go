package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"github.com/vasantha-kumar-s/career-bot/internal/providers/llm"
	mongorepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/mongo"
	pgrepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/postgres"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

type ChatService interface {
	// Send always yields a reply for a known user; generation failures become a fallback text.
	Send(ctx context.Context, userID, message string) (string, error)
	// History returns up to limit most recent turns, oldest first.
	History(ctx context.Context, userID string, limit int) ([]models.ChatTurn, error)
}

type ChatDeps struct {
	Users     pgrepo.UserRepository
	Quiz      pgrepo.QuizRepository
	Convos    mongorepo.ConversationRepository
	Assembler ContextAssembler
	Extractor ProfileExtractor

	// LLM is nil when no generation key is configured.
	LLM     llm.Provider
	Timeout time.Duration

	Logger *logrus.Logger
	Now    func() time.Time
}

type chatService struct {
	ChatDeps
}

func NewChatService(d ChatDeps) ChatService {
	if d.Extractor == nil {
		d.Extractor = DefaultExtractor()
	}
	if d.Timeout <= 0 {
		d.Timeout = 30 * time.Second
	}
	if d.Logger == nil {
		d.Logger = logrus.New()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &chatService{ChatDeps: d}
}

func (s *chatService) Send(ctx context.Context, userID, message string) (string, error) {
	const op = "ChatService.Send"

	message = strings.TrimSpace(message)
	if userID == "" || message == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "user_id and message are required", nil)
	}

	ok, err := s.Users.Exists(ctx, userID)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to check user", err)
	}
	if !ok {
		return "", utils.E(utils.CodeNotFound, op, "user not found", utils.ErrNotFound)
	}

	session, err := s.Convos.GetOrCreate(ctx, userID)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to load conversation", err)
	}

	assembled, err := s.Assembler.Assemble(ctx, userID, session.ConversationHistory)
	if err != nil {
		return "", err
	}

	now := s.Now().UTC()
	reply := s.generate(ctx, userID, assembled, message, now)

	if quizType, ok := s.Extractor.Extract(message); ok {
		row := &models.QuizResponse{
			ID:        uuid.NewString(),
			UserID:    userID,
			Question:  extractedQuestion(quizType),
			Answer:    message,
			QuizType:  quizType,
			Timestamp: now,
		}
		if err := s.Quiz.Insert(ctx, row); err != nil {
			return "", utils.E(utils.CodeInternal, op, "failed to save extracted profile data", err)
		}
	}

	// One atomic push for both turns.
	err = s.Convos.Append(ctx, userID,
		models.ChatTurn{Role: models.RoleUser, Message: message, Timestamp: now},
		models.ChatTurn{Role: models.RoleModel, Message: reply, Timestamp: now},
	)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to save conversation", err)
	}

	return reply, nil
}

func (s *chatService) generate(ctx context.Context, userID string, assembled *AssembledContext, message string, now time.Time) string {
	if s.LLM == nil {
		return limitedModeReply
	}

	uc := assembled.User
	uc.CurrentDate = now.Format("2006-01-02")
	prompt := BuildChatPrompt(uc, assembled.ChatMemory, message)

	gctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	text, err := s.LLM.Generate(gctx, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = llm.ErrEmptyResponse
	}
	if err != nil {
		entry := s.Logger.WithFields(logrus.Fields{"user_id": userID, "op": "ChatService.Send"}).WithError(err)
		if errors.Is(err, context.DeadlineExceeded) {
			entry.Warn("chat generation timed out")
		} else {
			entry.Warn("chat generation failed")
		}
		return chatUnavailableReply(message)
	}
	return strings.TrimSpace(text)
}

func (s *chatService) History(ctx context.Context, userID string, limit int) ([]models.ChatTurn, error) {
	const op = "ChatService.History"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	ok, err := s.Users.Exists(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check user", err)
	}
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "user not found", utils.ErrNotFound)
	}

	session, err := s.Convos.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return []models.ChatTurn{}, nil
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load conversation", err)
	}

	turns := session.ConversationHistory
	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	if turns == nil {
		turns = []models.ChatTurn{}
	}
	return turns, nil
}
