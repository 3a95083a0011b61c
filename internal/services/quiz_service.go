package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vasantha-kumar-s/career-bot/internal/models"
	pgrepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/postgres"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

type QuizAnswer struct {
	UserID   string
	Question string
	Answer   string
	QuizType string // free-form tag; defaults to general
}

type QuizService interface {
	Submit(ctx context.Context, in QuizAnswer) (*models.QuizResponse, error)
}

type quizService struct {
	users pgrepo.UserRepository
	quiz  pgrepo.QuizRepository
	now   func() time.Time
}

func NewQuizService(users pgrepo.UserRepository, quiz pgrepo.QuizRepository) QuizService {
	return &quizService{users: users, quiz: quiz, now: time.Now}
}

func (s *quizService) Submit(ctx context.Context, in QuizAnswer) (*models.QuizResponse, error) {
	const op = "QuizService.Submit"

	question := strings.TrimSpace(in.Question)
	answer := strings.TrimSpace(in.Answer)
	if in.UserID == "" || question == "" || answer == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id, question and answer are required", nil)
	}

	quizType := strings.TrimSpace(in.QuizType)
	if quizType == "" {
		quizType = models.QuizTypeGeneral
	}

	ok, err := s.users.Exists(ctx, in.UserID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check user", err)
	}
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "user not found", utils.ErrNotFound)
	}

	row := &models.QuizResponse{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Question:  question,
		Answer:    answer,
		QuizType:  quizType,
		Timestamp: s.now().UTC(),
	}
	if err := s.quiz.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save quiz response", err)
	}
	return row, nil
}
