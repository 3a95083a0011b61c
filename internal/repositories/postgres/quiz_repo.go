package postgres

import (
	"context"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Insert(ctx context.Context, q *models.QuizResponse) error
	ListByUser(ctx context.Context, userID string) ([]models.QuizResponse, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type quizRepo struct {
	db *gorm.DB
}

func NewQuizRepo(db *gorm.DB) QuizRepository {
	return &quizRepo{db: db}
}

func (r *quizRepo) Insert(ctx context.Context, q *models.QuizResponse) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// ListByUser returns responses oldest first.
func (r *quizRepo) ListByUser(ctx context.Context, userID string) ([]models.QuizResponse, error) {
	var rows []models.QuizResponse
	if !validIDs(userID) {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *quizRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if !validIDs(userID) {
		return 0, nil
	}
	err := r.db.WithContext(ctx).
		Model(&models.QuizResponse{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
