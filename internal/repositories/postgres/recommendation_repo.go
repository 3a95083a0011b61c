package postgres

import (
	"context"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"gorm.io/gorm"
)

type RecommendationRepository interface {
	InsertBatch(ctx context.Context, recs []models.CareerRecommendation) error
	ListByUser(ctx context.Context, userID string) ([]models.CareerRecommendation, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type recommendationRepo struct {
	db *gorm.DB
}

func NewRecommendationRepo(db *gorm.DB) RecommendationRepository {
	return &recommendationRepo{db: db}
}

func (r *recommendationRepo) InsertBatch(ctx context.Context, recs []models.CareerRecommendation) error {
	if len(recs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&recs).Error
}

func (r *recommendationRepo) ListByUser(ctx context.Context, userID string) ([]models.CareerRecommendation, error) {
	var rows []models.CareerRecommendation
	if !validIDs(userID) {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("confidence_score DESC").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *recommendationRepo) DeleteByUser(ctx context.Context, userID string) error {
	if !validIDs(userID) {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CareerRecommendation{}).Error
}
