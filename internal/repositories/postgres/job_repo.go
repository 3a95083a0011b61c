package postgres

import (
	"context"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"gorm.io/gorm"
)

type JobFilter struct {
	Industry string
	Location string
	Limit    int
}

type JobRepository interface {
	Create(ctx context.Context, j *models.JobOpportunity) error
	// ListRecent returns postings newest first.
	ListRecent(ctx context.Context, f JobFilter) ([]models.JobOpportunity, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, j *models.JobOpportunity) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobRepo) ListRecent(ctx context.Context, f JobFilter) ([]models.JobOpportunity, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}

	q := r.db.WithContext(ctx).Model(&models.JobOpportunity{})
	if f.Industry != "" {
		q = q.Where("industry = ?", f.Industry)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}

	var rows []models.JobOpportunity
	err := q.Order("posted_at DESC").
		Order("id ASC").
		Limit(f.Limit).
		Find(&rows).Error
	return rows, err
}
