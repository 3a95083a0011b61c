package postgres

import (
	"context"
	"errors"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
	"gorm.io/gorm"
)

type MentorFilter struct {
	Industry  string
	Expertise string
	Limit     int
}

type MentorRepository interface {
	Create(ctx context.Context, m *models.Mentor) error
	GetByID(ctx context.Context, id string) (*models.Mentor, error)
	List(ctx context.Context, f MentorFilter) ([]models.Mentor, error)
	// ListAcceptedForUser returns mentors linked to the user by an accepted connection.
	ListAcceptedForUser(ctx context.Context, userID string) ([]models.Mentor, error)
}

type mentorRepo struct {
	db *gorm.DB
}

func NewMentorRepo(db *gorm.DB) MentorRepository {
	return &mentorRepo{db: db}
}

func (r *mentorRepo) Create(ctx context.Context, m *models.Mentor) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mentorRepo) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	if !validIDs(id) {
		return nil, utils.ErrNotFound
	}
	var m models.Mentor
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &m, err
}

func (r *mentorRepo) List(ctx context.Context, f MentorFilter) ([]models.Mentor, error) {
	q := r.db.WithContext(ctx).Model(&models.Mentor{})
	if f.Industry != "" {
		q = q.Where("industry = ?", f.Industry)
	}
	if f.Expertise != "" {
		q = q.Where("expertise = ?", f.Expertise)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var rows []models.Mentor
	err := q.Order("name ASC").Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *mentorRepo) ListAcceptedForUser(ctx context.Context, userID string) ([]models.Mentor, error) {
	var rows []models.Mentor
	if !validIDs(userID) {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Model(&models.Mentor{}).
		Select("mentors.*").
		Joins("JOIN mentor_connections mc ON mc.mentor_id = mentors.id").
		Where("mc.user_id = ? AND mc.status = ?", userID, models.ConnectionAccepted).
		Order("mc.created_at ASC").
		Find(&rows).Error
	return rows, err
}
