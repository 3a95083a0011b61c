package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
	"gorm.io/gorm"
)

type ConnectionRepository interface {
	// Create returns utils.ErrDuplicate when the (user, mentor) pair already exists.
	Create(ctx context.Context, c *models.MentorConnection) error
	GetByPair(ctx context.Context, userID, mentorID string) (*models.MentorConnection, error)
	GetForMentor(ctx context.Context, id, mentorID string) (*models.MentorConnection, error)
	// Decide moves a pending connection to status; it returns utils.ErrNotFound
	// when no pending row matched.
	Decide(ctx context.Context, id, mentorID string, status models.ConnectionStatus, at time.Time) error
}

type connectionRepo struct {
	db *gorm.DB
}

func NewConnectionRepo(db *gorm.DB) ConnectionRepository {
	return &connectionRepo{db: db}
}

func (r *connectionRepo) Create(ctx context.Context, c *models.MentorConnection) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDuplicate
	}
	return err
}

func (r *connectionRepo) GetByPair(ctx context.Context, userID, mentorID string) (*models.MentorConnection, error) {
	if !validIDs(userID, mentorID) {
		return nil, utils.ErrNotFound
	}
	var c models.MentorConnection
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND mentor_id = ?", userID, mentorID).
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}

func (r *connectionRepo) GetForMentor(ctx context.Context, id, mentorID string) (*models.MentorConnection, error) {
	if !validIDs(id, mentorID) {
		return nil, utils.ErrNotFound
	}
	var c models.MentorConnection
	err := r.db.WithContext(ctx).
		Where("id = ? AND mentor_id = ?", id, mentorID).
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}

func (r *connectionRepo) Decide(ctx context.Context, id, mentorID string, status models.ConnectionStatus, at time.Time) error {
	if !validIDs(id, mentorID) {
		return utils.ErrNotFound
	}
	res := r.db.WithContext(ctx).
		Model(&models.MentorConnection{}).
		Where("id = ? AND mentor_id = ? AND status = ?", id, mentorID, models.ConnectionPending).
		Updates(map[string]any{
			"status":     status,
			"decided_at": at.UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
