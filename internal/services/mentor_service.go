package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vasantha-kumar-s/career-bot/internal/models"
	pgrepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/postgres"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

type MentorService interface {
	List(ctx context.Context, industry, expertise string) ([]models.Mentor, error)
	Connect(ctx context.Context, userID, mentorID string) (*models.MentorConnection, error)
	Accept(ctx context.Context, mentorID, connectionID string) (*models.MentorConnection, error)
	Reject(ctx context.Context, mentorID, connectionID string) (*models.MentorConnection, error)
}

type mentorService struct {
	users   pgrepo.UserRepository
	mentors pgrepo.MentorRepository
	conns   pgrepo.ConnectionRepository
	limit   int
	now     func() time.Time
}

func NewMentorService(users pgrepo.UserRepository, mentors pgrepo.MentorRepository, conns pgrepo.ConnectionRepository, listLimit int) MentorService {
	if listLimit <= 0 {
		listLimit = 50
	}
	return &mentorService{users: users, mentors: mentors, conns: conns, limit: listLimit, now: time.Now}
}

func (s *mentorService) List(ctx context.Context, industry, expertise string) ([]models.Mentor, error) {
	const op = "MentorService.List"

	rows, err := s.mentors.List(ctx, pgrepo.MentorFilter{
		Industry:  strings.TrimSpace(industry),
		Expertise: strings.TrimSpace(expertise),
		Limit:     s.limit,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list mentors", err)
	}
	return rows, nil
}

func (s *mentorService) Connect(ctx context.Context, userID, mentorID string) (*models.MentorConnection, error) {
	const op = "MentorService.Connect"

	if userID == "" || mentorID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and mentor_id are required", nil)
	}

	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check user", err)
	}
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "user not found", utils.ErrNotFound)
	}
	if _, err := s.mentors.GetByID(ctx, mentorID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "mentor not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load mentor", err)
	}

	if existing, err := s.conns.GetByPair(ctx, userID, mentorID); err == nil {
		return nil, connectionExists(op, existing)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to check connection", err)
	}

	conn := &models.MentorConnection{
		ID:        uuid.NewString(),
		UserID:    userID,
		MentorID:  mentorID,
		Status:    models.ConnectionPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.conns.Create(ctx, conn); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			// Lost a race with a concurrent request for the same pair.
			if existing, gerr := s.conns.GetByPair(ctx, userID, mentorID); gerr == nil {
				return nil, connectionExists(op, existing)
			}
			return nil, utils.E(utils.CodeConflict, op, "connection already exists", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create connection", err)
	}
	return conn, nil
}

func connectionExists(op string, c *models.MentorConnection) error {
	return utils.EM(utils.CodeConflict, op, "connection already exists", utils.ErrDuplicate, map[string]any{
		"connection_id": c.ID,
		"status":        c.Status,
	})
}

func (s *mentorService) Accept(ctx context.Context, mentorID, connectionID string) (*models.MentorConnection, error) {
	return s.decide(ctx, "MentorService.Accept", mentorID, connectionID, models.ConnectionAccepted)
}

func (s *mentorService) Reject(ctx context.Context, mentorID, connectionID string) (*models.MentorConnection, error) {
	return s.decide(ctx, "MentorService.Reject", mentorID, connectionID, models.ConnectionRejected)
}

// decide moves a pending connection owned by mentorID to status. Connections of other
// mentors are reported as not found.
func (s *mentorService) decide(ctx context.Context, op, mentorID, connectionID string, status models.ConnectionStatus) (*models.MentorConnection, error) {
	if mentorID == "" || connectionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "mentor_id and connection_id are required", nil)
	}

	conn, err := s.conns.GetForMentor(ctx, connectionID, mentorID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "connection not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load connection", err)
	}
	if conn.Status != models.ConnectionPending {
		return nil, alreadyDecided(op, conn)
	}

	at := s.now().UTC()
	if err := s.conns.Decide(ctx, connectionID, mentorID, status, at); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			if cur, gerr := s.conns.GetForMentor(ctx, connectionID, mentorID); gerr == nil {
				return nil, alreadyDecided(op, cur)
			}
			return nil, utils.E(utils.CodeNotFound, op, "connection not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update connection", err)
	}

	conn.Status = status
	conn.DecidedAt = &at
	return conn, nil
}

func alreadyDecided(op string, c *models.MentorConnection) error {
	return utils.EM(utils.CodeConflict, op, "connection already "+string(c.Status), nil, map[string]any{
		"connection_id": c.ID,
		"status":        c.Status,
	})
}
