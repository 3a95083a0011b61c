package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	pgrepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/postgres"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

const demoUserLimit = 10

var validate = validator.New()

type CreateUserInput struct {
	Name         string
	Email        string
	Password     string // optional
	Demographics map[string]any
}

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*models.User, error)
	Get(ctx context.Context, userID string) (*models.User, error)
	ListDemo(ctx context.Context) ([]models.User, error)
	// UpdateDemographics merges patch into the stored mapping; a nil value removes the key.
	UpdateDemographics(ctx context.Context, userID string, patch map[string]any) (*models.User, error)
}

type userService struct {
	users pgrepo.UserRepository
	now   func() time.Time
}

func NewUserService(users pgrepo.UserRepository) UserService {
	return &userService{users: users, now: time.Now}
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	const op = "UserService.Create"

	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name and email are required", nil)
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email is invalid", err)
	}

	if existing, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, emailTaken(op, existing.ID)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Demographics: datatypes.JSONMap{},
		CreatedAt:    s.now().UTC(),
	}
	for k, v := range in.Demographics {
		if v != nil {
			u.Demographics[k] = v
		}
	}
	if in.Password != "" {
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
		}
		u.PasswordHash = hash
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			if existing, gerr := s.users.GetByEmail(ctx, email); gerr == nil {
				return nil, emailTaken(op, existing.ID)
			}
			return nil, utils.E(utils.CodeConflict, op, "user with this email already exists", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return u, nil
}

func emailTaken(op, userID string) error {
	return utils.EM(utils.CodeConflict, op, "user with this email already exists", utils.ErrDuplicate, map[string]any{
		"user_id": userID,
	})
}

func (s *userService) Get(ctx context.Context, userID string) (*models.User, error) {
	const op = "UserService.Get"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	return u, nil
}

func (s *userService) ListDemo(ctx context.Context) ([]models.User, error) {
	const op = "UserService.ListDemo"

	rows, err := s.users.List(ctx, demoUserLimit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list users", err)
	}
	return rows, nil
}

func (s *userService) UpdateDemographics(ctx context.Context, userID string, patch map[string]any) (*models.User, error) {
	const op = "UserService.UpdateDemographics"

	if len(patch) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "demographics are required", nil)
	}

	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := datatypes.JSONMap{}
	for k, v := range u.Demographics {
		merged[k] = v
	}
	for k, v := range patch {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	if err := s.users.UpdateDemographics(ctx, userID, merged); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update demographics", err)
	}
	u.Demographics = merged
	return u, nil
}
