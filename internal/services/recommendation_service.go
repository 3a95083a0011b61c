package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/vasantha-kumar-s/career-bot/internal/cache"
	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"github.com/vasantha-kumar-s/career-bot/internal/providers/llm"
	pgrepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/postgres"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

// ErrNoQuizData is the only user-visible failure of recommendation generation.
var ErrNoQuizData = errors.New("no quiz responses found for this user")

type RecommendationService interface {
	// Get returns the stored recommendations, generating and persisting them once
	// when none exist yet.
	Get(ctx context.Context, userID string) ([]models.CareerRecommendation, error)
	// Regenerate drops the stored set and generates a fresh one.
	Regenerate(ctx context.Context, userID string) ([]models.CareerRecommendation, error)
}

type RecommendationDeps struct {
	Users pgrepo.UserRepository
	Quiz  pgrepo.QuizRepository
	Recs  pgrepo.RecommendationRepository

	// Cache may be nil.
	Cache    cache.Cache
	CacheTTL time.Duration

	// LLM is nil when no generation key is configured.
	LLM     llm.Provider
	Timeout time.Duration

	Logger *logrus.Logger
	Now    func() time.Time
}

const userLockStripes = 64

type recommendationService struct {
	RecommendationDeps
	group singleflight.Group

	// Generation, regeneration and cache fills for one user run under the same
	// stripe, so a reader never races a replace.
	locks [userLockStripes]sync.Mutex
}

func NewRecommendationService(d RecommendationDeps) RecommendationService {
	if d.Timeout <= 0 {
		d.Timeout = 30 * time.Second
	}
	if d.CacheTTL <= 0 {
		d.CacheTTL = time.Hour
	}
	if d.Logger == nil {
		d.Logger = logrus.New()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &recommendationService{RecommendationDeps: d}
}

func (s *recommendationService) Get(ctx context.Context, userID string) ([]models.CareerRecommendation, error) {
	const op = "RecommendationService.Get"

	if err := s.checkPreconditions(ctx, op, userID); err != nil {
		return nil, err
	}

	if recs, ok := s.cached(ctx, userID); ok {
		return recs, nil
	}
	return s.generateOnce(ctx, userID, false)
}

func (s *recommendationService) Regenerate(ctx context.Context, userID string) ([]models.CareerRecommendation, error) {
	const op = "RecommendationService.Regenerate"

	if err := s.checkPreconditions(ctx, op, userID); err != nil {
		return nil, err
	}
	return s.generateOnce(ctx, userID, true)
}

func (s *recommendationService) checkPreconditions(ctx context.Context, op, userID string) error {
	if userID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	ok, err := s.Users.Exists(ctx, userID)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to check user", err)
	}
	if !ok {
		return utils.E(utils.CodeNotFound, op, "user not found", utils.ErrNotFound)
	}

	n, err := s.Quiz.CountByUser(ctx, userID)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to count quiz responses", err)
	}
	if n == 0 {
		return utils.E(utils.CodeNotFound, op, ErrNoQuizData.Error(), ErrNoQuizData)
	}
	return nil
}

// generateOnce collapses concurrent calls with the same intent into one flight.
// Get and Regenerate flights for a user are then serialized by userLock.
func (s *recommendationService) generateOnce(ctx context.Context, userID string, replace bool) ([]models.CareerRecommendation, error) {
	key := "generate:" + userID
	if replace {
		key = "regenerate:" + userID
	}

	ch := s.group.DoChan(key, func() (any, error) {
		// Detached so one caller going away does not fail the others waiting on it.
		return s.generate(context.WithoutCancel(ctx), userID, replace)
	})

	select {
	case <-ctx.Done():
		return nil, utils.E(utils.CodeTimeout, "RecommendationService.generate", "request cancelled", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.CareerRecommendation), nil
	}
}

func (s *recommendationService) userLock(userID string) *sync.Mutex {
	return &s.locks[xxhash.Sum64String(userID)%userLockStripes]
}

func (s *recommendationService) generate(ctx context.Context, userID string, replace bool) ([]models.CareerRecommendation, error) {
	const op = "RecommendationService.generate"

	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if replace {
		if err := s.Recs.DeleteByUser(ctx, userID); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to clear recommendations", err)
		}
		s.invalidate(ctx, userID)
	} else {
		existing, err := s.Recs.ListByUser(ctx, userID)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to load recommendations", err)
		}
		if len(existing) > 0 {
			s.store(ctx, userID, existing)
			return existing, nil
		}
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	quiz, err := s.Quiz.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load quiz responses", err)
	}
	if len(quiz) == 0 {
		return nil, utils.E(utils.CodeNotFound, op, ErrNoQuizData.Error(), ErrNoQuizData)
	}

	parsed := s.ask(ctx, userID, BuildRecommendationPrompt(user.Name, quizContext(quiz)))

	now := s.Now().UTC()
	recs := make([]models.CareerRecommendation, 0, len(parsed))
	for _, p := range parsed {
		recs = append(recs, models.CareerRecommendation{
			ID:                 uuid.NewString(),
			UserID:             userID,
			CareerPath:         p.CareerPath,
			RecommendationText: p.Explanation,
			ConfidenceScore:    clampScore(p.Confidence),
			CreatedAt:          now,
		})
	}

	// Same order the repository lists them in.
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].ConfidenceScore > recs[j].ConfidenceScore })

	if err := s.Recs.InsertBatch(ctx, recs); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save recommendations", err)
	}
	s.store(ctx, userID, recs)

	s.Logger.WithFields(logrus.Fields{"user_id": userID, "count": len(recs)}).Info("recommendations generated")
	return recs, nil
}

// ask never fails: a missing provider, upstream error or unparsable output all
// resolve to a fixed set.
func (s *recommendationService) ask(ctx context.Context, userID, prompt string) []parsedRecommendation {
	if s.LLM == nil {
		return defaultRecommendations
	}

	gctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	log := s.Logger.WithFields(logrus.Fields{"user_id": userID, "op": "RecommendationService.generate"})

	text, err := s.LLM.Generate(gctx, prompt)
	if err != nil {
		log.WithError(err).Warn("recommendation generation failed")
		return fallbackRecommendations
	}

	parsed, err := parseRecommendations(text)
	if err != nil {
		log.WithError(err).Warn("recommendation output not parsable")
		return fallbackRecommendations
	}
	return parsed
}

func (s *recommendationService) cached(ctx context.Context, userID string) ([]models.CareerRecommendation, bool) {
	if s.Cache == nil {
		return nil, false
	}

	var recs []models.CareerRecommendation
	hit, err := s.Cache.GetJSON(ctx, cache.RecommendationsKey(userID), &recs)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("recommendation cache read failed")
		return nil, false
	}
	if !hit || len(recs) == 0 {
		return nil, false
	}
	return recs, true
}

func (s *recommendationService) store(ctx context.Context, userID string, recs []models.CareerRecommendation) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.SetJSON(ctx, cache.RecommendationsKey(userID), recs, s.CacheTTL); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("recommendation cache write failed")
	}
}

func (s *recommendationService) invalidate(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, cache.RecommendationsKey(userID)); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("recommendation cache delete failed")
	}
}
