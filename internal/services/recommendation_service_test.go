package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasantha-kumar-s/career-bot/internal/cache"
	"github.com/vasantha-kumar-s/career-bot/internal/logger"
	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"github.com/vasantha-kumar-s/career-bot/internal/testutil"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

const modelRecommendations = "```json\n[\n" +
	`{"career_path": "Data Engineer", "explanation": "You enjoy pipelines.", "confidence_score": 88},` + "\n" +
	`{"career_path": "ML Engineer", "explanation": "You like models.", "confidence_score": "76%"},` + "\n" +
	`{"career_path": "Analyst", "explanation": "You like reports.", "confidence_score": 140.4}` +
	"\n]\n```"

func newRecs(s *stores, gen *testutil.LLM, c cache.Cache) RecommendationService {
	d := RecommendationDeps{
		Users:   s.users,
		Quiz:    s.quiz,
		Recs:    s.recs,
		Cache:   c,
		Timeout: time.Second,
		Logger:  logger.Discard(),
	}
	if gen != nil {
		d.LLM = gen
	}
	return NewRecommendationService(d)
}

func TestRecommendationsRequireQuizData(t *testing.T) {
	s := newStores(t)
	u := s.addUser(t, "Anil")
	gen := &testutil.LLM{Reply: modelRecommendations}

	_, err := newRecs(s, gen, nil).Get(context.Background(), u.ID)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
	assert.ErrorIs(t, err, ErrNoQuizData)
	assert.Zero(t, gen.Calls())

	rows, err := s.recs.ListByUser(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRecommendationsGeneratedOnce(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	u := s.addUser(t, "Bhavna")
	s.addAnswer(t, u.ID, models.QuizTypeInterests, "data pipelines")
	gen := &testutil.LLM{Reply: modelRecommendations}
	svc := newRecs(s, gen, nil)

	first, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, first, 3)

	byPath := map[string]int{}
	for _, r := range first {
		assert.NotEmpty(t, r.ID)
		assert.False(t, r.CreatedAt.IsZero())
		byPath[r.CareerPath] = r.ConfidenceScore
	}
	assert.Equal(t, map[string]int{"Data Engineer": 88, "ML Engineer": 76, "Analyst": 100}, byPath)
	assert.Contains(t, gen.Prompts()[0], "Bhavna")
	assert.Contains(t, gen.Prompts()[0], "data pipelines")

	gen.Reply = `[{"career_path": "Something Else", "explanation": "x", "confidence_score": 1}]`
	second, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, 1, gen.Calls())
}

func TestRecommendationsFallback(t *testing.T) {
	cases := []struct {
		name  string
		gen   *testutil.LLM
		first string
	}{
		{"upstream error", &testutil.LLM{Err: errors.New("quota exceeded")}, "Data Science & Analytics"},
		{"unparsable", &testutil.LLM{Reply: "Here are some ideas: be a chef."}, "Data Science & Analytics"},
		{"disabled", nil, "Technology & Software"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			s := newStores(t)
			u := s.addUser(t, "Chirag")
			s.addAnswer(t, u.ID, models.QuizTypeSkills, "Excel")

			got, err := newRecs(s, tc.gen, nil).Get(ctx, u.ID)
			require.NoError(t, err)
			require.Len(t, got, 3)
			for _, r := range got {
				assert.GreaterOrEqual(t, r.ConfidenceScore, 0)
				assert.LessOrEqual(t, r.ConfidenceScore, 100)
				assert.NotEmpty(t, r.RecommendationText)
			}

			stored, err := s.recs.ListByUser(ctx, u.ID)
			require.NoError(t, err)
			require.Len(t, stored, 3)
			assert.Equal(t, tc.first, stored[0].CareerPath)
		})
	}
}

func TestRecommendationsConcurrentGetGeneratesOnce(t *testing.T) {
	s := newStores(t)
	u := s.addUser(t, "Divya")
	s.addAnswer(t, u.ID, models.QuizTypeInterests, "design")
	gen := &testutil.LLM{Reply: modelRecommendations, Delay: 50 * time.Millisecond}
	svc := newRecs(s, gen, cache.NewMemoryCache(time.Minute, time.Minute))

	var wg sync.WaitGroup
	results := make([][]models.CareerRecommendation, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := svc.Get(context.Background(), u.ID)
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, gen.Calls())
	for _, r := range results {
		assert.Equal(t, ids(results[0]), ids(r))
	}
	stored, err := s.recs.ListByUser(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestRecommendationsServedFromCache(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	u := s.addUser(t, "Esha")
	s.addAnswer(t, u.ID, models.QuizTypeInterests, "music")
	mc := cache.NewMemoryCache(time.Minute, time.Minute)
	svc := newRecs(s, &testutil.LLM{Reply: modelRecommendations}, mc)

	first, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)

	var cached []models.CareerRecommendation
	hit, err := mc.GetJSON(ctx, cache.RecommendationsKey(u.ID), &cached)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, ids(first), ids(cached))

	require.NoError(t, s.recs.DeleteByUser(ctx, u.ID))
	again, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, ids(first), ids(again))
}

func TestRecommendationsRegenerate(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	u := s.addUser(t, "Farhan")
	s.addAnswer(t, u.ID, models.QuizTypeInterests, "finance")
	gen := &testutil.LLM{Reply: modelRecommendations}
	svc := newRecs(s, gen, cache.NewMemoryCache(time.Minute, time.Minute))

	first, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)

	gen.Reply = `[{"career_path": "Financial Analyst", "explanation": "Numbers.", "confidence_score": 90}]`
	fresh, err := svc.Regenerate(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.NotEqual(t, ids(first), ids(fresh))

	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, ids(fresh), ids(got))
}

func TestRecommendationsGetDuringRegenerateKeepsOneSet(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	u := s.addUser(t, "Gauri")
	s.addAnswer(t, u.ID, models.QuizTypeInterests, "robotics")
	mc := cache.NewMemoryCache(time.Minute, time.Minute)
	gen := &testutil.LLM{Reply: modelRecommendations}
	svc := newRecs(s, gen, mc)

	_, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)

	gen.Reply = `[{"career_path": "Robotics Engineer", "explanation": "Hands on.", "confidence_score": 91}]`
	gen.Delay = 100 * time.Millisecond

	var (
		wg    sync.WaitGroup
		fresh []models.CareerRecommendation
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		fresh, err = svc.Regenerate(ctx, u.ID)
		assert.NoError(t, err)
	}()

	// the old set is gone once the second generation call starts
	require.Eventually(t, func() bool { return gen.Calls() == 2 }, time.Second, 5*time.Millisecond)
	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	wg.Wait()

	require.Len(t, fresh, 1)
	assert.Equal(t, ids(fresh), ids(got))
	assert.Equal(t, 2, gen.Calls())

	stored, err := s.recs.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, ids(fresh), ids(stored))

	var cached []models.CareerRecommendation
	hit, err := mc.GetJSON(ctx, cache.RecommendationsKey(u.ID), &cached)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, ids(stored), ids(cached))
}

func ids(recs []models.CareerRecommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}
