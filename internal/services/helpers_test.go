package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	pgrepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/postgres"
	"github.com/vasantha-kumar-s/career-bot/internal/testutil"
)

type stores struct {
	users   pgrepo.UserRepository
	quiz    pgrepo.QuizRepository
	recs    pgrepo.RecommendationRepository
	mentors pgrepo.MentorRepository
	conns   pgrepo.ConnectionRepository
	jobs    pgrepo.JobRepository
	resumes pgrepo.ResumeRepository
	convos  *testutil.ConversationStore
}

func newStores(t *testing.T) *stores {
	t.Helper()
	db := testutil.NewDB(t)
	return &stores{
		users:   pgrepo.NewUserRepo(db),
		quiz:    pgrepo.NewQuizRepo(db),
		recs:    pgrepo.NewRecommendationRepo(db),
		mentors: pgrepo.NewMentorRepo(db),
		conns:   pgrepo.NewConnectionRepo(db),
		jobs:    pgrepo.NewJobRepo(db),
		resumes: pgrepo.NewResumeRepo(db),
		convos:  testutil.NewConversationStore(),
	}
}

func (s *stores) assembler() ContextAssembler {
	return NewContextAssembler(s.users, s.quiz, s.recs, s.mentors, s.jobs)
}

func (s *stores) addUser(t *testing.T, name string) *models.User {
	t.Helper()
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        uuid.NewString() + "@example.com",
		Demographics: datatypes.JSONMap{"education": "B.Tech", "goals": "become a data engineer"},
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.users.Create(context.Background(), u))
	return u
}

func (s *stores) addAnswer(t *testing.T, userID, quizType, answer string) {
	t.Helper()
	require.NoError(t, s.quiz.Insert(context.Background(), &models.QuizResponse{
		ID:        uuid.NewString(),
		UserID:    userID,
		Question:  "What do you enjoy?",
		Answer:    answer,
		QuizType:  quizType,
		Timestamp: time.Now().UTC(),
	}))
}

func (s *stores) addMentor(t *testing.T, name, industry, expertise string) *models.Mentor {
	t.Helper()
	m := &models.Mentor{
		ID:              uuid.NewString(),
		Name:            name,
		Industry:        industry,
		Expertise:       expertise,
		ExperienceYears: 8,
		Availability:    datatypes.NewJSONType(models.Availability{"monday": {"10:00-12:00"}}),
	}
	require.NoError(t, s.mentors.Create(context.Background(), m))
	return m
}

func (s *stores) addJobs(t *testing.T, n int, base time.Time) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, s.jobs.Create(context.Background(), &models.JobOpportunity{
			ID:       uuid.NewString(),
			Title:    fmt.Sprintf("Job %d", i),
			Company:  "Acme",
			Industry: "Technology",
			Location: "Bengaluru",
			PostedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
}
