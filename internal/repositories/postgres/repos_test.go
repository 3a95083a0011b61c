package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"github.com/vasantha-kumar-s/career-bot/internal/testutil"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

func newUser(t *testing.T, repo UserRepository, email string) *models.User {
	t.Helper()
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         "Priya Sharma",
		Email:        email,
		Demographics: datatypes.JSONMap{"location": "Mumbai, India"},
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(testutil.NewDB(t))

	u := newUser(t, repo, "priya@example.com")

	got, err := repo.GetByEmail(ctx, "priya@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Mumbai, India", got.Demographics["location"])

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrNotFound)

	dup := &models.User{ID: uuid.NewString(), Name: "Other", Email: "priya@example.com", CreatedAt: time.Now()}
	assert.ErrorIs(t, repo.Create(ctx, dup), utils.ErrDuplicate)

	require.NoError(t, repo.UpdateDemographics(ctx, u.ID, datatypes.JSONMap{"goals": "data scientist"}))
	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "data scientist", got.Demographics["goals"])

	assert.ErrorIs(t, repo.UpdateDemographics(ctx, uuid.NewString(), datatypes.JSONMap{}), utils.ErrNotFound)
}

func TestJobRepoListRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewJobRepo(testutil.NewDB(t))

	base := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		industry := "technology"
		if i%5 == 0 {
			industry = "finance"
		}
		require.NoError(t, repo.Create(ctx, &models.JobOpportunity{
			ID:       uuid.NewString(),
			Title:    fmt.Sprintf("Job %02d", i),
			Company:  "Acme",
			Industry: industry,
			Location: "Bangalore, India",
			PostedAt: base.Add(-time.Duration(i) * 24 * time.Hour),
		}))
	}

	jobs, err := repo.ListRecent(ctx, JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 20)
	assert.Equal(t, "Job 00", jobs[0].Title)
	for i := 1; i < len(jobs); i++ {
		assert.False(t, jobs[i].PostedAt.After(jobs[i-1].PostedAt), "jobs must be newest first")
	}

	finance, err := repo.ListRecent(ctx, JobFilter{Industry: "finance", Location: "Bangalore, India"})
	require.NoError(t, err)
	assert.Len(t, finance, 5)

	none, err := repo.ListRecent(ctx, JobFilter{Location: "Delhi, India"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMentorAndConnectionRepos(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := NewUserRepo(db)
	mentors := NewMentorRepo(db)
	conns := NewConnectionRepo(db)

	u := newUser(t, users, "rahul@example.com")

	ds := &models.Mentor{
		ID: uuid.NewString(), Name: "Ruchi Chauhan", Industry: "technology", Expertise: "Data Science", ExperienceYears: 6,
		Availability: datatypes.NewJSONType(models.Availability{"monday": {"10:00-12:00"}}),
	}
	ux := &models.Mentor{ID: uuid.NewString(), Name: "Marmik Patel", Industry: "design", Expertise: "UI/UX Design", ExperienceYears: 7}
	require.NoError(t, mentors.Create(ctx, ds))
	require.NoError(t, mentors.Create(ctx, ux))

	all, err := mentors.List(ctx, MentorFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	capped, err := mentors.List(ctx, MentorFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, capped, 1)

	tech, err := mentors.List(ctx, MentorFilter{Industry: "technology", Expertise: "Data Science"})
	require.NoError(t, err)
	require.Len(t, tech, 1)
	assert.Equal(t, []string{"10:00-12:00"}, tech[0].Availability.Data()["monday"])

	now := time.Now().UTC()
	c1 := &models.MentorConnection{ID: uuid.NewString(), UserID: u.ID, MentorID: ds.ID, Status: models.ConnectionPending, CreatedAt: now}
	require.NoError(t, conns.Create(ctx, c1))

	c2 := &models.MentorConnection{ID: uuid.NewString(), UserID: u.ID, MentorID: ds.ID, Status: models.ConnectionPending, CreatedAt: now}
	assert.ErrorIs(t, conns.Create(ctx, c2), utils.ErrDuplicate)

	accepted, err := mentors.ListAcceptedForUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, accepted)

	assert.ErrorIs(t, conns.Decide(ctx, c1.ID, ux.ID, models.ConnectionAccepted, now), utils.ErrNotFound)
	require.NoError(t, conns.Decide(ctx, c1.ID, ds.ID, models.ConnectionAccepted, now))
	assert.ErrorIs(t, conns.Decide(ctx, c1.ID, ds.ID, models.ConnectionRejected, now), utils.ErrNotFound)

	accepted, err = mentors.ListAcceptedForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "Ruchi Chauhan", accepted[0].Name)

	got, err := conns.GetForMentor(ctx, c1.ID, ds.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionAccepted, got.Status)
	assert.NotNil(t, got.DecidedAt)
}

func TestQuizAndRecommendationRepos(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	quiz := NewQuizRepo(db)
	recs := NewRecommendationRepo(db)

	userID := uuid.NewString()
	base := time.Now().UTC()
	for i, typ := range []string{models.QuizTypeSkills, models.QuizTypeInterests} {
		require.NoError(t, quiz.Insert(ctx, &models.QuizResponse{
			ID: uuid.NewString(), UserID: userID, Question: "q", Answer: "a", QuizType: typ,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}))
	}
	n, err := quiz.CountByUser(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	rows, err := quiz.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.QuizTypeSkills, rows[0].QuizType)

	batch := []models.CareerRecommendation{
		{ID: uuid.NewString(), UserID: userID, CareerPath: "Software Development", ConfidenceScore: 78, CreatedAt: base},
		{ID: uuid.NewString(), UserID: userID, CareerPath: "Data Science & Analytics", ConfidenceScore: 85, CreatedAt: base},
	}
	require.NoError(t, recs.InsertBatch(ctx, batch))

	list, err := recs.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Data Science & Analytics", list[0].CareerPath)

	require.NoError(t, recs.DeleteByUser(ctx, userID))
	list, err = recs.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Postgres answers malformed uuids with an error rather than an empty result;
// those ids must be settled before any statement reaches the database.
func TestMalformedIDsNeverReachTheDatabase(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)

	reject := func(tx *gorm.DB) { _ = tx.AddError(errors.New("statement issued")) }
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:reject_query", reject))
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:reject_update", reject))
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:reject_delete", reject))

	users := NewUserRepo(db)
	mentors := NewMentorRepo(db)
	conns := NewConnectionRepo(db)
	quiz := NewQuizRepo(db)
	recs := NewRecommendationRepo(db)
	resumes := NewResumeRepo(db)
	valid := uuid.NewString()

	for _, id := range []string{"42", "abc", "", "' OR 1=1 --"} {
		ok, err := users.Exists(ctx, id)
		require.NoError(t, err, id)
		assert.False(t, ok)

		_, err = users.GetByID(ctx, id)
		assert.ErrorIs(t, err, utils.ErrNotFound)
		assert.ErrorIs(t, users.UpdateDemographics(ctx, id, datatypes.JSONMap{"goals": "x"}), utils.ErrNotFound)

		_, err = mentors.GetByID(ctx, id)
		assert.ErrorIs(t, err, utils.ErrNotFound)
		accepted, err := mentors.ListAcceptedForUser(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, accepted)

		_, err = conns.GetByPair(ctx, id, valid)
		assert.ErrorIs(t, err, utils.ErrNotFound)
		_, err = conns.GetForMentor(ctx, valid, id)
		assert.ErrorIs(t, err, utils.ErrNotFound)
		assert.ErrorIs(t, conns.Decide(ctx, id, valid, models.ConnectionAccepted, time.Now()), utils.ErrNotFound)

		n, err := quiz.CountByUser(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, n)
		answers, err := quiz.ListByUser(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, answers)

		list, err := recs.ListByUser(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, list)
		require.NoError(t, recs.DeleteByUser(ctx, id))

		_, err = resumes.LatestByUser(ctx, id)
		assert.ErrorIs(t, err, utils.ErrNotFound)
	}

	_, err := users.GetByID(ctx, valid)
	assert.ErrorContains(t, err, "statement issued")
}
