package services

import (
	"context"
	"errors"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	pgrepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/postgres"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

const relevantJobLimit = 5

// UserContext is the structured snapshot embedded in every chat prompt.
type UserContext struct {
	Name            string                  `json:"name"`
	Demographics    map[string]any          `json:"demographics"`
	QuizResponses   []QuizContext           `json:"quiz_responses"`
	Recommendations []RecommendationContext `json:"recommendations"`
	Mentors         []MentorContext         `json:"mentors"`
	RelevantJobs    []JobContext            `json:"relevant_jobs"`
	CurrentDate     string                  `json:"current_date,omitempty"`
}

type QuizContext struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Type     string `json:"type"`
}

type RecommendationContext struct {
	CareerPath string `json:"career"`
	Text       string `json:"text"`
	Confidence int    `json:"confidence"`
}

type MentorContext struct {
	Name      string `json:"name"`
	Industry  string `json:"industry"`
	Expertise string `json:"expertise"`
}

type JobContext struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Industry string `json:"industry"`
	Location string `json:"location"`
}

type AssembledContext struct {
	User       UserContext
	ChatMemory string
}

// ContextAssembler gathers profile, quiz, recommendation, mentor and job data for a
// user and renders the recent conversation. It never writes.
type ContextAssembler interface {
	Assemble(ctx context.Context, userID string, history []models.ChatTurn) (*AssembledContext, error)
}

type contextAssembler struct {
	users   pgrepo.UserRepository
	quiz    pgrepo.QuizRepository
	recs    pgrepo.RecommendationRepository
	mentors pgrepo.MentorRepository
	jobs    pgrepo.JobRepository
}

func NewContextAssembler(
	users pgrepo.UserRepository,
	quiz pgrepo.QuizRepository,
	recs pgrepo.RecommendationRepository,
	mentors pgrepo.MentorRepository,
	jobs pgrepo.JobRepository,
) ContextAssembler {
	return &contextAssembler{users: users, quiz: quiz, recs: recs, mentors: mentors, jobs: jobs}
}

func (a *contextAssembler) Assemble(ctx context.Context, userID string, history []models.ChatTurn) (*AssembledContext, error) {
	const op = "ContextAssembler.Assemble"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}

	quiz, err := a.quiz.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load quiz responses", err)
	}
	var recs []models.CareerRecommendation
	if len(quiz) > 0 {
		recs, err = a.recs.ListByUser(ctx, userID)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to load recommendations", err)
		}
	}
	mentors, err := a.mentors.ListAcceptedForUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load mentors", err)
	}

	uc := UserContext{
		Name:            user.Name,
		Demographics:    map[string]any{},
		QuizResponses:   quizContext(quiz),
		Recommendations: make([]RecommendationContext, 0, len(recs)),
		Mentors:         make([]MentorContext, 0, len(mentors)),
		RelevantJobs:    []JobContext{},
	}
	for k, v := range user.Demographics {
		uc.Demographics[k] = v
	}
	for _, r := range recs {
		uc.Recommendations = append(uc.Recommendations, RecommendationContext{
			CareerPath: r.CareerPath,
			Text:       r.RecommendationText,
			Confidence: r.ConfidenceScore,
		})
	}
	for _, m := range mentors {
		uc.Mentors = append(uc.Mentors, MentorContext{Name: m.Name, Industry: m.Industry, Expertise: m.Expertise})
	}

	// Jobs are not matched against interests: any interest data unlocks the most recent postings.
	if hasInterests(quiz) {
		jobs, err := a.jobs.ListRecent(ctx, pgrepo.JobFilter{Limit: relevantJobLimit})
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to load jobs", err)
		}
		for _, j := range jobs {
			uc.RelevantJobs = append(uc.RelevantJobs, JobContext{
				Title:    j.Title,
				Company:  j.Company,
				Industry: j.Industry,
				Location: j.Location,
			})
		}
	}

	return &AssembledContext{
		User:       uc,
		ChatMemory: FormatChatMemory(history, ChatMemoryWindow),
	}, nil
}

func quizContext(rows []models.QuizResponse) []QuizContext {
	out := make([]QuizContext, 0, len(rows))
	for _, q := range rows {
		out = append(out, QuizContext{Question: q.Question, Answer: q.Answer, Type: q.QuizType})
	}
	return out
}

func hasInterests(rows []models.QuizResponse) bool {
	for _, q := range rows {
		if q.QuizType == models.QuizTypeInterests {
			return true
		}
	}
	return false
}
