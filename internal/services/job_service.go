package services

import (
	"context"
	"strings"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	pgrepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/postgres"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

const jobListLimit = 20

type JobService interface {
	// List returns the most recent postings, optionally filtered by exact industry and location.
	List(ctx context.Context, industry, location string) ([]models.JobOpportunity, error)
}

type jobService struct {
	jobs pgrepo.JobRepository
}

func NewJobService(jobs pgrepo.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

func (s *jobService) List(ctx context.Context, industry, location string) ([]models.JobOpportunity, error) {
	const op = "JobService.List"

	rows, err := s.jobs.ListRecent(ctx, pgrepo.JobFilter{
		Industry: strings.TrimSpace(industry),
		Location: strings.TrimSpace(location),
		Limit:    jobListLimit,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return rows, nil
}
