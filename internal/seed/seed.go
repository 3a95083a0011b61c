// Package seed loads demo users, quiz answers, mentors and jobs into the relational store.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
)

type Options struct {
	// Reset clears existing data first; without it an already seeded database is left alone.
	Reset bool
	Now   time.Time
}

type Summary struct {
	Skipped bool
	Users   int
	Answers int
	Mentors int
	Jobs    int
}

// Run seeds the database in one transaction.
func Run(ctx context.Context, db *gorm.DB, opts Options, log *logrus.Logger) (Summary, error) {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	now := opts.Now.UTC()

	var sum Summary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.User{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 && !opts.Reset {
			sum.Skipped = true
			return nil
		}
		if opts.Reset {
			if err := wipe(tx); err != nil {
				return err
			}
		}

		for _, du := range users {
			u := models.User{
				ID:           uuid.NewString(),
				Name:         du.Name,
				Email:        du.Email,
				Demographics: datatypes.JSONMap(du.Demographics),
				CreatedAt:    now.Add(-du.JoinedAgo),
			}
			if err := tx.Create(&u).Error; err != nil {
				return fmt.Errorf("user %s: %w", du.Email, err)
			}
			sum.Users++

			for _, a := range du.Answers {
				q := models.QuizResponse{
					ID:        uuid.NewString(),
					UserID:    u.ID,
					Question:  a.Question,
					Answer:    a.Answer,
					QuizType:  a.QuizType,
					Timestamp: u.CreatedAt.Add(time.Hour),
				}
				if err := tx.Create(&q).Error; err != nil {
					return fmt.Errorf("quiz for %s: %w", du.Email, err)
				}
				sum.Answers++
			}
		}

		for _, dm := range mentors {
			m := models.Mentor{
				ID:              uuid.NewString(),
				Name:            dm.Name,
				Industry:        dm.Industry,
				Expertise:       dm.Expertise,
				ExperienceYears: dm.Years,
				Availability:    datatypes.NewJSONType(dm.Availability),
			}
			if err := tx.Create(&m).Error; err != nil {
				return fmt.Errorf("mentor %s: %w", dm.Name, err)
			}
			sum.Mentors++
		}

		for _, dj := range jobs {
			j := models.JobOpportunity{
				ID:           uuid.NewString(),
				Title:        dj.Title,
				Company:      dj.Company,
				Description:  dj.Description,
				Industry:     dj.Industry,
				Location:     dj.Location,
				SalaryRange:  dj.SalaryRange,
				Requirements: dj.Requirements,
				PostedAt:     now.Add(-dj.PostedAgo),
			}
			if err := tx.Create(&j).Error; err != nil {
				return fmt.Errorf("job %s: %w", dj.Title, err)
			}
			sum.Jobs++
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	log.WithFields(logrus.Fields{
		"skipped": sum.Skipped,
		"users":   sum.Users,
		"answers": sum.Answers,
		"mentors": sum.Mentors,
		"jobs":    sum.Jobs,
	}).Info("seed finished")
	return sum, nil
}

// wipe deletes children before parents.
func wipe(tx *gorm.DB) error {
	for _, m := range []any{
		&models.Resume{},
		&models.MentorConnection{},
		&models.CareerRecommendation{},
		&models.QuizResponse{},
		&models.JobOpportunity{},
		&models.Mentor{},
		&models.User{},
	} {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
