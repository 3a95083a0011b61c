package models

import "time"

const (
	QuizTypeSkills     = "skills"
	QuizTypeInterests  = "interests"
	QuizTypeExperience = "experience"
	QuizTypeGeneral    = "general"
)

type QuizResponse struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;index:idx_user_quiz_type,priority:1" json:"user_id"`
	Question  string    `gorm:"column:question;type:text" json:"question"`
	Answer    string    `gorm:"column:answer;type:text" json:"answer"`
	QuizType  string    `gorm:"column:quiz_type;type:text;index:idx_user_quiz_type,priority:2" json:"quiz_type"`
	Timestamp time.Time `gorm:"column:timestamp;index" json:"timestamp"`
}

func (QuizResponse) TableName() string { return "quiz_responses" }
