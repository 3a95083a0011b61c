package models

import "time"

type CareerRecommendation struct {
	ID                 string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID             string    `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	CareerPath         string    `gorm:"column:career_path;type:text" json:"career_path"`
	RecommendationText string    `gorm:"column:recommendation_text;type:text" json:"text"`
	ConfidenceScore    int       `gorm:"column:confidence_score" json:"confidence"` // 0-100
	CreatedAt          time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (CareerRecommendation) TableName() string { return "career_recommendations" }
