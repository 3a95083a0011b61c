package models

import "time"

type JobOpportunity struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"column:title;type:text;not null" json:"title"`
	Company      string    `gorm:"column:company;type:text;index" json:"company"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	Industry     string    `gorm:"column:industry;type:text;index:idx_industry_location,priority:1" json:"industry"`
	Location     string    `gorm:"column:location;type:text;index:idx_industry_location,priority:2" json:"location"`
	SalaryRange  string    `gorm:"column:salary_range;type:text" json:"salary_range"`
	Requirements string    `gorm:"column:requirements;type:text" json:"requirements"`
	PostedAt     time.Time `gorm:"column:posted_at;index" json:"posted_at"`
}

func (JobOpportunity) TableName() string { return "job_opportunities" }
