package models

import (
	"time"

	"gorm.io/datatypes"
)

// Availability maps a lowercase weekday to "HH:MM-HH:MM" ranges.
type Availability map[string][]string

type Mentor struct {
	ID              string                           `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name            string                           `gorm:"column:name;type:text;not null" json:"name"`
	Industry        string                           `gorm:"column:industry;type:text;index:idx_industry_expertise,priority:1" json:"industry"`
	Expertise       string                           `gorm:"column:expertise;type:text;index:idx_industry_expertise,priority:2" json:"expertise"`
	ExperienceYears int                              `gorm:"column:experience_years" json:"experience_years"`
	Availability    datatypes.JSONType[Availability] `gorm:"column:availability" json:"availability"`
}

func (Mentor) TableName() string { return "mentors" }

type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionRejected ConnectionStatus = "rejected"
)

// MentorConnection is unique per (user, mentor).
type MentorConnection struct {
	ID        string           `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    string           `gorm:"column:user_id;type:uuid;uniqueIndex:idx_user_mentor,priority:1" json:"user_id"`
	MentorID  string           `gorm:"column:mentor_id;type:uuid;uniqueIndex:idx_user_mentor,priority:2;index" json:"mentor_id"`
	Status    ConnectionStatus `gorm:"column:status;type:text;index" json:"status"`
	CreatedAt time.Time        `gorm:"column:created_at" json:"created_at"`
	DecidedAt *time.Time       `gorm:"column:decided_at" json:"decided_at,omitempty"`
}

func (MentorConnection) TableName() string { return "mentor_connections" }
