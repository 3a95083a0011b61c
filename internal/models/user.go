package models

import (
	"time"

	"gorm.io/datatypes"
)

// User is a mentee account. Demographics is free-form; conventional keys are
// skills ([]string), interests, education, experience, goals and location.
type User struct {
	ID           string            `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name         string            `gorm:"column:name;type:text;not null" json:"name"`
	Email        string            `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string            `gorm:"column:password_hash;type:text" json:"-"`
	Demographics datatypes.JSONMap `gorm:"column:demographics" json:"demographics"`
	CreatedAt    time.Time         `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }
