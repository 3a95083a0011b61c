package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser      = "user"
	RoleModel     = "model"
	RoleAssistant = "assistant"
)

// ChatSession holds the whole conversation log of one user.
type ChatSession struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID              string             `bson:"user_id" json:"user_id"`
	ConversationHistory []ChatTurn         `bson:"conversation_history" json:"conversation_history"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
	LastUpdated         time.Time          `bson:"last_updated" json:"last_updated"`
}

type ChatTurn struct {
	Role      string    `bson:"role" json:"role"` // user|model
	Message   string    `bson:"message" json:"message"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
