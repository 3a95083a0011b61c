package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConversationRepository stores one chat session document per user.
type ConversationRepository interface {
	// GetOrCreate returns the user's session, inserting an empty one on first use.
	GetOrCreate(ctx context.Context, userID string) (*models.ChatSession, error)
	Get(ctx context.Context, userID string) (*models.ChatSession, error)
	// Append pushes turns onto the stored history in a single atomic update.
	Append(ctx context.Context, userID string, turns ...models.ChatTurn) error
	// DeleteAll removes every session; used when reseeding.
	DeleteAll(ctx context.Context) (int64, error)
}

type conversationRepo struct {
	col *mongo.Collection
}

func NewConversationRepo(db *mongo.Database) ConversationRepository {
	return &conversationRepo{col: db.Collection("chat_sessions")}
}

func (r *conversationRepo) GetOrCreate(ctx context.Context, userID string) (*models.ChatSession, error) {
	s, err := r.upsertEmpty(ctx, userID)
	// two concurrent first messages race on the unique user_id index; the loser reads the winner's row
	if mongo.IsDuplicateKeyError(err) {
		return r.Get(ctx, userID)
	}
	return s, err
}

func (r *conversationRepo) upsertEmpty(ctx context.Context, userID string) (*models.ChatSession, error) {
	now := time.Now().UTC()

	var s models.ChatSession
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{"$setOnInsert": bson.M{
			"conversation_history": bson.A{},
			"created_at":           now,
			"last_updated":         now,
		}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *conversationRepo) Get(ctx context.Context, userID string) (*models.ChatSession, error) {
	var s models.ChatSession
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *conversationRepo) Append(ctx context.Context, userID string, turns ...models.ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}
	now := time.Now().UTC()
	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$push":        bson.M{"conversation_history": bson.M{"$each": turns}},
			"$set":         bson.M{"last_updated": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *conversationRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
