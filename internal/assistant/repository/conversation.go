package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"frontdesk/pkg/model"
)

// ConversationRepository stores the inbound/outbound exchange for audit.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *model.Conversation) error
	FindBySender(ctx context.Context, sender string, limit int64) ([]model.Conversation, error)
}

type mongoConversationRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewMongoConversationRepository(db *mongo.Database, timeout time.Duration) ConversationRepository {
	return &mongoConversationRepository{
		collection: db.Collection("conversations"),
		timeout:    timeout,
	}
}

func (r *mongoConversationRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *mongoConversationRepository) Create(ctx context.Context, conversation *model.Conversation) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, conversation)
	return err
}

func (r *mongoConversationRepository) FindBySender(ctx context.Context, sender string, limit int64) ([]model.Conversation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"sender": sender}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conversations []model.Conversation
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}
