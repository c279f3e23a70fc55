package repository

import (
	"context"
	"fmt"

	"leave-tracking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RoleChangeLogRepository interface {
	Create(ctx context.Context, entry *models.RoleChangeLog) error
	// List pages newest first. A nil userID lists every user's changes.
	List(ctx context.Context, userID *primitive.ObjectID, page, limit int64) ([]models.RoleChangeLog, int64, error)
}

type roleChangeLogRepository struct {
	collection *mongo.Collection
}

func NewRoleChangeLogRepository(collection *mongo.Collection) RoleChangeLogRepository {
	return &roleChangeLogRepository{collection: collection}
}

func (r *roleChangeLogRepository) Create(ctx context.Context, entry *models.RoleChangeLog) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert role change log: %w", err)
	}
	return nil
}

func (r *roleChangeLogRepository) List(ctx context.Context, userID *primitive.ObjectID, page, limit int64) ([]models.RoleChangeLog, int64, error) {
	filter := bson.M{}
	if userID != nil {
		filter["user_id"] = *userID
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query role change logs: %w", err)
	}
	defer cursor.Close(ctx)

	logs := []models.RoleChangeLog{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode role change logs: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count role change logs: %w", err)
	}
	return logs, total, nil
}
