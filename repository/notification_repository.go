package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leave-tracking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	FindByRecipient(ctx context.Context, recipientID primitive.ObjectID, unreadOnly bool, page, limit int64) ([]models.Notification, int64, error)
	CountUnread(ctx context.Context, recipientID primitive.ObjectID) (int64, error)
	// MarkRead returns (nil, nil) when the notification does not exist or
	// belongs to another recipient.
	MarkRead(ctx context.Context, id, recipientID primitive.ObjectID, at time.Time) (*models.Notification, error)
	MarkAllRead(ctx context.Context, recipientID primitive.ObjectID, at time.Time) (int64, error)
}

type notificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(collection *mongo.Collection) NotificationRepository {
	return &notificationRepository{collection: collection}
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) FindByRecipient(ctx context.Context, recipientID primitive.ObjectID, unreadOnly bool, page, limit int64) ([]models.Notification, int64, error) {
	filter := bson.M{"recipient_id": recipientID}
	if unreadOnly {
		filter["is_read"] = false
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, 0, fmt.Errorf("failed to decode notifications: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return notifications, total, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"recipient_id": recipientID, "is_read": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, recipientID primitive.ObjectID, at time.Time) (*models.Notification, error) {
	filter := bson.M{"_id": id, "recipient_id": recipientID}
	update := bson.M{"$set": bson.M{"is_read": true, "read_at": at}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n models.Notification
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return &n, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID primitive.ObjectID, at time.Time) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"recipient_id": recipientID, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true, "read_at": at}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return result.ModifiedCount, nil
}
