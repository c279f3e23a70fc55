package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var (
	UserCollection         = "users"
	LeaveRequestCollection = "leave_requests"
	NotificationCollection = "notifications"
	LeaveBalanceCollection = "leave_balances"
	RoleChangeCollection   = "role_change_logs"
)

func MongoConnect(ctx context.Context, uri string, logger *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info("connected to MongoDB")
	return client, nil
}

// InitDatabase creates the indexes the leave workflow queries rely on.
func InitDatabase(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "manager_id", Value: 1}}},
		},
		LeaveRequestCollection: {
			{Keys: bson.D{{Key: "manager_id", Value: 1}, {Key: "status", Value: 1}, {Key: "submitted_at", Value: -1}}},
			{Keys: bson.D{{Key: "requester_id", Value: 1}, {Key: "submitted_at", Value: -1}}},
		},
		NotificationCollection: {
			{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "is_read", Value: 1}}},
		},
		LeaveBalanceCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "leave_type", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		RoleChangeCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}}},
			{Keys: bson.D{{Key: "changed_by", Value: 1}, {Key: "timestamp", Value: -1}}},
			{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for collection %s: %w", collection, err)
		}
	}
	return nil
}

func DisconnectDB(client *mongo.Client, logger *zap.Logger) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("error disconnecting from MongoDB", zap.Error(err))
		return
	}
	logger.Info("disconnected from MongoDB")
}
