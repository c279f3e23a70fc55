package repository

import (
	"context"
	"fmt"
	"time"

	"leave-tracking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LeaveBalanceRepository interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.LeaveBalance, error)
	// EnsureBalance returns the user's balance for leaveType, inserting a
	// zero balance when none exists. An existing balance is never changed.
	EnsureBalance(ctx context.Context, userID primitive.ObjectID, leaveType models.LeaveType, description string, at time.Time) (*models.LeaveBalance, error)
	// SetBalance overwrites the balance, creating the row when missing.
	SetBalance(ctx context.Context, userID primitive.ObjectID, leaveType models.LeaveType, balance float64, description string, at time.Time) (*models.LeaveBalance, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

type leaveBalanceRepository struct {
	collection *mongo.Collection
}

func NewLeaveBalanceRepository(collection *mongo.Collection) LeaveBalanceRepository {
	return &leaveBalanceRepository{collection: collection}
}

func (r *leaveBalanceRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.LeaveBalance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "leave_type", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave balances: %w", err)
	}
	defer cursor.Close(ctx)

	balances := []models.LeaveBalance{}
	if err = cursor.All(ctx, &balances); err != nil {
		return nil, fmt.Errorf("failed to decode leave balances: %w", err)
	}
	return balances, nil
}

func (r *leaveBalanceRepository) EnsureBalance(ctx context.Context, userID primitive.ObjectID, leaveType models.LeaveType, description string, at time.Time) (*models.LeaveBalance, error) {
	update := bson.M{"$setOnInsert": bson.M{
		"balance":     0.0,
		"description": description,
		"created_at":  at,
		"updated_at":  at,
	}}
	return r.upsert(ctx, userID, leaveType, update)
}

func (r *leaveBalanceRepository) SetBalance(ctx context.Context, userID primitive.ObjectID, leaveType models.LeaveType, balance float64, description string, at time.Time) (*models.LeaveBalance, error) {
	update := bson.M{
		"$set": bson.M{
			"balance":    balance,
			"updated_at": at,
		},
		"$setOnInsert": bson.M{
			"description": description,
			"created_at":  at,
		},
	}
	return r.upsert(ctx, userID, leaveType, update)
}

func (r *leaveBalanceRepository) upsert(ctx context.Context, userID primitive.ObjectID, leaveType models.LeaveType, update bson.M) (*models.LeaveBalance, error) {
	filter := bson.M{"user_id": userID, "leave_type": leaveType}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var balance models.LeaveBalance
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&balance); err != nil {
		return nil, fmt.Errorf("failed to upsert %s leave balance: %w", leaveType, err)
	}
	return &balance, nil
}

func (r *leaveBalanceRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete leave balances: %w", err)
	}
	return result.DeletedCount, nil
}
