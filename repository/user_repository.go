package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leave-tracking/models"
	"leave-tracking/pkg/apperror"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserDirectory resolves users by id. GetUser returns (nil, nil) for an
// unknown id.
type UserDirectory interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(collection *mongo.Collection) *UserRepository {
	return &UserRepository{collection: collection}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Validation("email %s is already registered", user.Email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// UpdateManager sets or, with a nil managerID, clears the user's manager.
// It reports whether the user exists.
func (r *UserRepository) UpdateManager(ctx context.Context, id primitive.ObjectID, managerID *primitive.ObjectID) (bool, error) {
	update := bson.M{"$set": bson.M{
		"manager_id": managerID,
		"updated_at": time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, fmt.Errorf("failed to update user manager: %w", err)
	}
	return result.MatchedCount > 0, nil
}

// UpdateRole moves the user from role "from" to role "to". It reports false
// when the user is missing or no longer holds "from".
func (r *UserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, from, to string) (bool, error) {
	update := bson.M{"$set": bson.M{
		"role":       to,
		"updated_at": time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "role": from}, update)
	if err != nil {
		return false, fmt.Errorf("failed to update user role: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *UserRepository) ListUsers(ctx context.Context, filter bson.M, page, limit int64) ([]models.User, int64, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("failed to decode users: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}
	return users, total, nil
}
