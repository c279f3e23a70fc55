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

// ErrNotPending is returned by UpdateStatus, together with the current
// record, when the request exists but already left the pending state.
var ErrNotPending = errors.New("leave request is no longer pending")

type LeaveRequestRepository interface {
	Create(ctx context.Context, req *models.LeaveRequest) error
	// FindByID returns (nil, nil) when no request has the id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.LeaveRequest, error)
	// FindPendingByManager makes no ordering promise.
	FindPendingByManager(ctx context.Context, managerID primitive.ObjectID) ([]models.LeaveRequest, error)
	FindByRequester(ctx context.Context, requesterID primitive.ObjectID) ([]models.LeaveRequest, error)
	// UpdateStatus applies update only if the request is still pending, as a
	// single conditional write. It returns (nil, nil) when the request does
	// not exist.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, update models.StatusUpdate) (*models.LeaveRequest, error)
}

// ValidateNewLeaveRequest holds the invariants every store enforces on
// creation.
func ValidateNewLeaveRequest(req *models.LeaveRequest) error {
	if req.Days <= 0 {
		return apperror.Validation("days must be greater than zero")
	}
	from, err := time.Parse(models.DateLayout, req.FromDate)
	if err != nil {
		return apperror.Validation("from_date must be formatted as YYYY-MM-DD")
	}
	to, err := time.Parse(models.DateLayout, req.ToDate)
	if err != nil {
		return apperror.Validation("to_date must be formatted as YYYY-MM-DD")
	}
	if from.After(to) {
		return apperror.Validation("from_date must be on or before to_date")
	}
	if req.Status != models.LeaveStatusPending {
		return apperror.Validation("new leave requests must be pending")
	}
	return nil
}

type leaveRequestRepository struct {
	collection *mongo.Collection
}

func NewLeaveRequestRepository(collection *mongo.Collection) LeaveRequestRepository {
	return &leaveRequestRepository{collection: collection}
}

func (r *leaveRequestRepository) Create(ctx context.Context, req *models.LeaveRequest) error {
	if err := ValidateNewLeaveRequest(req); err != nil {
		return err
	}
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to insert leave request: %w", err)
	}
	return nil
}

func (r *leaveRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find leave request by id: %w", err)
	}
	return &request, nil
}

func (r *leaveRequestRepository) FindPendingByManager(ctx context.Context, managerID primitive.ObjectID) ([]models.LeaveRequest, error) {
	filter := bson.M{"manager_id": managerID, "status": models.LeaveStatusPending}
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	return r.find(ctx, filter, opts)
}

func (r *leaveRequestRepository) FindByRequester(ctx context.Context, requesterID primitive.ObjectID) ([]models.LeaveRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	return r.find(ctx, bson.M{"requester_id": requesterID}, opts)
}

func (r *leaveRequestRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.LeaveRequest, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []models.LeaveRequest{}
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode leave requests: %w", err)
	}
	return requests, nil
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, update models.StatusUpdate) (*models.LeaveRequest, error) {
	filter := bson.M{"_id": id, "status": models.LeaveStatusPending}
	set := bson.M{"$set": bson.M{
		"status":           update.Status,
		"decided_by":       update.DecidedBy,
		"decided_at":       update.DecidedAt,
		"rejection_reason": update.RejectionReason,
		"updated_at":       update.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.LeaveRequest
	err := r.collection.FindOneAndUpdate(ctx, filter, set, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update leave request status: %w", err)
	}

	// The conditional write matched nothing: tell a missing request apart
	// from one that somebody else already moved out of pending.
	current, err := r.FindByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}
	return current, ErrNotPending
}
