// Package memory holds in-process stores with the same contracts as the
// Mongo repositories.
package memory

import (
	"context"
	"sync"

	"leave-tracking/models"
	"leave-tracking/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LeaveRequestStore struct {
	mu       sync.Mutex
	requests map[primitive.ObjectID]models.LeaveRequest
}

func NewLeaveRequestStore() *LeaveRequestStore {
	return &LeaveRequestStore{requests: make(map[primitive.ObjectID]models.LeaveRequest)}
}

var _ repository.LeaveRequestRepository = (*LeaveRequestStore)(nil)

func (s *LeaveRequestStore) Create(_ context.Context, req *models.LeaveRequest) error {
	if err := repository.ValidateNewLeaveRequest(req); err != nil {
		return err
	}
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[req.ID] = cloneRequest(*req)
	return nil
}

func (s *LeaveRequestStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	out := cloneRequest(req)
	return &out, nil
}

func (s *LeaveRequestStore) FindPendingByManager(_ context.Context, managerID primitive.ObjectID) ([]models.LeaveRequest, error) {
	return s.filter(func(r models.LeaveRequest) bool {
		return r.ManagerID == managerID && r.Status == models.LeaveStatusPending
	}), nil
}

func (s *LeaveRequestStore) FindByRequester(_ context.Context, requesterID primitive.ObjectID) ([]models.LeaveRequest, error) {
	return s.filter(func(r models.LeaveRequest) bool {
		return r.RequesterID == requesterID
	}), nil
}

func (s *LeaveRequestStore) filter(keep func(models.LeaveRequest) bool) []models.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.LeaveRequest{}
	for _, r := range s.requests {
		if keep(r) {
			out = append(out, cloneRequest(r))
		}
	}
	return out
}

func (s *LeaveRequestStore) UpdateStatus(_ context.Context, id primitive.ObjectID, update models.StatusUpdate) (*models.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	if req.Status != models.LeaveStatusPending {
		out := cloneRequest(req)
		return &out, repository.ErrNotPending
	}

	req.Status = update.Status
	req.DecidedBy = update.DecidedBy
	req.DecidedAt = update.DecidedAt
	req.RejectionReason = update.RejectionReason
	req.UpdatedAt = update.UpdatedAt
	req = cloneRequest(req)
	s.requests[id] = req

	out := cloneRequest(req)
	return &out, nil
}

func cloneRequest(r models.LeaveRequest) models.LeaveRequest {
	if r.DecidedBy != nil {
		v := *r.DecidedBy
		r.DecidedBy = &v
	}
	if r.DecidedAt != nil {
		v := *r.DecidedAt
		r.DecidedAt = &v
	}
	if r.RejectionReason != nil {
		v := *r.RejectionReason
		r.RejectionReason = &v
	}
	return r
}
