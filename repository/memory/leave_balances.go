package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"leave-tracking/models"
	"leave-tracking/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type balanceKey struct {
	user      primitive.ObjectID
	leaveType models.LeaveType
}

type LeaveBalanceStore struct {
	mu       sync.Mutex
	balances map[balanceKey]models.LeaveBalance
}

func NewLeaveBalanceStore() *LeaveBalanceStore {
	return &LeaveBalanceStore{balances: make(map[balanceKey]models.LeaveBalance)}
}

var _ repository.LeaveBalanceRepository = (*LeaveBalanceStore)(nil)

func (s *LeaveBalanceStore) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.LeaveBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.LeaveBalance{}
	for k, b := range s.balances {
		if k.user == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LeaveType < out[j].LeaveType })
	return out, nil
}

func (s *LeaveBalanceStore) EnsureBalance(_ context.Context, userID primitive.ObjectID, leaveType models.LeaveType, description string, at time.Time) (*models.LeaveBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.getOrInsert(userID, leaveType, description, at)
	return &b, nil
}

func (s *LeaveBalanceStore) SetBalance(_ context.Context, userID primitive.ObjectID, leaveType models.LeaveType, balance float64, description string, at time.Time) (*models.LeaveBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.getOrInsert(userID, leaveType, description, at)
	b.Balance = balance
	b.UpdatedAt = at
	s.balances[balanceKey{userID, leaveType}] = b
	return &b, nil
}

func (s *LeaveBalanceStore) getOrInsert(userID primitive.ObjectID, leaveType models.LeaveType, description string, at time.Time) models.LeaveBalance {
	key := balanceKey{userID, leaveType}
	if b, ok := s.balances[key]; ok {
		return b
	}
	b := models.LeaveBalance{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		LeaveType:   leaveType,
		Description: description,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
	s.balances[key] = b
	return b
}

func (s *LeaveBalanceStore) DeleteByUser(_ context.Context, userID primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for k := range s.balances {
		if k.user == userID {
			delete(s.balances, k)
			n++
		}
	}
	return n, nil
}
