package memory

import (
	"context"
	"sort"
	"sync"

	"leave-tracking/models"
	"leave-tracking/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoleChangeLogStore struct {
	mu      sync.Mutex
	entries []models.RoleChangeLog
	// CreateErr, when set, is returned by Create.
	CreateErr error
}

func NewRoleChangeLogStore() *RoleChangeLogStore {
	return &RoleChangeLogStore{}
}

var _ repository.RoleChangeLogRepository = (*RoleChangeLogStore)(nil)

func (s *RoleChangeLogStore) Create(_ context.Context, entry *models.RoleChangeLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return s.CreateErr
	}
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *RoleChangeLogStore) List(_ context.Context, userID *primitive.ObjectID, page, limit int64) ([]models.RoleChangeLog, int64, error) {
	s.mu.Lock()
	matched := []models.RoleChangeLog{}
	for _, e := range s.entries {
		if userID == nil || e.UserID == *userID {
			matched = append(matched, e)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Timestamp.After(matched[j].Timestamp) })

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= total {
		return []models.RoleChangeLog{}, total, nil
	}
	return matched[start:min(start+limit, total)], total, nil
}
