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

type NotificationStore struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{}
}

var _ repository.NotificationRepository = (*NotificationStore)(nil)

func (s *NotificationStore) Create(_ context.Context, n *models.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, *n)
	return nil
}

// All returns every stored notification in insertion order.
func (s *NotificationStore) All() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.notifications...)
}

func (s *NotificationStore) FindByRecipient(_ context.Context, recipientID primitive.ObjectID, unreadOnly bool, page, limit int64) ([]models.Notification, int64, error) {
	s.mu.Lock()
	matched := []models.Notification{}
	for _, n := range s.notifications {
		if n.RecipientID == recipientID && (!unreadOnly || !n.IsRead) {
			matched = append(matched, n)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= total {
		return []models.Notification{}, total, nil
	}
	end := min(start+limit, total)
	return matched[start:end], total, nil
}

func (s *NotificationStore) CountUnread(_ context.Context, recipientID primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, n := range s.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *NotificationStore) MarkRead(_ context.Context, id, recipientID primitive.ObjectID, at time.Time) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		n := &s.notifications[i]
		if n.ID == id && n.RecipientID == recipientID {
			if !n.IsRead {
				n.IsRead = true
				readAt := at
				n.ReadAt = &readAt
			}
			out := *n
			return &out, nil
		}
	}
	return nil, nil
}

func (s *NotificationStore) MarkAllRead(_ context.Context, recipientID primitive.ObjectID, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var modified int64
	for i := range s.notifications {
		n := &s.notifications[i]
		if n.RecipientID == recipientID && !n.IsRead {
			n.IsRead = true
			readAt := at
			n.ReadAt = &readAt
			modified++
		}
	}
	return modified, nil
}
