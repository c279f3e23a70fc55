package service

import (
	"context"

	"leave-tracking/models"
	"leave-tracking/pkg/apperror"
	"leave-tracking/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultInboxLimit = 20
	MaxInboxLimit     = 100
)

type NotificationInbox struct {
	repo  repository.NotificationRepository
	clock Clock
}

func NewNotificationInbox(repo repository.NotificationRepository, clock Clock) *NotificationInbox {
	if clock == nil {
		clock = SystemClock
	}
	return &NotificationInbox{repo: repo, clock: clock}
}

// List returns one page of the recipient's notifications, newest first.
// Out-of-range page and limit values are clamped.
func (i *NotificationInbox) List(ctx context.Context, recipientID primitive.ObjectID, page, limit int64, unreadOnly bool) (*models.NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultInboxLimit
	}
	limit = min(limit, MaxInboxLimit)

	notifications, total, err := i.repo.FindByRecipient(ctx, recipientID, unreadOnly, page, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	unread, err := i.repo.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &models.NotificationPage{
		Notifications: notifications,
		Page:          page,
		Limit:         limit,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

func (i *NotificationInbox) MarkRead(ctx context.Context, notificationID, recipientID primitive.ObjectID) (*models.Notification, error) {
	n, err := i.repo.MarkRead(ctx, notificationID, recipientID, i.clock.Now().UTC())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if n == nil {
		return nil, apperror.NotFound("notification %s not found", notificationID.Hex())
	}
	return n, nil
}

func (i *NotificationInbox) MarkAllRead(ctx context.Context, recipientID primitive.ObjectID) (int64, error) {
	modified, err := i.repo.MarkAllRead(ctx, recipientID, i.clock.Now().UTC())
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return modified, nil
}
