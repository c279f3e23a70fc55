package service

import (
	"context"
	"fmt"
	"time"

	"leave-tracking/messaging"
	"leave-tracking/models"
	"leave-tracking/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DefaultPublishTimeout bounds a single lifecycle event publish.
const DefaultPublishTimeout = 2 * time.Second

type NotificationWriter interface {
	Create(ctx context.Context, n *models.Notification) error
}

// NotificationDispatcher turns committed leave transitions into inbox
// notifications and lifecycle events. Every failure is logged and dropped.
type NotificationDispatcher struct {
	notifications  NotificationWriter
	users          repository.UserDirectory
	events         messaging.EventPublisher
	clock          Clock
	publishTimeout time.Duration
	logger         *zap.Logger
}

var _ LifecycleHook = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(
	notifications NotificationWriter,
	users repository.UserDirectory,
	events messaging.EventPublisher,
	clock Clock,
	logger *zap.Logger,
) *NotificationDispatcher {
	if events == nil {
		events = messaging.NoopEventPublisher{}
	}
	if clock == nil {
		clock = SystemClock
	}
	return &NotificationDispatcher{
		notifications:  notifications,
		users:          users,
		events:         events,
		clock:          clock,
		publishTimeout: DefaultPublishTimeout,
		logger:         logger.Named("leave.notification"),
	}
}

// WithPublishTimeout overrides DefaultPublishTimeout. Non-positive values are
// ignored.
func (d *NotificationDispatcher) WithPublishTimeout(timeout time.Duration) *NotificationDispatcher {
	if timeout > 0 {
		d.publishTimeout = timeout
	}
	return d
}

func (d *NotificationDispatcher) Submitted(ctx context.Context, req *models.LeaveRequest, requester *models.User) {
	payload := d.payload(ctx, req)
	name := req.RequesterID.Hex()
	if requester != nil {
		payload.RequesterName = requester.Name
		payload.RequesterEmail = requester.Email
		name = requester.Name
	}

	if req.ManagerID != req.RequesterID {
		d.notify(ctx, req, req.ManagerID, models.NotificationLeaveSubmitted,
			"New leave request",
			fmt.Sprintf("%s requested %d day(s) of %s from %s to %s.",
				name, req.Days, req.LeaveType.Label(), req.FromDate, req.ToDate),
			payload)
	}
	d.notify(ctx, req, req.RequesterID, models.NotificationLeaveSubmitted,
		"Leave request submitted",
		fmt.Sprintf("Your %s request for %d day(s) is awaiting approval.", req.LeaveType.Label(), req.Days),
		payload)

	d.publish(ctx, messaging.EventLeaveSubmitted, req)
}

func (d *NotificationDispatcher) Approved(ctx context.Context, req *models.LeaveRequest) {
	payload := d.payload(ctx, req)
	d.notify(ctx, req, req.RequesterID, models.NotificationLeaveApproved,
		"Leave request approved",
		fmt.Sprintf("Your %s request from %s to %s was approved%s.",
			req.LeaveType.Label(), req.FromDate, req.ToDate, byName(payload.DecidedByName)),
		payload)

	d.publish(ctx, messaging.EventLeaveApproved, req)
}

func (d *NotificationDispatcher) Rejected(ctx context.Context, req *models.LeaveRequest) {
	payload := d.payload(ctx, req)
	d.notify(ctx, req, req.RequesterID, models.NotificationLeaveRejected,
		"Leave request rejected",
		fmt.Sprintf("Your %s request from %s to %s was rejected%s. Reason: %s",
			req.LeaveType.Label(), req.FromDate, req.ToDate, byName(payload.DecidedByName), payload.RejectionReason),
		payload)

	d.publish(ctx, messaging.EventLeaveRejected, req)
}

// Cancelled has no inbox notification type; only the event is published.
func (d *NotificationDispatcher) Cancelled(ctx context.Context, req *models.LeaveRequest) {
	d.publish(ctx, messaging.EventLeaveCancelled, req)
}

func byName(name string) string {
	if name == "" {
		return ""
	}
	return " by " + name
}

func (d *NotificationDispatcher) payload(ctx context.Context, req *models.LeaveRequest) models.NotificationData {
	data := models.NotificationData{
		RequestID:   req.ID.Hex(),
		LeaveType:   req.LeaveType,
		Days:        req.Days,
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
		Destination: req.Destination,
	}
	if req.RejectionReason != nil {
		data.RejectionReason = *req.RejectionReason
	}
	if req.DecidedBy != nil {
		data.DecidedBy = req.DecidedBy.Hex()
		data.DecidedByName = d.userName(ctx, *req.DecidedBy)
	}
	return data
}

func (d *NotificationDispatcher) userName(ctx context.Context, id primitive.ObjectID) string {
	user, err := d.users.GetUser(ctx, id)
	if err != nil {
		d.logger.Warn("failed to resolve user name", zap.String("user_id", id.Hex()), zap.Error(err))
		return ""
	}
	if user == nil {
		return ""
	}
	return user.Name
}

func (d *NotificationDispatcher) notify(
	ctx context.Context,
	req *models.LeaveRequest,
	recipient primitive.ObjectID,
	kind models.NotificationType,
	title, message string,
	payload models.NotificationData,
) {
	n := &models.Notification{
		ID:               primitive.NewObjectID(),
		RecipientID:      recipient,
		Type:             kind,
		Title:            title,
		Message:          message,
		Payload:          payload,
		RelatedRequestID: req.ID,
		CreatedAt:        d.clock.Now().UTC(),
	}
	if err := d.notifications.Create(ctx, n); err != nil {
		d.logger.Error("failed to create notification",
			zap.String("type", string(kind)),
			zap.String("request_id", req.ID.Hex()),
			zap.String("recipient_id", recipient.Hex()),
			zap.Error(err),
		)
		return
	}
	d.logger.Debug("notification created",
		zap.String("type", string(kind)),
		zap.String("recipient_id", recipient.Hex()),
	)
}

func (d *NotificationDispatcher) publish(ctx context.Context, eventType string, req *models.LeaveRequest) {
	event := messaging.NewLeaveEvent(eventType, req, d.clock.Now().UTC())
	ctx, cancel := context.WithTimeout(ctx, d.publishTimeout)
	defer cancel()
	if err := d.events.PublishLeaveEvent(ctx, event); err != nil {
		d.logger.Warn("failed to publish leave event",
			zap.String("event_type", eventType),
			zap.String("request_id", req.ID.Hex()),
			zap.Error(err),
		)
	}
}
