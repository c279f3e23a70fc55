package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotificationLeaveSubmitted NotificationType = "leave_submitted"
	NotificationLeaveApproved  NotificationType = "leave_approved"
	NotificationLeaveRejected  NotificationType = "leave_rejected"
)

type Notification struct {
	ID               primitive.ObjectID `json:"id" bson:"_id"`
	RecipientID      primitive.ObjectID `json:"recipient_id" bson:"recipient_id"`
	Type             NotificationType   `json:"type" bson:"type"`
	Title            string             `json:"title" bson:"title"`
	Message          string             `json:"message" bson:"message"`
	Payload          NotificationData   `json:"payload" bson:"payload"`
	RelatedRequestID primitive.ObjectID `json:"related_request_id" bson:"related_request_id"`
	IsRead           bool               `json:"is_read" bson:"is_read"`
	ReadAt           *time.Time         `json:"read_at,omitempty" bson:"read_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}

// NotificationData echoes the leave request fields a recipient needs to act
// on the notification without another lookup.
type NotificationData struct {
	RequestID       string    `json:"request_id" bson:"request_id"`
	RequesterName   string    `json:"requester_name,omitempty" bson:"requester_name,omitempty"`
	RequesterEmail  string    `json:"requester_email,omitempty" bson:"requester_email,omitempty"`
	LeaveType       LeaveType `json:"leave_type" bson:"leave_type"`
	Days            int       `json:"days" bson:"days"`
	FromDate        string    `json:"from_date" bson:"from_date"`
	ToDate          string    `json:"to_date" bson:"to_date"`
	Destination     string    `json:"destination,omitempty" bson:"destination,omitempty"`
	DecidedBy       string    `json:"decided_by,omitempty" bson:"decided_by,omitempty"`
	DecidedByName   string    `json:"decided_by_name,omitempty" bson:"decided_by_name,omitempty"`
	RejectionReason string    `json:"rejection_reason,omitempty" bson:"rejection_reason,omitempty"`
}

type NotificationPage struct {
	Notifications []Notification `json:"notifications"`
	Page          int64          `json:"page"`
	Limit         int64          `json:"limit"`
	Total         int64          `json:"total"`
	UnreadCount   int64          `json:"unread_count"`
}
