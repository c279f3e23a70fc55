package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DateLayout = "2006-01-02"

type LeaveType string

const (
	LeaveTypeEarned LeaveType = "EL"
	LeaveTypeSick   LeaveType = "SL"
	LeaveTypeCasual LeaveType = "CL"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypeEarned, LeaveTypeSick, LeaveTypeCasual:
		return true
	}
	return false
}

func (t LeaveType) Label() string {
	switch t {
	case LeaveTypeEarned:
		return "Earned Leave"
	case LeaveTypeSick:
		return "Sick Leave"
	case LeaveTypeCasual:
		return "Casual Leave"
	}
	return string(t)
}

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed from s.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected || s == LeaveStatusCancelled
}

type LeaveRequest struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id"`
	RequesterID     primitive.ObjectID  `json:"requester_id" bson:"requester_id"`
	ManagerID       primitive.ObjectID  `json:"manager_id" bson:"manager_id"`
	LeaveType       LeaveType           `json:"leave_type" bson:"leave_type"`
	FromDate        string              `json:"from_date" bson:"from_date"`
	ToDate          string              `json:"to_date" bson:"to_date"`
	Days            int                 `json:"days" bson:"days"`
	Destination     string              `json:"destination,omitempty" bson:"destination,omitempty"`
	Status          LeaveStatus         `json:"status" bson:"status"`
	DecidedBy       *primitive.ObjectID `json:"decided_by" bson:"decided_by"`
	DecidedAt       *time.Time          `json:"decided_at" bson:"decided_at"`
	RejectionReason *string             `json:"rejection_reason" bson:"rejection_reason"`
	SubmittedAt     time.Time           `json:"submitted_at" bson:"submitted_at"`
	UpdatedAt       time.Time           `json:"updated_at" bson:"updated_at"`
}

// StatusUpdate carries every field written by a decision or cancellation.
// A store applies it all at once, and only while the request is pending.
type StatusUpdate struct {
	Status          LeaveStatus
	DecidedBy       *primitive.ObjectID
	DecidedAt       *time.Time
	RejectionReason *string
	UpdatedAt       time.Time
}

type LeaveRequestCreatePayload struct {
	LeaveType   string `json:"leave_type" validate:"required,leavetype"`
	FromDate    string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate      string `json:"to_date" validate:"required,datetime=2006-01-02"`
	Days        int    `json:"days" validate:"required,gt=0"`
	Destination string `json:"destination" validate:"omitempty,max=200"`
}

type LeaveRequestRejectPayload struct {
	Reason string `json:"reason" validate:"required,notblank,max=500"`
}
