package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaveBalance is the remaining allowance of one leave type for one user.
// (user_id, leave_type) is unique.
type LeaveBalance struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	LeaveType   LeaveType          `json:"leave_type" bson:"leave_type"`
	Balance     float64            `json:"balance" bson:"balance"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// LeaveTypes lists every leave type in display order.
var LeaveTypes = []LeaveType{LeaveTypeEarned, LeaveTypeSick, LeaveTypeCasual}

type LeaveBalanceUpdatePayload struct {
	Balance *float64 `json:"balance" validate:"required,gte=0"`
}

type LeaveBalanceListResponse struct {
	Data []LeaveBalance `json:"data"`
}

type LeaveBalanceResponse struct {
	Message string       `json:"message" example:"Leave balance updated"`
	Data    LeaveBalance `json:"data"`
}
