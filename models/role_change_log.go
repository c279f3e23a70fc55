package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultRoleChangeReason is recorded when an admin gives no reason.
const DefaultRoleChangeReason = "No reason provided"

func ValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// RoleChangeLog is the audit record of one admin role change.
type RoleChangeLog struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	UserID         primitive.ObjectID `json:"user_id" bson:"user_id"`
	UserEmail      string             `json:"user_email" bson:"user_email"`
	UserName       string             `json:"user_name" bson:"user_name"`
	OldRole        string             `json:"old_role" bson:"old_role"`
	NewRole        string             `json:"new_role" bson:"new_role"`
	ChangedBy      primitive.ObjectID `json:"changed_by" bson:"changed_by"`
	ChangedByEmail string             `json:"changed_by_email" bson:"changed_by_email"`
	Reason         string             `json:"reason" bson:"reason"`
	IPAddress      string             `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	Timestamp      time.Time          `json:"timestamp" bson:"timestamp"`
}

type ChangeRolePayload struct {
	Role   string `json:"role" validate:"required,oneof=employee manager admin"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type RoleChangeResponse struct {
	Message string        `json:"message" example:"Role updated successfully"`
	User    User          `json:"user"`
	Change  RoleChangeLog `json:"change"`
}

type RoleChangeLogPage struct {
	Logs  []RoleChangeLog `json:"logs"`
	Total int64           `json:"total" example:"1"`
	Page  int64           `json:"page" example:"1"`
	Limit int64           `json:"limit" example:"20"`
}
