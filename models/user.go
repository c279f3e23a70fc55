package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

type User struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id"`
	Name      string              `json:"name" bson:"name"`
	Email     string              `json:"email" bson:"email"`
	Password  string              `json:"-" bson:"password,omitempty"`
	Role      string              `json:"role" bson:"role"`
	Position  string              `json:"position,omitempty" bson:"position,omitempty"`
	ManagerID *primitive.ObjectID `json:"manager_id" bson:"manager_id"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time           `json:"updated_at" bson:"updated_at"`
}

// EffectiveManagerID is the user's manager, or the user itself when none is
// assigned.
func (u User) EffectiveManagerID() primitive.ObjectID {
	if u.ManagerID == nil || u.ManagerID.IsZero() {
		return u.ID
	}
	return *u.ManagerID
}

type AssignManagerPayload struct {
	// Empty clears the assignment.
	ManagerID string `json:"manager_id" validate:"omitempty,len=24,hexadecimal"`
}

type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Role   string             `json:"role"`
}

func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
