package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Employee struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name,omitempty"`
	Email       string             `json:"email" bson:"email,omitempty"`
	Phone       string             `json:"phone" bson:"phone,omitempty"`
	Address     string             `json:"address" bson:"address,omitempty"`
	Position    string             `json:"position" bson:"position,omitempty"`
	Photo       string             `json:"photo" bson:"photo,omitempty"`
	WorkplaceID primitive.ObjectID `json:"workplace_id,omitempty" bson:"workplace_id,omitempty"`
	Status      string             `json:"status" bson:"status,omitempty"`
	WorkStatus  string             `json:"workstatus" bson:"workstatus,omitempty"`
	Reply       string             `json:"reply,omitempty" bson:"reply,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// RecordID is the identity used by client stores to splice records between
// their pending/approved/rejected collections.
func (e Employee) RecordID() string { return e.ID.Hex() }

func (e Employee) RecordStatus() string { return e.Status }

type EmployeeCreatePayload struct {
	Name        string `json:"name" form:"name" validate:"required,min=3,max=100"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	Phone       string `json:"phone" form:"phone" validate:"required,len=10,numeric"`
	Address     string `json:"address" form:"address" validate:"omitempty,min=5,max=255"`
	Position    string `json:"position" form:"position" validate:"required"`
	WorkplaceID string `json:"workplace_id" form:"workplace_id" validate:"required"`
}

type EmployeeUpdatePayload struct {
	Name        string `json:"name,omitempty" form:"name"`
	Email       string `json:"email,omitempty" form:"email" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty" form:"phone" validate:"omitempty,len=10,numeric"`
	Address     string `json:"address,omitempty" form:"address" validate:"omitempty,min=5,max=255"`
	Position    string `json:"position,omitempty" form:"position"`
	WorkplaceID string `json:"workplace_id,omitempty" form:"workplace_id"`
}

type RejectPayload struct {
	Reply string `json:"reply" validate:"required,min=3,max=500"`
}

type WorkStatusPayload struct {
	WorkStatus string `json:"workstatus" validate:"required,oneof=Active Inactive"`
}
