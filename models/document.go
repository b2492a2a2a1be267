package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The three document variants are structurally parallel: type-specific
// identifying fields plus the shared approval lifecycle (status, reply,
// owning employee).

// Document is the shape the shared approval handlers rely on.
type Document interface {
	RecordID() string
	RecordStatus() string
	Owner() primitive.ObjectID
}

type Aadhar struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID primitive.ObjectID `json:"employee_id,omitempty" bson:"employee_id,omitempty"`
	AadharName string             `json:"aadhar_name" bson:"aadhar_name,omitempty"`
	AadharNo   string             `json:"aadhar_no" bson:"aadhar_no,omitempty"`
	AadharCard string             `json:"aadhar_card" bson:"aadhar_card,omitempty"`
	Status     string             `json:"status" bson:"status,omitempty"`
	Reply      string             `json:"reply,omitempty" bson:"reply,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

func (a Aadhar) RecordID() string     { return a.ID.Hex() }
func (a Aadhar) RecordStatus() string { return a.Status }
func (a Aadhar) Owner() primitive.ObjectID { return a.EmployeeID }

type Pan struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID primitive.ObjectID `json:"employee_id,omitempty" bson:"employee_id,omitempty"`
	PanName    string             `json:"pan_name" bson:"pan_name,omitempty"`
	PanNo      string             `json:"pan_no" bson:"pan_no,omitempty"`
	PanCard    string             `json:"pan_card" bson:"pan_card,omitempty"`
	Status     string             `json:"status" bson:"status,omitempty"`
	Reply      string             `json:"reply,omitempty" bson:"reply,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

func (p Pan) RecordID() string     { return p.ID.Hex() }
func (p Pan) RecordStatus() string { return p.Status }
func (p Pan) Owner() primitive.ObjectID { return p.EmployeeID }

type BankDetail struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID    primitive.ObjectID `json:"employee_id,omitempty" bson:"employee_id,omitempty"`
	HolderName    string             `json:"holder_name" bson:"holder_name,omitempty"`
	AccountNo     string             `json:"account_no" bson:"account_no,omitempty"`
	IFSCCode      string             `json:"ifsc_code" bson:"ifsc_code,omitempty"`
	BankName      string             `json:"bank_name" bson:"bank_name,omitempty"`
	PassbookImage string             `json:"passbook_image" bson:"passbook_image,omitempty"`
	Status        string             `json:"status" bson:"status,omitempty"`
	Reply         string             `json:"reply,omitempty" bson:"reply,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

func (b BankDetail) RecordID() string     { return b.ID.Hex() }
func (b BankDetail) RecordStatus() string { return b.Status }
func (b BankDetail) Owner() primitive.ObjectID { return b.EmployeeID }

type AadharCreatePayload struct {
	EmployeeID string `json:"employee_id" form:"employee_id" validate:"required"`
	AadharName string `json:"aadhar_name" form:"aadhar_name" validate:"required,min=3,max=100"`
	AadharNo   string `json:"aadhar_no" form:"aadhar_no" validate:"required,aadhaarno"`
}

type AadharUpdatePayload struct {
	AadharName string `json:"aadhar_name,omitempty" form:"aadhar_name"`
	AadharNo   string `json:"aadhar_no,omitempty" form:"aadhar_no" validate:"omitempty,aadhaarno"`
}

type PanCreatePayload struct {
	EmployeeID string `json:"employee_id" form:"employee_id" validate:"required"`
	PanName    string `json:"pan_name" form:"pan_name" validate:"required,min=3,max=100"`
	PanNo      string `json:"pan_no" form:"pan_no" validate:"required,panno"`
}

type PanUpdatePayload struct {
	PanName string `json:"pan_name,omitempty" form:"pan_name"`
	PanNo   string `json:"pan_no,omitempty" form:"pan_no" validate:"omitempty,panno"`
}

type BankDetailCreatePayload struct {
	EmployeeID string `json:"employee_id" form:"employee_id" validate:"required"`
	HolderName string `json:"holder_name" form:"holder_name" validate:"required,min=3,max=100"`
	AccountNo  string `json:"account_no" form:"account_no" validate:"required,min=9,max=18,numeric"`
	IFSCCode   string `json:"ifsc_code" form:"ifsc_code" validate:"required,ifsc"`
	BankName   string `json:"bank_name" form:"bank_name" validate:"required"`
}

type BankDetailUpdatePayload struct {
	HolderName string `json:"holder_name,omitempty" form:"holder_name"`
	AccountNo  string `json:"account_no,omitempty" form:"account_no" validate:"omitempty,min=9,max=18,numeric"`
	IFSCCode   string `json:"ifsc_code,omitempty" form:"ifsc_code" validate:"omitempty,ifsc"`
	BankName   string `json:"bank_name,omitempty" form:"bank_name"`
}
