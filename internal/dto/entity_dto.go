package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInstituteRequest struct {
	Name     string                 `json:"name" validate:"required,max=255"`
	Country  string                 `json:"country" validate:"omitempty,max=100"`
	Metadata map[string]interface{} `json:"metadata"`
}

type UpdateInstituteRequest struct {
	Name     *string                `json:"name" validate:"omitempty,min=1,max=255"`
	Country  *string                `json:"country" validate:"omitempty,max=100"`
	Metadata map[string]interface{} `json:"metadata"`
}

type CreateClientRequest struct {
	Name        string                 `json:"name" validate:"required,max=255"`
	Country     string                 `json:"country" validate:"omitempty,max=100"`
	PhoneNumber string                 `json:"phone_number" validate:"omitempty,max=50"`
	Email       string                 `json:"email" validate:"omitempty,email"`
	Currency    string                 `json:"currency" validate:"omitempty,max=10"`
	InstituteID *uuid.UUID             `json:"institute_id"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type UpdateClientRequest struct {
	Name        *string                `json:"name" validate:"omitempty,min=1,max=255"`
	Country     *string                `json:"country" validate:"omitempty,max=100"`
	PhoneNumber *string                `json:"phone_number" validate:"omitempty,max=50"`
	Email       *string                `json:"email" validate:"omitempty,email"`
	Currency    *string                `json:"currency" validate:"omitempty,max=10"`
	InstituteID *uuid.UUID             `json:"institute_id"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type CreateWorkerRequest struct {
	Name        string                 `json:"name" validate:"required,max=255"`
	Country     string                 `json:"country" validate:"omitempty,max=100"`
	PhoneNumber string                 `json:"phone_number" validate:"omitempty,max=50"`
	Email       string                 `json:"email" validate:"omitempty,email"`
	Currency    string                 `json:"currency" validate:"omitempty,max=10"`
	InstituteID *uuid.UUID             `json:"institute_id"`
	Specialties []string               `json:"specialties"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type UpdateWorkerRequest struct {
	Name        *string                `json:"name" validate:"omitempty,min=1,max=255"`
	Country     *string                `json:"country" validate:"omitempty,max=100"`
	PhoneNumber *string                `json:"phone_number" validate:"omitempty,max=50"`
	Email       *string                `json:"email" validate:"omitempty,email"`
	Currency    *string                `json:"currency" validate:"omitempty,max=10"`
	InstituteID *uuid.UUID             `json:"institute_id"`
	Specialties []string               `json:"specialties"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type CreateTaskRequest struct {
	Name        string                 `json:"name" validate:"required,max=255"`
	Description string                 `json:"description"`
	Type        string                 `json:"type" validate:"omitempty,oneof=assignment project thesis review other"`
	Deadline    *time.Time             `json:"deadline"`
	ClientID    uuid.UUID              `json:"client_id" validate:"required"`
	WorkerID    *uuid.UUID             `json:"worker_id"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type UpdateTaskRequest struct {
	Name                 *string                `json:"name" validate:"omitempty,min=1,max=255"`
	Description          *string                `json:"description"`
	Type                 *string                `json:"type" validate:"omitempty,oneof=assignment project thesis review other"`
	Status               *string                `json:"status" validate:"omitempty,oneof=unassigned in_progress completed"`
	Deadline             *time.Time             `json:"deadline"`
	SubmittedAt          *time.Time             `json:"submitted_at"`
	ClientPaymentDecided *bool                  `json:"client_payment_decided"`
	ClientPaymentMade    *bool                  `json:"client_payment_made"`
	WorkerPaymentDecided *bool                  `json:"worker_payment_decided"`
	WorkerPaymentMade    *bool                  `json:"worker_payment_made"`
	ClientID             *uuid.UUID             `json:"client_id"`
	WorkerID             *uuid.UUID             `json:"worker_id"`
	Metadata             map[string]interface{} `json:"metadata"`
}

// AssignTaskRequest links a worker to a task; creating the link promotes an
// unassigned task to in_progress.
type AssignTaskRequest struct {
	TaskID   uuid.UUID `json:"task_id" validate:"required"`
	WorkerID uuid.UUID `json:"worker_id" validate:"required"`
}

type CreateUserRequest struct {
	Name        string                 `json:"name" validate:"required,max=255"`
	Email       string                 `json:"email" validate:"omitempty,email"`
	PhoneNumber string                 `json:"phone_number" validate:"omitempty,max=50"`
	Username    string                 `json:"username" validate:"required,min=3,max=100"`
	Password    string                 `json:"password" validate:"required,min=8"`
	Role        string                 `json:"role" validate:"required,oneof=admin editor viewer"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type UpdateUserRequest struct {
	Name        *string                `json:"name" validate:"omitempty,min=1,max=255"`
	Email       *string                `json:"email" validate:"omitempty,email"`
	PhoneNumber *string                `json:"phone_number" validate:"omitempty,max=50"`
	Username    *string                `json:"username" validate:"omitempty,min=3,max=100"`
	Password    *string                `json:"password" validate:"omitempty,min=8"`
	Role        *string                `json:"role" validate:"omitempty,oneof=admin editor viewer"`
	Metadata    map[string]interface{} `json:"metadata"`
}
