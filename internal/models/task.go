package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Task is a unit of work paid for by a client and executed by at most one
// worker. Status moves unassigned -> in_progress when a worker is attached.
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null;index" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Type        TaskType   `gorm:"size:20;not null;default:'other'" json:"type"`
	Status      TaskStatus `gorm:"size:20;not null;default:'unassigned';index" json:"status"`
	Deadline    *time.Time `json:"deadline"`
	SubmittedAt *time.Time `json:"submitted_at"`

	ClientPaymentDecided bool `json:"client_payment_decided"`
	ClientPaymentMade    bool `json:"client_payment_made"`
	WorkerPaymentDecided bool `json:"worker_payment_decided"`
	WorkerPaymentMade    bool `json:"worker_payment_made"`

	ClientID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"client_id"`
	WorkerID  *uuid.UUID     `gorm:"type:uuid;index" json:"worker_id"`
	Metadata  datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
