package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Client struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Country     string         `gorm:"size:100" json:"country"`
	PhoneNumber string         `gorm:"size:50" json:"phone_number"`
	Email       string         `gorm:"size:255" json:"email"`
	Currency    string         `gorm:"size:10" json:"currency"`
	InstituteID *uuid.UUID     `gorm:"type:uuid;index" json:"institute_id"`
	Metadata    datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
