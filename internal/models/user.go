package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is an operator of the admin dashboard, independent of the business
// entities. The password hash is never serialized.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Email        *string        `gorm:"size:255;uniqueIndex" json:"email"`
	PhoneNumber  *string        `gorm:"size:50" json:"phone_number"`
	Username     string         `gorm:"size:100;not null;uniqueIndex" json:"username"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Role         Role           `gorm:"size:20;not null;default:'viewer'" json:"role"`
	Metadata     datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
