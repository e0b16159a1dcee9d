package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Institute is an organization that clients and workers belong to.
type Institute struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Country   string         `gorm:"size:100" json:"country"`
	Metadata  datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
