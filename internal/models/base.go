package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is embedded by every entity kind. IDs are UUID strings assigned
// server-side, never by the client; createdAt and updatedAt start out equal
// at creation and updatedAt is bumped on every save.
type BaseModel struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	if b.CreatedAt.IsZero() {
		now := time.Now().UTC()
		b.CreatedAt = now
		b.UpdatedAt = now
	} else if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}

	return nil
}
