package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutType string

const (
	WorkoutPush WorkoutType = "PUSH"
	WorkoutPull WorkoutType = "PULL"
	WorkoutLegs WorkoutType = "LEGS"
)

type Workout struct {
	BaseModel

	Type  WorkoutType `gorm:"not null" json:"type"`
	Date  time.Time   `gorm:"not null;index" json:"date"`
	Notes string      `json:"notes"`

	// Relationships
	Exercises []Exercise `gorm:"foreignKey:WorkoutID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"exercises"`
}

// Exercise rows only exist as part of a workout; they are created and
// deleted together with their parent and carry no timestamps of their own.
type Exercise struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Sets      int     `gorm:"not null" json:"sets"`
	Reps      int     `gorm:"not null" json:"reps"`
	Weight    float64 `gorm:"not null" json:"weight"`
	WorkoutID string  `gorm:"not null;index;size:36" json:"workoutId"`
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
