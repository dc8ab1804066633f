package models

import "time"

type ImportantDate struct {
	BaseModel

	Title       string    `gorm:"not null" json:"title"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Description string    `json:"description"`
	ClassID     string    `gorm:"not null;index;size:36" json:"classId"`

	// Relationships
	Class Class `gorm:"foreignKey:ClassID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
