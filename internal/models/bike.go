package models

import "time"

type BikeIdea struct {
	BaseModel

	Content string `gorm:"not null" json:"content"`
}

type BikeEvent struct {
	BaseModel

	Title       string    `gorm:"not null" json:"title"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Description string    `json:"description"`
	Type        string    `json:"type"` // free-form label ("race", "maintenance", ...)
}
