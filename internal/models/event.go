package models

import "time"

type Event struct {
	BaseModel

	Title       string    `gorm:"not null" json:"title"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Time        string    `json:"time"` // optional "HH:MM", kept verbatim
	Description string    `json:"description"`
}
