package models

type Idea struct {
	BaseModel

	Content string `gorm:"not null" json:"content"`
}
