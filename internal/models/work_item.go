package models

type WorkItem struct {
	BaseModel

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Completed   bool   `gorm:"not null;default:false" json:"completed"`
	ClassID     string `gorm:"not null;index;size:36" json:"classId"`

	// Relationships
	Class Class `gorm:"foreignKey:ClassID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
