package models

type Class struct {
	BaseModel

	Name string `gorm:"not null" json:"name"`

	// Relationships
	WorkItems      []WorkItem      `gorm:"foreignKey:ClassID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"workItems,omitempty"`
	ImportantDates []ImportantDate `gorm:"foreignKey:ClassID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"importantDates,omitempty"`
}
