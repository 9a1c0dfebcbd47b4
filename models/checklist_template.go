package models

import "time"

// ChecklistTemplate is a reusable, named list of document requirements keyed by
// lead type. Templates only feed checklist instantiation; editing or deleting a
// template never touches checklists already created from it.
type ChecklistTemplate struct {
	ID        uint                    `gorm:"primaryKey" json:"id"`
	Name      string                  `gorm:"size:255;not null" json:"name"`
	LeadType  string                  `gorm:"size:20;not null" json:"leadType"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
	Items     []ChecklistItemTemplate `gorm:"foreignKey:TemplateID" json:"items,omitempty"`
	ItemCount int                     `gorm:"-" json:"itemCount"`
}

type ChecklistItemTemplate struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	TemplateID uint   `gorm:"index;not null" json:"templateId"`
	Label      string `gorm:"size:255;not null" json:"label"`
	Required   bool   `gorm:"not null" json:"required"`
	SortOrder  int    `gorm:"not null;default:0" json:"sortOrder"`
}
