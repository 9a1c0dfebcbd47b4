package models

import "time"

const (
	ChecklistStatusOpen       = "OPEN"
	ChecklistStatusInProgress = "IN_PROGRESS"
	ChecklistStatusComplete   = "COMPLETE"
)

const (
	ChecklistItemPending  = "PENDING"
	ChecklistItemReceived = "RECEIVED"
	ChecklistItemWaived   = "WAIVED"
)

var ChecklistItemStatuses = []string{ChecklistItemPending, ChecklistItemReceived, ChecklistItemWaived}

// Checklist is a per-lead snapshot of a template taken at instantiation time.
// Items are full copies; the template is never referenced again afterwards.
type Checklist struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	LeadID    uint            `gorm:"index;not null" json:"leadId"`
	Title     string          `gorm:"size:255;not null" json:"title"`
	Status    string          `gorm:"size:20;not null;default:'OPEN'" json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Items     []ChecklistItem `gorm:"foreignKey:ChecklistID" json:"items,omitempty"`
}

type ChecklistItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ChecklistID uint   `gorm:"index;not null" json:"checklistId"`
	Label       string `gorm:"size:255;not null" json:"label"`
	Required    bool   `gorm:"not null" json:"required"`
	SortOrder   int    `gorm:"not null;default:0" json:"sortOrder"`
	Status      string `gorm:"size:20;not null;default:'PENDING'" json:"status"`
}

func ValidChecklistItemStatus(v string) bool { return contains(ChecklistItemStatuses, v) }
