package models

import "time"

const (
	TaskTypeCall      = "CALL"
	TaskTypeEmail     = "EMAIL"
	TaskTypeDocsChase = "DOCS_CHASE"
	TaskTypeOther     = "OTHER"
)

const (
	TaskStatusOpen     = "OPEN"
	TaskStatusDone     = "DONE"
	TaskStatusCanceled = "CANCELED"
)

var TaskTypes = []string{TaskTypeCall, TaskTypeEmail, TaskTypeDocsChase, TaskTypeOther}
var TaskStatuses = []string{TaskStatusOpen, TaskStatusDone, TaskStatusCanceled}

type Task struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	LeadID    uint       `gorm:"index;not null" json:"leadId"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Type      string     `gorm:"size:20;not null;default:'OTHER'" json:"type"`
	DueAt     *time.Time `json:"dueAt"`
	Status    string     `gorm:"size:20;not null;default:'OPEN'" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func ValidTaskType(v string) bool   { return contains(TaskTypes, v) }
func ValidTaskStatus(v string) bool { return contains(TaskStatuses, v) }
