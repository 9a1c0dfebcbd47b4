package models

import "time"

const (
	EmailStatusQueued = "QUEUED"
	EmailStatusSent   = "SENT"
	EmailStatusFailed = "FAILED"
)

// EmailMessage is a write-once record of an outbound send attempt. Status moves
// QUEUED to SENT or QUEUED to FAILED and is never reversed.
type EmailMessage struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	LeadID    uint       `gorm:"index;not null" json:"leadId"`
	To        string     `gorm:"size:255;not null" json:"to"`
	Subject   string     `gorm:"size:255;not null" json:"subject"`
	Body      string     `gorm:"type:text;not null" json:"body"`
	Status    string     `gorm:"size:20;not null;default:'QUEUED'" json:"status"`
	SentAt    *time.Time `json:"sentAt"`
	CreatedAt time.Time  `json:"createdAt"`
}
