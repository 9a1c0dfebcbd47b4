package models

import "time"

// Referrer is a bank referral source. Referrers are never physically deleted so
// historical leads keep a valid attribution; "deleting" one sets IsActive false.
type Referrer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	IsActive  bool      `gorm:"not null" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
