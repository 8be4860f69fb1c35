package models

import "time"

// AdminLog records every moderation action for the audit trail screen.
type AdminLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AdminCode  string    `gorm:"index;not null" json:"admin_code"`
	Action     string    `gorm:"not null" json:"action"` // verified, rejected, deleted, approved
	TargetType string    `gorm:"not null" json:"target_type"`
	TargetID   string    `json:"target_id"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}
