package models

import "time"

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserCode  string    `gorm:"index;not null" json:"user_code"`
	Type      string    `json:"type"`
	Message   string    `gorm:"not null" json:"message"`
	RelatedID string    `json:"related_id"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
