package models

import "time"

// Story is a success story written by a premium member, visible to everyone
// once an admin approves it.
type Story struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserCode   string    `gorm:"index;not null" json:"user_code"`
	UserName   string    `json:"user_name"`
	PropertyID string    `json:"property_id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"not null" json:"content"`
	Status     string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
