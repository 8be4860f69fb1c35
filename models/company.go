package models

import "time"

// Company directory entry. Type is one of: developers, interior, legal,
// moving.
type Company struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Type        string    `gorm:"index;not null" json:"type"`
	Contact     string    `json:"contact"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	RatingCount int       `gorm:"default:0" json:"ratingCount"`
	CreatedAt   time.Time `json:"created_at"`
}
