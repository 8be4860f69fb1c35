package models

import "time"

type Technician struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Specialty   string    `gorm:"index;not null" json:"specialty"`
	Contact     string    `json:"contact"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	RatingCount int       `gorm:"default:0" json:"ratingCount"`
	CreatedAt   time.Time `json:"created_at"`
}
