package models

import "time"

type Favorite struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserCode   string    `gorm:"index:idx_user_property,unique;not null" json:"user_code"`
	PropertyID string    `gorm:"index:idx_user_property,unique;not null" json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}
