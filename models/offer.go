package models

import "time"

type Offer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PropertyID    string    `gorm:"index;not null" json:"property_id"`
	UserCode      string    `gorm:"index;not null" json:"user_code"`
	UserName      string    `json:"user_name"`
	OfferPrice    float64   `gorm:"not null" json:"offer_price"`
	OriginalPrice float64   `gorm:"not null" json:"original_price"`
	Discount      float64   `json:"discount"`
	Status        string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
