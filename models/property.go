package models

import "time"

// Property lifecycle statuses
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
)

type Property struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	PropertyType string    `gorm:"not null" json:"propertyType"` // Plot, Apartment, Building
	Location     string    `gorm:"not null" json:"location"`
	Price        float64   `gorm:"not null" json:"price"`
	Rating       float64   `gorm:"default:0" json:"rating"`
	RatingCount  int       `gorm:"default:0" json:"ratingCount"`
	OwnerName    string    `gorm:"not null" json:"ownerName"`
	OwnerContact string    `json:"ownerContact,omitempty"`
	OwnerEmail   string    `json:"ownerEmail,omitempty"`
	Description  string    `json:"description"`
	Images       string    `json:"images"` // comma-separated URLs
	VirtualTour  string    `json:"virtualTour"`
	CreatedBy    string    `gorm:"index;not null" json:"createdBy"`
	Status       string    `gorm:"not null;default:available" json:"status"`
	Option       string    `gorm:"not null" json:"option"` // Rent or Buy
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PriceHistory keeps one row per price change so the analysis endpoint can
// chart averages over time.
type PriceHistory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID string    `gorm:"index;not null" json:"property_id"`
	Price      float64   `gorm:"not null" json:"price"`
	Date       time.Time `gorm:"not null" json:"date"`
}

// PropertyRating records one user's rating of a property; a repeat rating by
// the same user replaces the earlier one.
type PropertyRating struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID string    `gorm:"index:idx_property_rater,unique;not null" json:"property_id"`
	UserCode   string    `gorm:"index:idx_property_rater,unique;not null" json:"user_code"`
	UserName   string    `json:"user_name"`
	Rating     float64   `gorm:"not null" json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}
