package models

import "time"

type Rental struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	PropertyType  string    `gorm:"not null" json:"propertyType"`
	Location      string    `gorm:"not null" json:"location"`
	RentPrice     float64   `gorm:"not null" json:"rentPrice"`
	FloorNumber   int       `json:"floorNumber"`
	FlatsPerFloor int       `json:"flatsPerFloor"`
	RoomsPerFlat  int       `json:"roomsPerFlat"`
	OwnerName     string    `gorm:"not null" json:"ownerName"`
	OwnerContact  string    `json:"ownerContact,omitempty"`
	OwnerEmail    string    `json:"ownerEmail,omitempty"`
	Description   string    `json:"description"`
	Images        string    `json:"images"`
	CreatedBy     string    `gorm:"index;not null" json:"createdBy"`
	Status        string    `gorm:"not null;default:available" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
