package models

import "time"

type Meeting struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserCode    string    `gorm:"index;not null" json:"user_code"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	CompanyID   string    `json:"company_id"`
	CompanyName string    `json:"company_name"`
	CompanyType string    `json:"company_type"`
	PropertyID  string    `json:"property_id"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Message     string    `json:"message"`
	Status      string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
