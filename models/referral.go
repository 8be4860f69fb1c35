package models

import "time"

// Referral links a referred account to its referrer. The unique index on
// UserCode is what guarantees at most one referral per account even when two
// apply requests race each other.
type Referral struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserCode     string    `gorm:"uniqueIndex;not null" json:"user_code"`
	ReferrerCode string    `gorm:"index;not null" json:"referrer_code"`
	Code         string    `json:"code"`
	Discount     float64   `gorm:"default:100" json:"discount"`
	CreatedAt    time.Time `json:"created_at"`
}
