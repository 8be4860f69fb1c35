package models

import (
	"time"

	"gorm.io/gorm"
)

// Membership roles
const (
	RoleAdmin      = "admin"
	RolePremium    = "premium"
	RoleNonPremium = "non-premium"
)

// Referred flag values used by the pricing rules
const (
	ReferredNo  = "NO"
	ReferredYes = "YES"
)

type User struct {
	gorm.Model
	UserCode          string     `gorm:"unique;not null" json:"user_code"`
	Name              string     `gorm:"not null" json:"name"`
	Email             string     `gorm:"unique;not null" json:"email"`
	Password          string     `gorm:"not null" json:"-"`
	Age               int        `json:"age"`
	Location          string     `json:"location"`
	Occupation        string     `json:"occupation"`
	Role              string     `gorm:"not null;default:non-premium" json:"role"`
	Verified          bool       `gorm:"default:false" json:"verified"`
	DeletionRequested bool       `gorm:"default:false" json:"deletion_requested"`
	Referred          string     `gorm:"not null;default:NO" json:"referred"`
	HasReferred       bool       `gorm:"default:false" json:"has_referred"`
	PremiumStartDate  *time.Time `json:"premium_start_date"`
	PremiumEndDate    *time.Time `json:"premium_end_date"`
	Latitude          *float64   `json:"latitude"`
	Longitude         *float64   `json:"longitude"`
}

// ReferralSuffix returns the trailing six characters of the user code, the
// piece premium members share as their referral code.
func (u User) ReferralSuffix() string {
	if len(u.UserCode) < 6 {
		return u.UserCode
	}
	return u.UserCode[len(u.UserCode)-6:]
}
