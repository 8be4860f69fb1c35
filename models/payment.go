package models

import "time"

// Payment statuses
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

type Payment struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserCode       string     `gorm:"index;not null" json:"user_code"`
	Amount         float64    `gorm:"not null" json:"amount"`
	OriginalAmount float64    `gorm:"not null" json:"original_amount"`
	Discount       float64    `gorm:"default:0" json:"discount"`
	Method         string     `gorm:"not null" json:"method"` // bkash, nagad, rocket, card
	TransactionID  string     `gorm:"unique;not null" json:"transaction_id"`
	Status         string     `gorm:"not null;default:pending" json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at"`
}
