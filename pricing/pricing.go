package pricing

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ghorbari-server/models"
)

// Recoverable failures callers are expected to map to user-facing messages.
var (
	ErrInvalidCodeFormat  = errors.New("referral code must be exactly 6 characters")
	ErrAlreadyApplied     = errors.New("referral already applied")
	ErrNoMatchingReferrer = errors.New("no premium member matches this code")
	ErrAmbiguousCode      = errors.New("referral code matches more than one premium member")
	ErrSelfReferral       = errors.New("cannot apply your own referral code")
	ErrPaymentNotFound    = errors.New("payment not found")
)

// Membership fee schedule in currency units.
const (
	BaseFee                 = 1000
	ReferredFee             = 900
	ReferrerRenewalFee      = 800
	ReferralDiscount        = 100
	ReferrerRenewalDiscount = 200

	premiumPeriod = 30 * 24 * time.Hour
)

// Quote is the amount an account must pay for premium membership and the
// discount baked into it.
type Quote struct {
	Amount   float64 `json:"amount"`
	Discount float64 `json:"discount"`
}

// QuoteFor computes the membership fee for a user. hasReferral reports
// whether a referral record exists for the user; it only matters for
// non-premium upgrades. Premium renewals price off the user's own referral
// flags instead.
func QuoteFor(user models.User, hasReferral bool) Quote {
	if user.Role == models.RolePremium {
		if user.HasReferred {
			return Quote{Amount: ReferrerRenewalFee, Discount: ReferrerRenewalDiscount}
		}
		if user.Referred == models.ReferredYes {
			return Quote{Amount: ReferredFee, Discount: ReferralDiscount}
		}
		return Quote{Amount: BaseFee}
	}
	if hasReferral {
		return Quote{Amount: ReferredFee, Discount: ReferralDiscount}
	}
	return Quote{Amount: BaseFee}
}

// Service runs the stateful pricing operations against the store.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Quote looks up the user's referral record and prices the membership.
func (s *Service) Quote(user models.User) (Quote, error) {
	var count int64
	if err := s.db.Model(&models.Referral{}).Where("user_code = ?", user.UserCode).Count(&count).Error; err != nil {
		return Quote{}, err
	}
	return QuoteFor(user, count > 0), nil
}

// ApplyReferralCode resolves a 6-character code against premium members'
// user-code suffixes and records the referral. All three effects (referral
// row, referrer flag, applicant flag) commit together or not at all. The
// unique index on referrals.user_code is the real guard against two
// concurrent applies; a duplicate-key failure is reported as
// ErrAlreadyApplied just like the pre-check.
func (s *Service) ApplyReferralCode(user models.User, code string) (*models.Referral, error) {
	if len(code) != 6 {
		return nil, ErrInvalidCodeFormat
	}

	var existing models.Referral
	err := s.db.Where("user_code = ?", user.UserCode).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyApplied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Suffix comparison happens here rather than in SQL: LIKE would treat
	// % and _ in the code as wildcards and match case-insensitively under
	// the default collation. The code must equal the trailing 6 characters
	// exactly, byte for byte.
	var premiumMembers []models.User
	if err := s.db.Where("role = ?", models.RolePremium).Find(&premiumMembers).Error; err != nil {
		return nil, err
	}
	var referrers []models.User
	for _, member := range premiumMembers {
		if member.ReferralSuffix() == code {
			referrers = append(referrers, member)
		}
	}
	switch {
	case len(referrers) == 0:
		return nil, ErrNoMatchingReferrer
	case len(referrers) > 1:
		return nil, ErrAmbiguousCode
	}
	referrer := referrers[0]
	if referrer.UserCode == user.UserCode {
		return nil, ErrSelfReferral
	}

	referral := models.Referral{
		UserCode:     user.UserCode,
		ReferrerCode: referrer.UserCode,
		Code:         code,
		Discount:     ReferralDiscount,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&referral).Error; err != nil {
			return err
		}
		if !referrer.HasReferred {
			if err := tx.Model(&models.User{}).Where("user_code = ?", referrer.UserCode).
				Update("has_referred", true).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.User{}).Where("user_code = ?", user.UserCode).
			Update("referred", models.ReferredYes).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}

	return &referral, nil
}

// InitiatePayment quotes the user and records a pending payment carrying the
// generated transaction id.
func (s *Service) InitiatePayment(user models.User, method string) (*models.Payment, error) {
	quote, err := s.Quote(user)
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		UserCode:       user.UserCode,
		Amount:         quote.Amount,
		OriginalAmount: BaseFee,
		Discount:       quote.Discount,
		Method:         method,
		TransactionID:  fmt.Sprintf("TXN_%d_%s", time.Now().UnixNano(), user.ReferralSuffix()),
		Status:         models.PaymentPending,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// ConfirmPayment marks the user's pending payment as completed and promotes
// the account to premium for the 30-day window.
func (s *Service) ConfirmPayment(user models.User, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Where("user_code = ? AND transaction_id = ?", user.UserCode, transactionID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	end := now.Add(premiumPeriod)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&payment).Updates(map[string]interface{}{
			"status":       models.PaymentCompleted,
			"completed_at": now,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("user_code = ?", user.UserCode).
			Updates(map[string]interface{}{
				"role":               models.RolePremium,
				"premium_start_date": now,
				"premium_end_date":   end,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	payment.Status = models.PaymentCompleted
	payment.CompletedAt = &now
	return &payment, nil
}
