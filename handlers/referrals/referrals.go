package referrals

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/models"
	"ghorbari-server/pricing"
	"ghorbari-server/utils"
)

// CheckReferral reports whether the current user already has a referral
// applied and the discount it carries.
func CheckReferral(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var referral models.Referral
	err := utils.DB.Where("user_code = ?", user.UserCode).First(&referral).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"hasReferral": false,
			"discount":    0,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check referral"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"hasReferral":  true,
		"referralCode": referral.Code,
		"discount":     referral.Discount,
	})
}

// ApplyCode applies a 6-character referral code (the trailing characters of a
// premium member's user code) to the current account.
func ApplyCode(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var input struct {
		Code6 string `json:"code6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	svc := pricing.NewService(utils.DB)
	referral, err := svc.ApplyReferralCode(user, input.Code6)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidCodeFormat):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid code"})
		case errors.Is(err, pricing.ErrAlreadyApplied):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Referral already applied"})
		case errors.Is(err, pricing.ErrNoMatchingReferrer):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No premium member matches this code"})
		case errors.Is(err, pricing.ErrAmbiguousCode):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Code matches more than one premium member, contact support"})
		case errors.Is(err, pricing.ErrSelfReferral):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You cannot apply your own referral code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to apply referral code"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Referral code accepted. Admin will review your upgrade.",
		"discount": referral.Discount,
	})
}

// ReferrerStats lists the accounts the current user has referred.
func ReferrerStats(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var referred []models.Referral
	if err := utils.DB.Where("referrer_code = ?", user.UserCode).Find(&referred).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referrer stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"isReferrer":    len(referred) > 0,
		"referredUsers": referred,
	})
}
