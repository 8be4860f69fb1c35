package admin

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/handlers/notifications"
	"ghorbari-server/models"
	"ghorbari-server/utils"
)

// GetPendingVerifications lists premium members that paid but are not yet
// verified by an admin.
func GetPendingVerifications(c *gin.Context) {
	var users []models.User
	if err := utils.DB.Where("role = ? AND verified = ?", models.RolePremium, false).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending verifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

func ApproveVerification(c *gin.Context) {
	admin, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var user models.User
	if err := utils.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := utils.DB.Model(&user).Update("verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve verification"})
		return
	}

	utils.DB.Create(&models.AdminLog{
		AdminCode:  admin.UserCode,
		Action:     "verified",
		TargetType: "user",
		TargetID:   user.UserCode,
		Details:    fmt.Sprintf("Verified premium member: %s", user.Name),
	})

	notifications.NotifyUser(user.UserCode, "verification",
		"Your request for verification for premium membership is approved", user.UserCode)

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func RejectVerification(c *gin.Context) {
	var user models.User
	if err := utils.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	notifications.NotifyUser(user.UserCode, "verification",
		"Your request for verification for premium membership is rejected", user.UserCode)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Verification rejected"})
}

// ApproveDeletion deletes an account that asked for deletion.
func ApproveDeletion(c *gin.Context) {
	admin, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var user models.User
	if err := utils.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	utils.DB.Create(&models.AdminLog{
		AdminCode:  admin.UserCode,
		Action:     "deleted",
		TargetType: "user",
		TargetID:   user.UserCode,
		Details:    fmt.Sprintf("Deleted account: %s", user.Name),
	})

	if err := utils.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User account deleted"})
}

func GetPendingStories(c *gin.Context) {
	var stories []models.Story
	if err := utils.DB.Where("status = ?", "pending").Order("created_at DESC").Find(&stories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending stories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stories": stories})
}

func GetPremiumMembers(c *gin.Context) {
	var members []models.User
	if err := utils.DB.Where("role = ? AND verified = ?", models.RolePremium, true).Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch premium members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "premiumMembers": members})
}

func GetAdminStats(c *gin.Context) {
	var totalUsers, premiumUsers, pendingVerifications, pendingStories int64

	if err := utils.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	utils.DB.Model(&models.User{}).Where("role = ?", models.RolePremium).Count(&premiumUsers)
	utils.DB.Model(&models.User{}).Where("role = ? AND verified = ?", models.RolePremium, false).Count(&pendingVerifications)
	utils.DB.Model(&models.Story{}).Where("status = ?", "pending").Count(&pendingStories)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"totalUsers":           totalUsers,
			"premiumUsers":         premiumUsers,
			"pendingVerifications": pendingVerifications,
			"pendingStories":       pendingStories,
		},
	})
}

func GetAdminLogs(c *gin.Context) {
	var logs []models.AdminLog
	if err := utils.DB.Order("created_at DESC").Limit(100).Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admin logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "logs": logs})
}
