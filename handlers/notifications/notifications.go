package notifications

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/models"
	"ghorbari-server/utils"
)

func GetNotifications(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var notifications []models.Notification
	if err := utils.DB.Where("user_code = ?", user.UserCode).
		Order("created_at DESC").Limit(50).Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
}

func MarkAsRead(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	if err := utils.DB.Model(&models.Notification{}).
		Where("id = ? AND user_code = ?", c.Param("id"), user.UserCode).
		Update("read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Marked as read"})
}

func DeleteNotification(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	if err := utils.DB.Where("id = ? AND user_code = ?", c.Param("id"), user.UserCode).
		Delete(&models.Notification{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification deleted"})
}

// NotifyAdmins writes one notification row per configured admin account.
// Failures are logged, never surfaced; a lost notification must not fail the
// request that triggered it.
func NotifyAdmins(notifType, message, relatedID string) {
	for _, adminCode := range utils.AdminAccounts() {
		n := models.Notification{
			UserCode:  adminCode,
			Type:      notifType,
			Message:   message,
			RelatedID: relatedID,
		}
		if err := utils.DB.Create(&n).Error; err != nil {
			log.Printf("Failed to create admin notification: %v", err)
		}
	}
}

// NotifyUser writes a notification for a single account.
func NotifyUser(userCode, notifType, message, relatedID string) {
	n := models.Notification{
		UserCode:  userCode,
		Type:      notifType,
		Message:   message,
		RelatedID: relatedID,
	}
	if err := utils.DB.Create(&n).Error; err != nil {
		log.Printf("Failed to create notification for %s: %v", userCode, err)
	}
}
