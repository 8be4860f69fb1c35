package meetings

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/handlers/notifications"
	"ghorbari-server/models"
	"ghorbari-server/utils"
)

// RequestMeeting files a meeting request with a company or a property owner
// and alerts the admins.
func RequestMeeting(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var input struct {
		CompanyID   string `json:"companyId"`
		CompanyName string `json:"companyName"`
		CompanyType string `json:"companyType"`
		PropertyID  string `json:"propertyId"`
		OwnerID     string `json:"ownerId"`
		OwnerName   string `json:"ownerName"`
		Message     string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	meeting := models.Meeting{
		UserCode:    user.UserCode,
		UserName:    user.Name,
		UserEmail:   user.Email,
		CompanyID:   input.CompanyID,
		CompanyName: input.CompanyName,
		CompanyType: input.CompanyType,
		PropertyID:  input.PropertyID,
		OwnerID:     input.OwnerID,
		OwnerName:   input.OwnerName,
		Message:     input.Message,
		Status:      "pending",
	}

	if err := utils.DB.Create(&meeting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit meeting request"})
		return
	}

	notifications.NotifyAdmins("meeting_request",
		fmt.Sprintf("New meeting request from %s (%s) with %s", user.Name, user.Email, input.CompanyName),
		fmt.Sprintf("%d", meeting.ID))

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Meeting request sent to admin",
		"meetingId": meeting.ID,
	})
}

// GetAllMeetings lists every meeting request for the admin screen.
func GetAllMeetings(c *gin.Context) {
	var meetings []models.Meeting
	if err := utils.DB.Order("created_at DESC").Find(&meetings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "meetings": meetings})
}
