package stories

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/handlers/notifications"
	"ghorbari-server/models"
	"ghorbari-server/utils"
)

// CreateStory submits a success story for admin review. Premium members only
// (enforced by route middleware).
func CreateStory(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var input struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		PropertyID string `json:"propertyId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}
	if input.Title == "" || input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	story := models.Story{
		UserCode:   user.UserCode,
		UserName:   user.Name,
		PropertyID: input.PropertyID,
		Title:      input.Title,
		Content:    input.Content,
		Status:     "pending",
	}

	if err := utils.DB.Create(&story).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit story"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "story": story})
}

// GetStories lists approved stories for everyone.
func GetStories(c *gin.Context) {
	var stories []models.Story
	if err := utils.DB.Where("status = ?", "approved").Order("created_at DESC").Find(&stories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stories": stories})
}

// ApproveStory publishes a pending story. Admin only; the action is logged
// and the author is notified.
func ApproveStory(c *gin.Context) {
	admin, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var story models.Story
	if err := utils.DB.First(&story, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	if err := utils.DB.Model(&story).Update("status", "approved").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve story"})
		return
	}

	utils.DB.Create(&models.AdminLog{
		AdminCode:  admin.UserCode,
		Action:     "approved",
		TargetType: "story",
		TargetID:   fmt.Sprintf("%d", story.ID),
		Details:    fmt.Sprintf("Approved story: %s", story.Title),
	})

	notifications.NotifyUser(story.UserCode, "story",
		"Your success story has been approved and published", fmt.Sprintf("%d", story.ID))

	c.JSON(http.StatusOK, gin.H{"success": true, "story": story})
}
