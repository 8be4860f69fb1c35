package users

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/handlers/notifications"
	"ghorbari-server/models"
	"ghorbari-server/utils"
)

func GetProfile(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func UpdateProfile(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var input struct {
		Name       *string  `json:"name"`
		Age        *int     `json:"age"`
		Location   *string  `json:"location"`
		Occupation *string  `json:"occupation"`
		Latitude   *float64 `json:"latitude"`
		Longitude  *float64 `json:"longitude"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Age != nil {
		updates["age"] = *input.Age
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Occupation != nil {
		updates["occupation"] = *input.Occupation
	}
	if input.Latitude != nil {
		updates["latitude"] = *input.Latitude
	}
	if input.Longitude != nil {
		updates["longitude"] = *input.Longitude
	}

	if len(updates) > 0 {
		if err := utils.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// RequestDeletion flags the account for deletion; an admin has to approve it.
func RequestDeletion(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	if err := utils.DB.Model(&user).Update("deletion_requested", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit deletion request"})
		return
	}

	notifications.NotifyAdmins("deletion",
		fmt.Sprintf("Account deletion request from %s", user.Name), user.UserCode)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Deletion request sent to admin"})
}

func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := utils.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}
