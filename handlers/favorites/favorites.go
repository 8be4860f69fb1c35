package favorites

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/models"
	"ghorbari-server/utils"
)

func AddFavorite(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var input struct {
		PropertyID string `json:"propertyId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.PropertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property ID is required"})
		return
	}

	favorite := models.Favorite{
		UserCode:   user.UserCode,
		PropertyID: input.PropertyID,
	}
	if err := utils.DB.Create(&favorite).Error; err != nil {
		// Adding the same property twice is a no-op
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added to favorites"})
}

func RemoveFavorite(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var input struct {
		PropertyID string `json:"propertyId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.PropertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property ID is required"})
		return
	}

	if err := utils.DB.Where("user_code = ? AND property_id = ?", user.UserCode, input.PropertyID).
		Delete(&models.Favorite{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Removed from favorites"})
}

// GetFavorites returns the user's favorited properties with full listing
// data.
func GetFavorites(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var favorites []models.Favorite
	if err := utils.DB.Where("user_code = ?", user.UserCode).Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	ids := make([]string, len(favorites))
	for i, f := range favorites {
		ids[i] = f.PropertyID
	}

	var properties []models.Property
	if len(ids) > 0 {
		if err := utils.DB.Where("id IN ?", ids).Find(&properties).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "favorites": properties})
}
