package properties

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/handlers/notifications"
	"ghorbari-server/models"
	"ghorbari-server/utils"
)

// RateProperty records a premium member's rating and recomputes the average.
// Rating the same property again replaces the member's earlier score. A zero
// rating alerts the admins.
func RateProperty(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var input struct {
		Rating *float64 `json:"rating"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Rating == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating is required"})
		return
	}
	if *input.Rating < 0 || *input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 0 and 5"})
		return
	}

	var property models.Property
	if err := utils.DB.First(&property, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	var existing models.PropertyRating
	err := utils.DB.Where("property_id = ? AND user_code = ?", property.ID, user.UserCode).
		First(&existing).Error
	if err == nil {
		existing.Rating = *input.Rating
		if err := utils.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit rating"})
			return
		}
	} else {
		rating := models.PropertyRating{
			PropertyID: property.ID,
			UserCode:   user.UserCode,
			UserName:   user.Name,
			Rating:     *input.Rating,
		}
		if err := utils.DB.Create(&rating).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit rating"})
			return
		}
	}

	// Recompute the average from the rating rows
	var ratings []models.PropertyRating
	if err := utils.DB.Where("property_id = ?", property.ID).Find(&ratings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit rating"})
		return
	}
	var sum float64
	for _, r := range ratings {
		sum += r.Rating
	}
	property.Rating = sum / float64(len(ratings))
	property.RatingCount = len(ratings)
	if err := utils.DB.Save(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit rating"})
		return
	}

	if *input.Rating == 0 {
		notifications.NotifyAdmins("low_rating_alert",
			fmt.Sprintf("Poor rating: %s rated property %s 0/5", user.Name, property.ID),
			property.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Rating submitted successfully",
		"newRating":   property.Rating,
		"ratingCount": property.RatingCount,
	})
}
