package offers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/models"
	"ghorbari-server/utils"
)

func SubmitOffer(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var input struct {
		PropertyID    string  `json:"propertyId"`
		OfferPrice    float64 `json:"offerPrice"`
		OriginalPrice float64 `json:"originalPrice"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}
	if input.PropertyID == "" || input.OfferPrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property and offer price are required"})
		return
	}

	offer := models.Offer{
		PropertyID:    input.PropertyID,
		UserCode:      user.UserCode,
		UserName:      user.Name,
		OfferPrice:    input.OfferPrice,
		OriginalPrice: input.OriginalPrice,
		Discount:      input.OriginalPrice - input.OfferPrice,
		Status:        "pending",
	}

	if err := utils.DB.Create(&offer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit offer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Offer submitted successfully"})
}

func GetMyOffers(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var offers []models.Offer
	if err := utils.DB.Where("user_code = ?", user.UserCode).Order("created_at DESC").Find(&offers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch offers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "offers": offers})
}
