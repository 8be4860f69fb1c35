package properties

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/models"
	"ghorbari-server/ranking"
	"ghorbari-server/utils"
)

// GetSuggestions returns available properties ranked for the premium user's
// location: closest to the user first, ties broken by distance to the
// nearest school, hospital and market, then price.
func GetSuggestions(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var properties []models.Property
	if err := utils.DB.Where("status = ?", models.StatusAvailable).Find(&properties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while fetching suggestions"})
		return
	}

	var schools []models.School
	var hospitals []models.Hospital
	var markets []models.Market
	if err := utils.DB.Find(&schools).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while fetching amenities"})
		return
	}
	if err := utils.DB.Find(&hospitals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while fetching amenities"})
		return
	}
	if err := utils.DB.Find(&markets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while fetching amenities"})
		return
	}

	schoolCoords := make([]ranking.Coordinate, len(schools))
	for i, s := range schools {
		schoolCoords[i] = ranking.Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}
	}
	hospitalCoords := make([]ranking.Coordinate, len(hospitals))
	for i, h := range hospitals {
		hospitalCoords[i] = ranking.Coordinate{Latitude: h.Latitude, Longitude: h.Longitude}
	}
	marketCoords := make([]ranking.Coordinate, len(markets))
	for i, m := range markets {
		marketCoords[i] = ranking.Coordinate{Latitude: m.Latitude, Longitude: m.Longitude}
	}

	ranked, err := ranking.Rank(user.Latitude, user.Longitude, properties, schoolCoords, hospitalCoords, marketCoords)
	if err != nil {
		if errors.Is(err, ranking.ErrMissingLocation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User location not set."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while ranking suggestions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "properties": ranked})
}
