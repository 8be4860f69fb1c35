package analysis

import (
	"math"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"ghorbari-server/models"
	"ghorbari-server/utils"
)

type yearAverage struct {
	Year         int     `json:"year"`
	AveragePrice float64 `json:"averagePrice"`
}

// GetPriceAnalysis returns the average listing price per year for a
// location and property type, for the price trend chart.
func GetPriceAnalysis(c *gin.Context) {
	location := c.Query("location")
	propertyType := c.Query("propertyType")

	if location == "" || propertyType == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Location and propertyType are required",
		})
		return
	}

	var properties []models.Property
	if err := utils.DB.Where("location = ? AND property_type = ?", location, propertyType).
		Find(&properties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run price analysis"})
		return
	}

	if len(properties) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": []yearAverage{}})
		return
	}

	totals := map[int]float64{}
	counts := map[int]int{}
	for _, p := range properties {
		year := p.CreatedAt.Year()
		totals[year] += p.Price
		counts[year]++
	}

	result := make([]yearAverage, 0, len(totals))
	for year, total := range totals {
		result = append(result, yearAverage{
			Year:         year,
			AveragePrice: math.Round(total / float64(counts[year])),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Year < result[j].Year })

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
