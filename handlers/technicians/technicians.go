package technicians

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ghorbari-server/models"
	"ghorbari-server/utils"
)

func GetTechnicians(c *gin.Context) {
	query := utils.DB.Order("rating DESC")
	if specialty := c.Query("specialty"); specialty != "" {
		query = query.Where("specialty = ?", specialty)
	}

	var technicians []models.Technician
	if err := query.Find(&technicians).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch technicians"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "technicians": technicians})
}

func GetTechnician(c *gin.Context) {
	var technician models.Technician
	if err := utils.DB.First(&technician, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Technician not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "technician": technician})
}

func RateTechnician(c *gin.Context) {
	var input struct {
		Rating float64 `json:"rating"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	var technician models.Technician
	if err := utils.DB.First(&technician, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Technician not found"})
		return
	}

	technician.Rating = (technician.Rating*float64(technician.RatingCount) + input.Rating) / float64(technician.RatingCount+1)
	technician.RatingCount++

	if err := utils.DB.Save(&technician).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "technician": technician})
}
