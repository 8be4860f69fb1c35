package companies

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ghorbari-server/models"
	"ghorbari-server/utils"
)

// GetCompanies lists directory entries, best-rated first, optionally
// filtered by type.
func GetCompanies(c *gin.Context) {
	query := utils.DB.Order("rating DESC")
	if companyType := c.Query("type"); companyType != "" {
		query = query.Where("type = ?", companyType)
	}

	var companies []models.Company
	if err := query.Find(&companies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch companies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "companies": companies})
}

func GetCompany(c *gin.Context) {
	var company models.Company
	if err := utils.DB.First(&company, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

func RateCompany(c *gin.Context) {
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

	var company models.Company
	if err := utils.DB.First(&company, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	company.Rating = (company.Rating*float64(company.RatingCount) + input.Rating) / float64(company.RatingCount+1)
	company.RatingCount++

	if err := utils.DB.Save(&company).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

func listByType(c *gin.Context, companyType string) {
	var companies []models.Company
	if err := utils.DB.Where("type = ?", companyType).Order("rating DESC").Find(&companies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch companies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "companies": companies})
}

func GetDevelopers(c *gin.Context)        { listByType(c, "developers") }
func GetInteriorDesigners(c *gin.Context) { listByType(c, "interior") }
func GetLegalServices(c *gin.Context)     { listByType(c, "legal") }
func GetMovingServices(c *gin.Context)    { listByType(c, "moving") }
