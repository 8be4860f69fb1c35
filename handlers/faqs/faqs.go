package faqs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ghorbari-server/models"
	"ghorbari-server/utils"
)

func GetFaqs(c *gin.Context) {
	query := utils.DB.Order("created_at ASC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var faqs []models.Faq
	if err := query.Find(&faqs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch FAQs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "faqs": faqs})
}

// CreateFaq adds an entry. Admin only (enforced by route middleware).
func CreateFaq(c *gin.Context) {
	var input struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}
	if input.Question == "" || input.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question and answer are required"})
		return
	}

	faq := models.Faq{
		Question: input.Question,
		Answer:   input.Answer,
		Category: input.Category,
	}
	if err := utils.DB.Create(&faq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create FAQ"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "faq": faq})
}
