package properties

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/models"
	"ghorbari-server/utils"
)

// nextPropertyID allocates the next PROPnnn id from the highest one issued.
// Counting rows would reuse ids after a delete.
func nextPropertyID() (string, error) {
	var lastID string
	err := utils.DB.Model(&models.Property{}).
		Select("id").
		Order("LENGTH(id) DESC, id DESC").
		Limit(1).
		Scan(&lastID).Error
	if err != nil {
		return "", err
	}

	seq := 0
	if lastID != "" {
		if _, err := fmt.Sscanf(lastID, "PROP%d", &seq); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("PROP%03d", seq+1), nil
}

// GetProperties lists available properties with the optional filters the
// search page sends: propertyType, location, requirement (Rent/Buy),
// priceSort, dateSort.
func GetProperties(c *gin.Context) {
	query := utils.DB.Where("status = ?", models.StatusAvailable)

	if propertyType := c.Query("propertyType"); propertyType != "" {
		query = query.Where("property_type = ?", propertyType)
	}
	if location := c.Query("location"); location != "" && location != "All Districts" {
		query = query.Where("location = ?", location)
	}
	if requirement := c.Query("requirement"); requirement != "" && requirement != "All" {
		query = query.Where("LOWER(`option`) = ?", strings.ToLower(requirement))
	}

	switch c.Query("priceSort") {
	case "low-to-high":
		query = query.Order("price ASC")
	case "high-to-low":
		query = query.Order("price DESC")
	}
	switch c.Query("dateSort") {
	case "old-to-new":
		query = query.Order("created_at ASC")
	case "new-to-old":
		query = query.Order("created_at DESC")
	}

	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while fetching properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "properties": properties})
}

// GetProperty returns one property. Owner contact details are hidden from
// non-premium members.
func GetProperty(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var property models.Property
	if err := utils.DB.First(&property, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	if user.Role == models.RoleNonPremium {
		property.OwnerContact = ""
		property.OwnerEmail = ""
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "property": property})
}

// CreateProperty adds a listing. Premium members only (enforced by route
// middleware).
func CreateProperty(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var input struct {
		PropertyType string   `json:"propertyType"`
		Location     string   `json:"location"`
		Price        float64  `json:"price"`
		OwnerName    string   `json:"ownerName"`
		OwnerContact string   `json:"ownerContact"`
		OwnerEmail   string   `json:"ownerEmail"`
		Description  string   `json:"description"`
		Images       []string `json:"images"`
		VirtualTour  string   `json:"virtualTour"`
		Option       string   `json:"option"`
		Latitude     *float64 `json:"latitude"`
		Longitude    *float64 `json:"longitude"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	if input.PropertyType == "" || input.Location == "" || input.Price <= 0 || input.OwnerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property type, location, price and owner name are required"})
		return
	}
	if input.Option == "" {
		input.Option = "Rent"
	}

	property := models.Property{
		PropertyType: input.PropertyType,
		Location:     input.Location,
		Price:        input.Price,
		OwnerName:    input.OwnerName,
		OwnerContact: input.OwnerContact,
		OwnerEmail:   input.OwnerEmail,
		Description:  input.Description,
		Images:       strings.Join(input.Images, ","),
		VirtualTour:  input.VirtualTour,
		CreatedBy:    user.UserCode,
		Status:       models.StatusAvailable,
		Option:       input.Option,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
	}

	// Two requests can race to the same id; the loser retries with the next
	// one.
	var createErr error
	for attempt := 0; attempt < 3; attempt++ {
		id, err := nextPropertyID()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while creating property"})
			return
		}
		property.ID = id
		createErr = utils.DB.Create(&property).Error
		if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if createErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while creating property"})
		return
	}

	// First price history entry
	utils.DB.Create(&models.PriceHistory{
		PropertyID: property.ID,
		Price:      property.Price,
		Date:       time.Now(),
	})

	c.JSON(http.StatusCreated, gin.H{"success": true, "property": property})
}

// DeleteProperty removes a listing. Admin only; the action is logged.
func DeleteProperty(c *gin.Context) {
	admin, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var property models.Property
	if err := utils.DB.First(&property, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	if err := utils.DB.Delete(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while deleting property"})
		return
	}

	utils.DB.Create(&models.AdminLog{
		AdminCode:  admin.UserCode,
		Action:     "deleted",
		TargetType: "property",
		TargetID:   property.ID,
		Details:    fmt.Sprintf("Deleted property: %s (%s)", property.ID, property.Location),
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Property deleted"})
}
