package rentals

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/models"
	"ghorbari-server/utils"
)

// nextRentalID allocates the next RENTnnn id from the highest one issued.
// Counting rows would reuse ids after a delete.
func nextRentalID() (string, error) {
	var lastID string
	err := utils.DB.Model(&models.Rental{}).
		Select("id").
		Order("LENGTH(id) DESC, id DESC").
		Limit(1).
		Scan(&lastID).Error
	if err != nil {
		return "", err
	}

	seq := 0
	if lastID != "" {
		if _, err := fmt.Sscanf(lastID, "RENT%d", &seq); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("RENT%03d", seq+1), nil
}

func GetRentals(c *gin.Context) {
	query := utils.DB.Where("status = ?", models.StatusAvailable)

	if propertyType := c.Query("propertyType"); propertyType != "" {
		query = query.Where("property_type = ?", propertyType)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location = ?", location)
	}
	switch c.Query("priceSort") {
	case "low-to-high":
		query = query.Order("rent_price ASC")
	case "high-to-low":
		query = query.Order("rent_price DESC")
	}

	var rentals []models.Rental
	if err := query.Find(&rentals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rentals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rentals": rentals})
}

func GetRental(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var rental models.Rental
	if err := utils.DB.First(&rental, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		return
	}

	if user.Role == models.RoleNonPremium {
		rental.OwnerContact = ""
		rental.OwnerEmail = ""
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rental": rental})
}

func CreateRental(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var input struct {
		PropertyType  string   `json:"propertyType"`
		Location      string   `json:"location"`
		RentPrice     float64  `json:"rentPrice"`
		FloorNumber   int      `json:"floorNumber"`
		FlatsPerFloor int      `json:"flatsPerFloor"`
		RoomsPerFlat  int      `json:"roomsPerFlat"`
		OwnerName     string   `json:"ownerName"`
		OwnerContact  string   `json:"ownerContact"`
		OwnerEmail    string   `json:"ownerEmail"`
		Description   string   `json:"description"`
		Images        []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	if input.PropertyType == "" || input.Location == "" || input.RentPrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property type, location and rent price are required"})
		return
	}

	rental := models.Rental{
		PropertyType:  input.PropertyType,
		Location:      input.Location,
		RentPrice:     input.RentPrice,
		FloorNumber:   input.FloorNumber,
		FlatsPerFloor: input.FlatsPerFloor,
		RoomsPerFlat:  input.RoomsPerFlat,
		OwnerName:     input.OwnerName,
		OwnerContact:  input.OwnerContact,
		OwnerEmail:    input.OwnerEmail,
		Description:   input.Description,
		Images:        strings.Join(input.Images, ","),
		CreatedBy:     user.UserCode,
		Status:        models.StatusAvailable,
	}

	// Two requests can race to the same id; the loser retries with the next
	// one.
	var createErr error
	for attempt := 0; attempt < 3; attempt++ {
		id, err := nextRentalID()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rental"})
			return
		}
		rental.ID = id
		createErr = utils.DB.Create(&rental).Error
		if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if createErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rental"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "rental": rental})
}

func UpdateRental(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var rental models.Rental
	if err := utils.DB.First(&rental, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		return
	}

	if rental.CreatedBy != user.UserCode && user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		return
	}

	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	// Only rental attributes may change, never ownership or identity.
	columns := map[string]string{
		"propertyType": "property_type", "location": "location",
		"rentPrice": "rent_price", "floorNumber": "floor_number",
		"flatsPerFloor": "flats_per_floor", "roomsPerFlat": "rooms_per_flat",
		"ownerName": "owner_name", "ownerContact": "owner_contact",
		"ownerEmail": "owner_email", "description": "description",
		"status": "status",
	}
	updates := map[string]interface{}{}
	for field, value := range input {
		if column, ok := columns[field]; ok {
			updates[column] = value
		}
	}

	if len(updates) > 0 {
		if err := utils.DB.Model(&rental).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rental"})
			return
		}
	}

	if err := utils.DB.First(&rental, "id = ?", rental.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rental"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rental": rental})
}

func DeleteRental(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var rental models.Rental
	if err := utils.DB.First(&rental, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		return
	}

	if rental.CreatedBy != user.UserCode && user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		return
	}

	if err := utils.DB.Delete(&rental).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rental"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Rental deleted"})
}
