// seed/seed.go
package seed

import (
	"log"

	"ghorbari-server/models"
	"ghorbari-server/utils"
)

// SeedAmenities loads the reference schools, hospitals and markets the
// suggestion ranking scores against. Skipped when the tables already hold
// data.
func SeedAmenities() error {
	var count int64
	if err := utils.DB.Model(&models.School{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Amenity reference data already exists. Skipping seeding.")
		return nil
	}

	schools := []models.School{
		{Name: "Dhanmondi Govt Boys High School", Latitude: 23.7465, Longitude: 90.3760},
		{Name: "Viqarunnisa Noon School", Latitude: 23.7484, Longitude: 90.3935},
		{Name: "Uttara High School", Latitude: 23.8759, Longitude: 90.3795},
	}
	hospitals := []models.Hospital{
		{Name: "Dhaka Medical College Hospital", Latitude: 23.7254, Longitude: 90.3976},
		{Name: "Square Hospital", Latitude: 23.7531, Longitude: 90.3812},
		{Name: "Kurmitola General Hospital", Latitude: 23.8223, Longitude: 90.4094},
	}
	markets := []models.Market{
		{Name: "New Market", Latitude: 23.7339, Longitude: 90.3846},
		{Name: "Karwan Bazar", Latitude: 23.7508, Longitude: 90.3930},
		{Name: "Uttara Sector 3 Bazar", Latitude: 23.8646, Longitude: 90.3972},
	}

	if err := utils.DB.Create(&schools).Error; err != nil {
		return err
	}
	if err := utils.DB.Create(&hospitals).Error; err != nil {
		return err
	}
	if err := utils.DB.Create(&markets).Error; err != nil {
		return err
	}

	log.Println("Amenity reference data seeded successfully.")
	return nil
}
