package utils

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ghorbari-server/models"
)

var DB *gorm.DB

func ConnectDatabase() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	var err error
	// TranslateError lets unique-index violations surface as
	// gorm.ErrDuplicatedKey, which the referral apply path relies on.
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
}

// MigrateAll runs AutoMigrate for every model.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.PriceHistory{},
		&models.PropertyRating{},
		&models.Rental{},
		&models.School{},
		&models.Hospital{},
		&models.Market{},
		&models.Referral{},
		&models.Payment{},
		&models.Notification{},
		&models.AdminLog{},
		&models.Company{},
		&models.Technician{},
		&models.Meeting{},
		&models.Story{},
		&models.Offer{},
		&models.Favorite{},
		&models.Faq{},
	)
}
