package migrations

import (
	"log"

	"ghorbari-server/models"
	"ghorbari-server/utils"
)

// MigrateReferrals creates the referrals table and verifies its unique index
// on user_code. The index is what keeps two concurrent apply-code requests
// from both inserting a referral for the same account, so a missing index is
// fatal.
func MigrateReferrals() {
	if err := utils.DB.AutoMigrate(&models.Referral{}); err != nil {
		log.Fatalf("Failed to migrate referrals: %v", err)
	}
	if !utils.DB.Migrator().HasIndex(&models.Referral{}, "UserCode") {
		log.Fatal("referrals table is missing the unique index on user_code")
	}
}
