package utils

import (
	"log"
	"os"
	"strings"
)

// adminAccounts holds the user codes that receive admin notifications.
// Resolved once at startup from ADMIN_ACCOUNT_IDS (comma-separated).
var adminAccounts []string

func LoadAdminAccounts() {
	raw := os.Getenv("ADMIN_ACCOUNT_IDS")
	adminAccounts = adminAccounts[:0]
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			adminAccounts = append(adminAccounts, id)
		}
	}
	if len(adminAccounts) == 0 {
		log.Println("ADMIN_ACCOUNT_IDS is not set; admin notifications will be dropped")
	}
}

func AdminAccounts() []string {
	return adminAccounts
}
