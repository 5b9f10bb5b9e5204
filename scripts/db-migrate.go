package main

import (
	"log"

	"github.com/folio-simple/config"
	"github.com/folio-simple/database"
	"github.com/folio-simple/models"
)

// Migrates the schema and seeds the site_settings singleton row. The admin
// workflow only ever updates that row, so it has to exist before first use.
func main() {
	log.Println("Starting database migration...")

	config.LoadEnv()
	database.Initialize()

	var count int64
	if err := database.DB.Model(&models.SiteSetting{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to inspect site_settings: %v", err)
	}

	switch {
	case count == 0:
		if err := database.DB.Create(&models.SiteSetting{WhatsappLink: ""}).Error; err != nil {
			log.Fatalf("Failed to seed site_settings: %v", err)
		}
		log.Println("✅ Seeded site_settings singleton row")
	case count == 1:
		log.Println("✅ site_settings singleton row already present")
	default:
		log.Fatalf("❌ site_settings has %d rows, expected exactly 1 - fix manually", count)
	}

	log.Println("Database migration completed successfully!")
}
