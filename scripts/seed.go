// Reset the catalog to the bundled demo dataset.
//
// Startup seeding only runs against an empty database. Use this script to
// wipe existing rows and reseed, for example on a demo environment that has
// accumulated test uploads.
//
// Usage: go run scripts/seed.go

package main

import (
	"log"

	"uni_archive_backend/internal/config"
	"uni_archive_backend/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(&cfg.Database, true)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	for _, table := range []string{"comments", "resources", "course_stats", "pinned_subjects", "saved_resources"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("Failed to clear %s: %v", table, err)
		}
	}

	if err := database.SeedIfEmpty(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Demo dataset restored")
}
