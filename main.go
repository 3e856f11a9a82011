// @title UniArchive API
// @version 1.0
// @description Backend for the UniArchive peer-to-peer academic resource catalog.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"uni_archive_backend/internal/app"
	"uni_archive_backend/internal/config"
	"uni_archive_backend/pkg/configwatcher"
	"uni_archive_backend/pkg/logger"
)

func main() {
	seedOnly := flag.Bool("seed-only", false, "run migrations and demo seeding, then exit")
	migrate := flag.Bool("migrate", false, "force schema migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *seedOnly
	cfg.SeedOnly = *seedOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *seedOnly {
		log.Println("Migration and seeding complete")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
