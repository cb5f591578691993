package main

import (
	"log"

	"grocery-tracker/cmd/config"
	migration "grocery-tracker/cmd/database/migrate"
	"grocery-tracker/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	if err := app.Listen(":9000"); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
