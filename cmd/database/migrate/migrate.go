package migration

import (
	"fmt"
	"log"

	"grocery-tracker/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Grocery{}); err != nil {
		log.Fatalf("Error migrating grocery database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryItem{}); err != nil {
		log.Fatalf("Error migrating grocery item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Calculation{}); err != nil {
		log.Fatalf("Error migrating calculation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodWaste{}); err != nil {
		log.Fatalf("Error migrating food waste database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
