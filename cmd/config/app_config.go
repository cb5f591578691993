package config

import (
	"context"
	"os"
	"time"

	"grocery-tracker/internal/api/handlers"
	"grocery-tracker/internal/api/routes"
	"grocery-tracker/internal/middleware"
	"grocery-tracker/internal/utils"
	"grocery-tracker/internal/utils/storage"
	"grocery-tracker/pkg/bill"
	"grocery-tracker/pkg/cooking"
	"grocery-tracker/pkg/grocery"
	"grocery-tracker/pkg/jwt"
	"grocery-tracker/pkg/recipe"
	"grocery-tracker/pkg/synonym"
	"grocery-tracker/pkg/waste"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	groceryRepository := grocery.NewGroceryRepository(db)
	synonymRepository := synonym.NewSynonymRepository(db)
	cookingRepository := cooking.NewCookingRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	wasteRepository := waste.NewWasteRepository(db)

	// the dictionary serves name lookups for every bill scan, load it
	// before the server starts accepting requests
	dictionary := synonym.NewDictionary(synonymRepository)
	if err := dictionary.Reload(context.Background()); err != nil {
		log.Errorf("error loading synonym dictionary: %v", err)
	}

	// Service
	jwtService := jwt.NewJWTService()
	groceryService := grocery.NewGroceryService(groceryRepository)
	synonymService := synonym.NewSynonymService(synonymRepository, dictionary)
	billService := bill.NewBillService(bill.NewHTTPRecognizer(), dictionary, s3)
	cookingService := cooking.NewCookingService(cookingRepository, groceryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, groceryRepository)
	wasteService := waste.NewWasteService(wasteRepository, groceryRepository)

	// Handler
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	billHandler := handlers.NewBillHandler(billService, validator)
	cookHandler := handlers.NewCookHandler(cookingService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	synonymHandler := handlers.NewSynonymHandler(synonymService, validator)
	wasteHandler := handlers.NewWasteHandler(wasteService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		GroceryHandler: groceryHandler,
		BillHandler:    billHandler,
		CookHandler:    cookHandler,
		RecipeHandler:  recipeHandler,
		SynonymHandler: synonymHandler,
		WasteHandler:   wasteHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
