package routes

import (
	"grocery-tracker/internal/api/handlers"
	"grocery-tracker/internal/middleware"
	"grocery-tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	GroceryHandler handlers.GroceryHandler
	BillHandler    handlers.BillHandler
	CookHandler    handlers.CookHandler
	RecipeHandler  handlers.RecipeHandler
	SynonymHandler handlers.SynonymHandler
	WasteHandler   handlers.WasteHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Groceries()
	c.Cooking()
	c.Recipes()
	c.GroceryItems()
	c.Waste()
	c.GuestRoute()
}

func (c *Config) Groceries() {
	groceries := c.App.Group("/api/v1/groceries", c.Middleware.AuthMiddleware(c.JWTService))

	// Basic CRUD operations
	groceries.Get("", c.GroceryHandler.GetGroceries)
	groceries.Post("", c.GroceryHandler.AddGrocery)
	groceries.Put("/:id", c.GroceryHandler.UpdateGrocery)
	groceries.Delete("/:id", c.GroceryHandler.DeleteGrocery)

	// Special operations
	groceries.Post("/bulk", c.GroceryHandler.BulkAddGroceries)
	groceries.Post("/scan", c.BillHandler.ScanBill)
}

func (c *Config) Cooking() {
	cook := c.App.Group("/api/v1/cook", c.Middleware.AuthMiddleware(c.JWTService))
	{
		cook.Post("", c.CookHandler.CookRecipe)
		cook.Put("/waste/:calculationId", c.CookHandler.RecordWaste)
		cook.Get("/history", c.CookHandler.GetCookingHistory)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Get("/recommendations", c.RecipeHandler.GetRecommendations)
}

func (c *Config) GroceryItems() {
	items := c.App.Group("/api/v1/grocery-items", c.Middleware.AuthMiddleware(c.JWTService))
	items.Get("", c.SynonymHandler.GetEntries)

	// mutations rebuild the synonym dictionary, admins only
	items.Post("", c.Middleware.AdminOnly(), c.SynonymHandler.AddEntry)
	items.Put("/:id", c.Middleware.AdminOnly(), c.SynonymHandler.UpdateEntry)
	items.Delete("/:id", c.Middleware.AdminOnly(), c.SynonymHandler.DeleteEntry)
}

func (c *Config) Waste() {
	waste := c.App.Group("/api/v1/waste", c.Middleware.AuthMiddleware(c.JWTService))
	{
		waste.Post("/weekly", c.WasteHandler.StoreWeeklyWaste)
		waste.Get("/history", c.WasteHandler.GetWasteHistory)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
