package routes

import (
	"Smart-Fridge-Backend/internal/api/handlers"
	"Smart-Fridge-Backend/internal/middleware"
	"Smart-Fridge-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	ItemHandler         handlers.ItemHandler
	ReportHandler       handlers.ReportHandler
	RecipeHandler       handlers.RecipeHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Items()
	c.Reports()
	c.Recipes()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) User() {
	api := c.App.Group("/api")
	// user routes
	{
		api.Post("/signup", c.UserHandler.Register)
		api.Post("/login", c.UserHandler.Login)
		api.Post("/guest", c.UserHandler.CreateGuest)
		api.Get("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetProfile)
		api.Post("/account-setting/:field", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateAccountSetting)
		api.Post("/fridge-model", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateFridgeModel)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Items() {
	items := c.App.Group("/api/items", c.Middleware.AuthMiddleware(c.JWTService))

	// static paths first so they are not captured by /:id
	items.Get("/expiring/soon", c.ItemHandler.GetExpiringSoon)
	items.Get("/category/:category", c.ItemHandler.GetItemsByCategory)
	items.Get("/location/:location", c.ItemHandler.GetItemsByLocation)
	items.Get("/frequent", c.ItemHandler.GetFrequentItems)
	items.Get("/starter", c.ItemHandler.GetStarterItems)
	items.Post("/scan", c.ItemHandler.ScanItem)
	items.Post("/quick-add", c.ItemHandler.QuickAdd)

	// Basic CRUD operations
	items.Post("", c.ItemHandler.AddItem)
	items.Get("", c.ItemHandler.GetItems)
	items.Get("/:id", c.ItemHandler.GetItemByID)
	items.Put("/:id", c.ItemHandler.UpdateItem)
	items.Delete("/:id", c.ItemHandler.DeleteItem)
	items.Post("/:id/image", c.ItemHandler.UploadItemImage)
}

func (c *Config) Reports() {
	api := c.App.Group("/api")
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	api.Get("/analytics", auth, c.ReportHandler.GetAnalytics)
	api.Get("/waste", auth, c.ReportHandler.GetWasteReport)
	api.Get("/recommendations", auth, c.ReportHandler.GetRecommendations)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	recipes.Get("/favorites", auth, c.RecipeHandler.GetFavoriteRecipes)
	recipes.Get("/suggest/mine", auth, c.RecipeHandler.SuggestFromInventory)
	recipes.Post("/suggest", optional, c.RecipeHandler.SuggestRecipes)
	recipes.Get("", optional, c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", optional, c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id/favorite", auth, c.RecipeHandler.ToggleFavorite)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	notifications.Post("/digest", c.NotificationHandler.SendExpiringDigest)
}
