package config

import (
	"os"
	"time"

	"Smart-Fridge-Backend/internal/api/handlers"
	"Smart-Fridge-Backend/internal/api/routes"
	"Smart-Fridge-Backend/internal/middleware"
	"Smart-Fridge-Backend/internal/utils"
	"Smart-Fridge-Backend/internal/utils/mailing"
	"Smart-Fridge-Backend/internal/utils/storage"
	"Smart-Fridge-Backend/pkg/item"
	"Smart-Fridge-Backend/pkg/jwt"
	"Smart-Fridge-Backend/pkg/notification"
	"Smart-Fridge-Backend/pkg/recipe"
	"Smart-Fridge-Backend/pkg/report"
	"Smart-Fridge-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
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
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("TIME_ZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer(mailing.LoadMailConfig())

	// Repository
	userRepository := user.NewUserRepository(db)
	itemRepository := item.NewItemRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	itemService := item.NewItemService(itemRepository, s3)
	userService := user.NewUserService(userRepository, jwtService, itemService, validator)
	reportService := report.NewReportService(itemRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, itemRepository)
	notificationService := notification.NewNotificationService(userRepository, itemRepository, mailer)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	itemHandler := handlers.NewItemHandler(itemService, validator)
	reportHandler := handlers.NewReportHandler(reportService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		ItemHandler:         itemHandler,
		ReportHandler:       reportHandler,
		RecipeHandler:       recipeHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
